// Package main implements the entry point for the SmartCards AI server,
// which generates flashcards with an LLM and synchronizes users' flashcard
// sets against the backing store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/brianhe1/smartcards-ai/internal/config"
	"github.com/brianhe1/smartcards-ai/internal/platform/logger"
	"github.com/brianhe1/smartcards-ai/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations instead of the server: up, down, or status")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

// run loads configuration, sets up logging and the database, and either
// executes a migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	ctx := context.Background()

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("Error closing database connection", "error", err)
			}
		}()

		appLogger.Info("Executing migrations", "command", migrateCmd)
		if err := postgres.Migrate(ctx, db, migrateCmd); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		appLogger.Info("Migrations completed", "command", migrateCmd)
		return nil
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		// The application owns the connection once constructed; on a failed
		// construction close it here.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
