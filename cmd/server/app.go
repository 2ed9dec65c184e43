package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/brianhe1/smartcards-ai/internal/config"
	"github.com/brianhe1/smartcards-ai/internal/generation"
	"github.com/brianhe1/smartcards-ai/internal/platform/gemini"
	"github.com/brianhe1/smartcards-ai/internal/platform/postgres"
	"github.com/brianhe1/smartcards-ai/internal/service"
	"github.com/brianhe1/smartcards-ai/internal/service/auth"
	"github.com/brianhe1/smartcards-ai/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore   store.UserStore
	recordStore store.UserRecordStore
	cardStore   store.CardStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	generator        generation.Generator
	setService       service.SetService
	checkoutService  service.CheckoutService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	bcryptCost := cfg.Auth.BcryptCost
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	app.userStore = postgres.NewPostgresUserStore(db, bcryptCost, logger)
	app.recordStore = postgres.NewPostgresUserRecordStore(db, logger)
	app.cardStore = postgres.NewPostgresCardStore(db, logger)

	// Create the LLM generator service
	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")

	// Initialize flashcard-set service
	app.setService, err = service.NewSetService(db, app.recordStore, app.cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create set service: %w", err)
	}

	// Initialize checkout service
	app.checkoutService, err = service.NewCheckoutService(cfg.Stripe, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
