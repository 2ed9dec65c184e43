package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/brianhe1/smartcards-ai/internal/api"
	apiMiddleware "github.com/brianhe1/smartcards-ai/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Browser clients call the API from a separate frontend origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	r.Use(corsHandler.Handler)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	generateHandler := api.NewGenerateHandler(app.generator, app.logger)
	setHandler := api.NewSetHandler(app.setService, app.logger)
	checkoutHandler := api.NewCheckoutHandler(app.checkoutService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Generation endpoint
			r.Post("/generate", generateHandler.Generate)

			// Flashcard-set endpoints
			r.Get("/flashcard-sets", setHandler.ListSets)
			r.Post("/flashcard-sets", setHandler.SaveSet)
			r.Get("/flashcard-sets/{name}/cards", setHandler.GetCards)
			r.Delete("/flashcard-sets/{name}", setHandler.DeleteSet)

			// Subscription checkout
			r.Post("/checkout_session", checkoutHandler.CreateSession)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
