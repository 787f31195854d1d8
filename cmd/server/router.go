package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/aroundtheus/around-api/internal/api"
	apimiddleware "github.com/aroundtheus/around-api/internal/api/middleware"
	"github.com/aroundtheus/around-api/internal/api/shared"
)

// Rate limiter window, matching the original service's limits.
const (
	rateLimitRequests = 100
	rateLimitWindow   = 15 * time.Minute
)

// setupRouter creates and configures the application router with all routes
// and middleware. Signup and signin are the only public endpoints; every
// other route sits behind the bearer-token auth middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httprate.Limit(
		rateLimitRequests,
		rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusTooManyRequests, api.MsgRateLimitExceeded)
		}),
	))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace(app.logger))

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	// Public endpoints
	r.Post("/signup", authHandler.Signup)
	r.Post("/signin", authHandler.Signin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/me", userHandler.GetCurrentUser)
		r.Patch("/users/me", userHandler.UpdateProfile)
		r.Patch("/users/me/avatar", userHandler.UpdateAvatar)
		r.Get("/users/{userId}", userHandler.GetUser)

		r.Get("/cards", cardHandler.ListCards)
		r.Post("/cards", cardHandler.CreateCard)
		r.Delete("/cards/{cardId}", cardHandler.DeleteCard)
		r.Put("/cards/{cardId}/likes", cardHandler.LikeCard)
		r.Delete("/cards/{cardId}/likes", cardHandler.UnlikeCard)
	})

	// Any unmatched route gets the uniform not-found body.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgResourceNotFound)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
