package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/menuwise/menu-intelligence-api/internal/api"
	apiMiddleware "github.com/menuwise/menu-intelligence-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSOriginList(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	healthHandler := api.NewHealthHandler(app.llmConfigured)
	itemHandler := api.NewItemHandler(app.menuService, app.logger)

	rateLimiter := apiMiddleware.NewRateLimiter(app.config.RateLimit.RequestsPerMinute)

	// Liveness and health stay outside the rate limit so probes never
	// starve real traffic of quota.
	r.Get("/", healthHandler.Liveness)
	r.Get("/health", healthHandler.Health)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Handler)
		r.Post("/generate-item-details", itemHandler.GenerateItemDetails)
	})

	return r
}
