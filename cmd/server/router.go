package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/outfit-api/internal/api"
	apiMiddleware "github.com/phrazzld/outfit-api/internal/api/middleware"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(app.config.Server.MaxRequestBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRequestLogger(app.metrics, app.logger))

	outfitHandler, err := api.NewOutfitHandler(app.outfitService, app.logger, api.WithMetrics(app.metrics))
	if err != nil {
		return nil, err
	}

	r.Post("/build-outfits", outfitHandler.BuildOutfits)
	r.Get("/health", api.Health)
	r.Get("/metrics", app.metrics.HandlerText)
	r.Get("/metrics.json", app.metrics.HandlerJSON)

	return r, nil
}
