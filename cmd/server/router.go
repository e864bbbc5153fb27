package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/statlab/census-api/internal/api"
	apiMiddleware "github.com/statlab/census-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // trace IDs for error correlation

	// Create API handlers using the application's services
	matrixHandler := api.NewMatrixHandler(app.logger)
	demographicHandler := api.NewDemographicHandler(
		app.analyzer,
		&app.config.Sample,
		app.logger,
	)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Matrix calculator
		r.Post("/matrix/stats", matrixHandler.ComputeStats)

		// Demographic analyzer
		r.Post("/demographics/analyze", demographicHandler.Analyze)
		r.Post("/demographics/analyze/csv", demographicHandler.AnalyzeCSV)
		r.Get("/demographics/sample", demographicHandler.Sample)
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
