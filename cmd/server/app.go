package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/statlab/census-api/internal/config"
	"github.com/statlab/census-api/internal/service/demographics"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	analyzer *demographics.Analyzer
}

// newApplication creates a new application instance with all dependencies
// initialized. Both calculators are stateless, so wiring amounts to building
// the analyzer with its configured precision.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	analyzer := demographics.NewAnalyzer(
		cfg.Analysis.Precision,
		logger.With("component", "demographics"),
	)

	logger.Info("Application initialized successfully")
	return &application{
		config:   cfg,
		logger:   logger,
		analyzer: analyzer,
	}
}

// Run starts the application server, handling lifecycle and shutdown.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
