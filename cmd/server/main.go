// Package main implements the entry point for the census-api server,
// a small web tool exposing a 3x3 matrix statistics calculator and a
// demographic data analyzer over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/statlab/census-api/internal/config"
	"github.com/statlab/census-api/internal/platform/logger"
)

func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(cfg, appLogger)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the loaded config, the configured logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"sample_size", cfg.Sample.Size,
		"precision", cfg.Analysis.Precision)

	return cfg, appLogger, nil
}
