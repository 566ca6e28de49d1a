// Package main implements the entry point for the outfit API server, which
// turns a wishlist of clothing items into outfits suggested by Gemini.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/outfit-api/internal/config"
)

func main() {
	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	return cfg, appLogger, nil
}
