package main

import (
	"log/slog"

	"github.com/phrazzld/outfit-api/internal/config"
	"github.com/phrazzld/outfit-api/internal/platform/logger"
)

// setupAppLogger configures the process-wide JSON logger from the server config.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	return logger.Setup(cfg.Server)
}
