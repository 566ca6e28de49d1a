package main

import (
	"fmt"

	"github.com/phrazzld/outfit-api/internal/config"
)

// loadAppConfig loads the application configuration from .env, config.yaml
// and environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
