package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults applied before any file or environment value.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10
	DefaultMaxRequestBytes = 1 << 20
	DefaultModelName       = "gemini-2.5-flash"
	DefaultTemperature     = 0.5
)

// Load configuration from a .env file, an optional config.yaml in the
// working directory, and environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load(".", ".env")
}

// load reads configuration using configDir for config.yaml and dotenvPath
// for the .env file. Both sources are optional.
func load(configDir, dotenvPath string) (*Config, error) {
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("OUTFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential and model keep their historical unprefixed names.
	if err := v.BindEnv("llm.gemini_api_key", "OUTFIT_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind gemini api key: %w", err)
	}
	if err := v.BindEnv("llm.model_name", "OUTFIT_LLM_MODEL_NAME", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind gemini model: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeout)
	v.SetDefault("server.max_request_bytes", DefaultMaxRequestBytes)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.temperature", DefaultTemperature)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.request_timeout_seconds", 0)
}
