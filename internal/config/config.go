package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host                   string   `mapstructure:"host"`
	Port                   int      `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string   `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
	MaxRequestBytes        int64    `mapstructure:"max_request_bytes"        validate:"gt=0"`
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Providers accepted in LLMConfig.Provider.
const (
	// ProviderGemini calls the native Gemini API through google.golang.org/genai.
	ProviderGemini = "gemini"
	// ProviderOpenAICompat calls Gemini's OpenAI-compatible chat completions endpoint.
	ProviderOpenAICompat = "openai_compat"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider     string `mapstructure:"provider"       validate:"required,oneof=gemini openai_compat"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// Temperature is the sampling temperature sent with every request.
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// BaseURL overrides the provider endpoint; empty uses the provider default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// PromptTemplatePath points at a text/template file replacing the
	// embedded prompt; empty uses the embedded one.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// RequestTimeoutSeconds bounds a single model call. Zero means the call
	// is only bounded by the incoming request's context.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// RequestTimeout returns the per-call timeout, or zero if none is configured.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
