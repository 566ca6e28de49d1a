package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/outfit-api/internal/config"
	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/phrazzld/outfit-api/internal/redact"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GeminiModel.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiModel implements generation.Model on top of the Gemini API.
type GeminiModel struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// models issues generateContent requests
	models contentGenerator
}

var _ generation.Model = (*GeminiModel)(nil)

// NewGeminiModel creates a GeminiModel backed by a genai client.
//
// The API key and model name must be set; an optional BaseURL redirects the
// client to another endpoint.
func NewGeminiModel(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiModel, error) {
	if err := validateConfig(logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return newGeminiModel(logger, cfg, client.Models)
}

// newGeminiModel wires a GeminiModel around an arbitrary contentGenerator.
func newGeminiModel(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) (*GeminiModel, error) {
	if err := validateConfig(logger, cfg); err != nil {
		return nil, err
	}
	if models == nil {
		return nil, fmt.Errorf("%w: content generator cannot be nil", generation.ErrInvalidConfig)
	}

	return &GeminiModel{
		logger: logger,
		config: cfg,
		models: models,
	}, nil
}

func validateConfig(logger *slog.Logger, cfg config.LLMConfig) error {
	if logger == nil {
		return errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	return nil
}

// Generate sends prompt to the configured model and returns the reply text.
func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	if timeout := g.config.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.config.ModelName, userContents(prompt), g.generateConfig())
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call error",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: %w", generation.ErrProviderCallFailed, err)
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned no usable candidate",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"reply_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

func (g *GeminiModel) generateConfig() *genai.GenerateContentConfig {
	temperature := g.config.Temperature
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: generation.SystemInstruction}},
		},
		Temperature: &temperature,
	}
}

func userContents(prompt string) []*genai.Content {
	return []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", generation.ErrEmptyProviderResponse)
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		reason := ""
		if candidate != nil {
			reason = string(candidate.FinishReason)
		}
		return "", fmt.Errorf("%w: candidate has no content (finish reason %q)",
			generation.ErrEmptyProviderResponse, reason)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w: candidate text is empty (finish reason %q)",
			generation.ErrEmptyProviderResponse, string(candidate.FinishReason))
	}

	return b.String(), nil
}
