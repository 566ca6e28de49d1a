package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/phrazzld/outfit-api/internal/config"
	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/phrazzld/outfit-api/internal/redact"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// ChatModel implements generation.Model with one chat completion per call.
type ChatModel struct {
	logger *slog.Logger
	config config.LLMConfig
	client openai.Client
}

var _ generation.Model = (*ChatModel)(nil)

// NewChatModel creates a ChatModel. The SDK's automatic retries are disabled
// so each Generate issues exactly one request.
func NewChatModel(logger *slog.Logger, cfg config.LLMConfig) (*ChatModel, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.GeminiAPIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &ChatModel{
		logger: logger,
		config: cfg,
		client: client,
	}, nil
}

// Generate sends the system instruction and prompt as a chat completion and
// returns the first choice's content.
func (m *ChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	if timeout := m.config.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	m.logger.InfoContext(ctx, "Making chat completion call",
		"model", m.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := m.client.Chat.Completions.New(ctx, m.completionParams(prompt))
	if err != nil {
		m.logger.ErrorContext(ctx, "Chat completion call error",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: %w", generation.ErrProviderCallFailed, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", generation.ErrEmptyProviderResponse)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: first choice has no content (finish reason %q)",
			generation.ErrEmptyProviderResponse, resp.Choices[0].FinishReason)
	}

	m.logger.InfoContext(ctx, "Chat completion call successful",
		"reply_length", len(content),
		"duration_ms", time.Since(start).Milliseconds())

	return content, nil
}

func (m *ChatModel) completionParams(prompt string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(m.config.ModelName),
		Temperature: openai.Float(float64(m.config.Temperature)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(generation.SystemInstruction),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
	}
}
