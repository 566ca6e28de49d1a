package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/outfit-api/internal/config"
	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/phrazzld/outfit-api/internal/platform/gemini"
	"github.com/phrazzld/outfit-api/internal/platform/metrics"
	"github.com/phrazzld/outfit-api/internal/platform/openaicompat"
	"github.com/phrazzld/outfit-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Registry

	model         generation.Model
	outfitService service.OutfitService
}

// newApplication creates the configured language model and wires the
// application around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	model, err := newModel(ctx, cfg.LLM, logger.With("component", "llm_model"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize language model: %w", err)
	}
	logger.Info("Language model initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	return newApplicationWithModel(cfg, logger, model)
}

func newModel(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Model, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return gemini.NewGeminiModel(ctx, logger, cfg)
	case config.ProviderOpenAICompat:
		return openaicompat.NewChatModel(logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// newApplicationWithModel wires the application around an existing model.
func newApplicationWithModel(
	cfg *config.Config,
	logger *slog.Logger,
	model generation.Model,
) (*application, error) {
	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}
	if cfg.LLM.PromptTemplatePath != "" {
		logger.Info("Using prompt template override", "path", cfg.LLM.PromptTemplatePath)
	}

	outfitService, err := service.NewOutfitService(model, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outfit service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return &application{
		config:        cfg,
		logger:        logger,
		metrics:       metrics.NewRegistry(nil),
		model:         model,
		outfitService: outfitService,
	}, nil
}

// Run serves HTTP until ctx is canceled or the process receives SIGINT/SIGTERM.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
