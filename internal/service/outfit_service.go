package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/outfit-api/internal/domain"
	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/phrazzld/outfit-api/internal/platform/logger"
)

// OutfitService builds outfits from a wishlist.
type OutfitService interface {
	// BuildOutfits asks the language model to group the wishlist items into
	// outfits and returns the validated result unchanged.
	BuildOutfits(ctx context.Context, wishlist *domain.Wishlist) (*domain.OutfitsResponse, error)
}

// PromptBuilder renders the prompt for a list of wishlist items.
type PromptBuilder interface {
	Build(items []domain.WishlistItem) (string, error)
}

// outfitServiceImpl implements the OutfitService interface
type outfitServiceImpl struct {
	model   generation.Model
	prompts PromptBuilder
	logger  *slog.Logger
}

// NewOutfitService creates a new OutfitService.
// It returns an error if any of the required dependencies are nil.
func NewOutfitService(
	model generation.Model,
	prompts PromptBuilder,
	logger *slog.Logger,
) (OutfitService, error) {
	if model == nil {
		return nil, errors.New("model cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &outfitServiceImpl{
		model:   model,
		prompts: prompts,
		logger:  logger.With("component", "outfit_service"),
	}, nil
}

// BuildOutfits runs one linear attempt: prompt, model call, clean, decode.
// Nothing is retried and no state outlives the call.
func (s *outfitServiceImpl) BuildOutfits(
	ctx context.Context,
	wishlist *domain.Wishlist,
) (*domain.OutfitsResponse, error) {
	if wishlist == nil {
		return nil, ErrNilWishlist
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	prompt, err := s.prompts.Build(wishlist.Items)
	if err != nil {
		return nil, NewOutfitServiceError(OpBuildPrompt, "failed to build prompt",
			fmt.Errorf("%w: %w", generation.ErrInvalidConfig, err))
	}

	log.DebugContext(ctx, "built outfit prompt",
		"item_count", len(wishlist.Items),
		"prompt_length", len(prompt))

	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, generation.ErrEmptyProviderResponse) &&
			!errors.Is(err, generation.ErrProviderCallFailed) {
			// Collaborators outside this module may return bare errors;
			// those are failures of the call itself.
			err = fmt.Errorf("%w: %w", generation.ErrProviderCallFailed, err)
		}
		return nil, NewOutfitServiceError(OpGenerate, "language model call failed", err)
	}

	doc, err := generation.CleanAndParse(raw)
	if err != nil {
		log.WarnContext(ctx, "language model reply is not valid JSON",
			"reply_length", len(raw))
		return nil, NewOutfitServiceError(OpParseReply, "failed to parse model reply", err)
	}

	outfits, err := generation.DecodeOutfits(doc)
	if err != nil {
		log.WarnContext(ctx, "language model reply does not match the outfits schema",
			"error", err)
		return nil, NewOutfitServiceError(OpDecodeReply, "model reply failed validation", err)
	}

	if unknown := outfits.UnknownProducts(wishlist); len(unknown) > 0 {
		log.WarnContext(ctx, "outfits reference products missing from the wishlist",
			"product_ids", unknown)
	}

	log.InfoContext(ctx, "built outfits",
		"item_count", len(wishlist.Items),
		"outfit_count", len(outfits.Outfits))

	return outfits, nil
}
