package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/outfit-api/internal/domain"
	"github.com/phrazzld/outfit-api/internal/service"
)

// MockOutfitService implements service.OutfitService for testing
type MockOutfitService struct {
	// BuildOutfitsFn allows test cases to mock the BuildOutfits behavior
	BuildOutfitsFn func(ctx context.Context, wishlist *domain.Wishlist) (*domain.OutfitsResponse, error)

	mu        sync.Mutex
	wishlists []*domain.Wishlist
}

var _ service.OutfitService = (*MockOutfitService)(nil)

// BuildOutfits implements the service.OutfitService interface
func (m *MockOutfitService) BuildOutfits(
	ctx context.Context,
	wishlist *domain.Wishlist,
) (*domain.OutfitsResponse, error) {
	m.mu.Lock()
	m.wishlists = append(m.wishlists, wishlist)
	m.mu.Unlock()

	if m.BuildOutfitsFn != nil {
		return m.BuildOutfitsFn(ctx, wishlist)
	}
	return &domain.OutfitsResponse{Outfits: []domain.Outfit{}}, nil
}

// Wishlists returns every wishlist passed to BuildOutfits.
func (m *MockOutfitService) Wishlists() []*domain.Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Wishlist(nil), m.wishlists...)
}
