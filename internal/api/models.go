package api

import "github.com/phrazzld/outfit-api/internal/domain"

// BuildOutfitsRequest is the payload for POST /build-outfits.
type BuildOutfitsRequest = domain.Wishlist

// BuildOutfitsResponse is the success body for POST /build-outfits.
type BuildOutfitsResponse = domain.OutfitsResponse
