package generation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phrazzld/outfit-api/internal/domain"
)

// DecodeOutfits maps a cleaned model reply onto the outfits schema.
//
// The model is instructed to answer with a bare JSON array of outfits. An
// object of the form {"outfits": [...]} is also accepted, although the
// prompt never asks for it. Keys are matched exactly, so "OutfitId" does not
// stand in for "outfitId"; keys outside the schema are ignored. An absent
// key, a type mismatch or an empty outfit ID yields an error wrapping
// ErrSchemaMismatch with the diagnostic attached.
func DecodeOutfits(doc json.RawMessage) (*domain.OutfitsResponse, error) {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrSchemaMismatch)
	}

	var resp domain.OutfitsResponse
	switch trimmed[0] {
	case '[':
		outfits, err := domain.DecodeOutfitList(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}
		resp.Outfits = outfits
	case '{':
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}
	default:
		return nil, fmt.Errorf("%w: expected a JSON array of outfits", ErrSchemaMismatch)
	}

	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
	}

	return &resp, nil
}
