package domain

// OutfitItem references a wishlist item inside an outfit. The item
// description is intentionally absent from the output shape. Both fields
// may be empty strings.
type OutfitItem struct {
	Name      string `json:"name"`
	ProductID string `json:"productId"`
}

// Outfit is a model-proposed grouping of wishlist items. Items may be empty
// but must be present.
type Outfit struct {
	OutfitID string       `json:"outfitId" validate:"required"`
	Items    []OutfitItem `json:"items"    validate:"required,dive"`
}

// OutfitsResponse is the body returned to the caller on success.
type OutfitsResponse struct {
	Outfits []Outfit `json:"outfits" validate:"required,dive"`
}

// Validate checks the response against the outfits schema.
// Uniqueness of outfit IDs and correspondence with the wishlist are not checked.
func (r *OutfitsResponse) Validate() error {
	if r == nil {
		return NewValidationError("outfits", "is required", ErrValidation)
	}
	return validateStruct(r)
}

// UnknownProducts returns the product IDs referenced by the outfits that do
// not appear in the wishlist, in order of first appearance.
func (r *OutfitsResponse) UnknownProducts(w *Wishlist) []string {
	if r == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var unknown []string
	for _, outfit := range r.Outfits {
		for _, item := range outfit.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			if !w.Contains(item.ProductID) {
				unknown = append(unknown, item.ProductID)
			}
		}
	}
	return unknown
}
