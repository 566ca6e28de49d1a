package domain

// WishlistItem is a single clothing item submitted by the caller.
// Every key must be present when decoded from JSON; values may be empty.
type WishlistItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ProductID   string `json:"productId"`
}

// Wishlist is the ordered list of items a caller wants outfits built from.
// Product IDs are not required to be unique and the list may be empty.
type Wishlist struct {
	Items []WishlistItem `json:"items" validate:"required"`
}

// Validate checks that the wishlist carries an item list. Field presence is
// enforced when decoding.
func (w *Wishlist) Validate() error {
	if w == nil {
		return NewValidationError("items", "is required", ErrValidation)
	}
	return validateStruct(w)
}

// Contains reports whether any wishlist item has the given product ID.
func (w *Wishlist) Contains(productID string) bool {
	if w == nil {
		return false
	}
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
