package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wishlist  *Wishlist
		wantErr   bool
		wantField string
	}{
		{
			name: "valid wishlist",
			wishlist: &Wishlist{Items: []WishlistItem{
				{Name: "Classic Black T-shirt", Description: "100% cotton crewneck", ProductID: "B-TS-001"},
			}},
		},
		{
			name:      "nil wishlist",
			wishlist:  nil,
			wantErr:   true,
			wantField: "items",
		},
		{
			name:      "missing items",
			wishlist:  &Wishlist{},
			wantErr:   true,
			wantField: "items",
		},
		{
			name:     "empty items is valid",
			wishlist: &Wishlist{Items: []WishlistItem{}},
		},
		{
			name: "empty strings are valid",
			wishlist: &Wishlist{Items: []WishlistItem{
				{Name: "", Description: "", ProductID: ""},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.wishlist.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "error should wrap ErrValidation")

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "error should expose a ValidationError")
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestWishlistContains(t *testing.T) {
	t.Parallel()

	w := &Wishlist{Items: []WishlistItem{
		{Name: "Classic Black T-shirt", Description: "cotton", ProductID: "B-TS-001"},
		{Name: "Slim-fit Chinos", Description: "beige", ProductID: "P-CH-005"},
	}}

	assert.True(t, w.Contains("B-TS-001"))
	assert.True(t, w.Contains("P-CH-005"))
	assert.False(t, w.Contains("X-000"))

	var nilWishlist *Wishlist
	assert.False(t, nilWishlist.Contains("B-TS-001"))
}
