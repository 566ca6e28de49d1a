package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// encoding/json folds case when it matches object keys to struct fields, so
// the wire types decode through raw objects and look their keys up exactly.
// Keys outside the schema are ignored.

// UnmarshalJSON decodes a wishlist. Absent keys and values of the wrong type
// are reported together as ValidationErrors; empty strings and an empty item
// list are accepted.
func (w *Wishlist) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var d fieldDecoder
	fields, ok := d.root(data, "wishlist", "items")
	if !ok {
		return d.err()
	}

	var items []WishlistItem
	if raw, ok := fields["items"]; ok {
		items = d.wishlistItems(raw, "items")
	}
	if err := d.err(); err != nil {
		return err
	}

	w.Items = items
	return nil
}

// UnmarshalJSON decodes an object of the form {"outfits": [...]} with the
// same exact key matching as DecodeOutfitList.
func (r *OutfitsResponse) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var d fieldDecoder
	fields, ok := d.root(data, "response", "outfits")
	if !ok {
		return d.err()
	}

	var outfits []Outfit
	if raw, ok := fields["outfits"]; ok {
		outfits = d.outfits(raw, "outfits")
	}
	if err := d.err(); err != nil {
		return err
	}

	r.Outfits = outfits
	return nil
}

// DecodeOutfitList decodes a JSON array of outfits. Every outfit must carry
// the keys "outfitId" and "items", and every item "name" and "productId",
// spelled exactly. Field paths in the returned ValidationErrors are rooted
// at "outfits".
func DecodeOutfitList(data []byte) ([]Outfit, error) {
	var d fieldDecoder
	outfits := d.outfits(data, "outfits")
	if err := d.err(); err != nil {
		return nil, err
	}
	return outfits, nil
}

// fieldDecoder accumulates a diagnostic for every offending field.
type fieldDecoder struct {
	errs ValidationErrors
}

func (d *fieldDecoder) fail(path, message string) {
	d.errs = append(d.errs, NewValidationError(path, message, ErrValidation))
}

func (d *fieldDecoder) err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return d.errs
}

// root decodes the top-level document, which is labelled name in diagnostics
// while its keys are reported without a prefix.
func (d *fieldDecoder) root(raw []byte, name string, keys ...string) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil {
		d.fail(name, "must be a JSON object")
		return nil, false
	}
	d.require(fields, "", keys...)
	return fields, true
}

// object decodes raw as a JSON object and records every absent key.
func (d *fieldDecoder) object(raw []byte, path string, keys ...string) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil {
		d.fail(path, "must be an object")
		return nil, false
	}
	d.require(fields, path, keys...)
	return fields, true
}

func (d *fieldDecoder) require(fields map[string]json.RawMessage, path string, keys ...string) {
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			d.fail(joinPath(path, key), "is required")
		}
	}
}

// array decodes raw as a JSON array. A null array yields nil without a
// diagnostic; Validate reports it as required.
func (d *fieldDecoder) array(raw []byte, path string) ([]json.RawMessage, bool) {
	if isNull(raw) {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		d.fail(path, "must be an array")
		return nil, false
	}
	return elems, true
}

// str returns the string under key, or "" when the key is absent (already
// reported by require) or holds another type.
func (d *fieldDecoder) str(fields map[string]json.RawMessage, path, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		d.fail(joinPath(path, key), "must be a string")
		return ""
	}
	return s
}

func (d *fieldDecoder) wishlistItems(raw []byte, path string) []WishlistItem {
	elems, ok := d.array(raw, path)
	if !ok {
		return nil
	}

	items := make([]WishlistItem, len(elems))
	for i, elem := range elems {
		p := indexPath(path, i)
		fields, ok := d.object(elem, p, "name", "description", "productId")
		if !ok {
			continue
		}
		items[i] = WishlistItem{
			Name:        d.str(fields, p, "name"),
			Description: d.str(fields, p, "description"),
			ProductID:   d.str(fields, p, "productId"),
		}
	}
	return items
}

func (d *fieldDecoder) outfits(raw []byte, path string) []Outfit {
	elems, ok := d.array(raw, path)
	if !ok {
		return nil
	}

	outfits := make([]Outfit, len(elems))
	for i, elem := range elems {
		p := indexPath(path, i)
		fields, ok := d.object(elem, p, "outfitId", "items")
		if !ok {
			continue
		}
		outfits[i].OutfitID = d.str(fields, p, "outfitId")
		if rawItems, ok := fields["items"]; ok {
			outfits[i].Items = d.outfitItems(rawItems, joinPath(p, "items"))
		}
	}
	return outfits
}

func (d *fieldDecoder) outfitItems(raw []byte, path string) []OutfitItem {
	elems, ok := d.array(raw, path)
	if !ok {
		return nil
	}

	items := make([]OutfitItem, len(elems))
	for i, elem := range elems {
		p := indexPath(path, i)
		fields, ok := d.object(elem, p, "name", "productId")
		if !ok {
			continue
		}
		items[i] = OutfitItem{
			Name:      d.str(fields, p, "name"),
			ProductID: d.str(fields, p, "productId"),
		}
	}
	return items
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
