// Package domain contains the core business entities of the outfit builder:
// the caller-submitted wishlist and the outfits proposed by the language
// model. Entities are transient and live for a single request; the only
// invariant enforced is structural validity, checked with struct tags.
package domain
