// Package generation adapts between the outfit domain and an external
// LLM. It turns a wishlist into a prompt for the language model, and turns
// the model's free-text reply back into a validated domain.OutfitsResponse.
//
// The Model interface is the boundary to the provider (Gemini in
// production); everything else in this package is pure data transformation
// with no I/O.
package generation
