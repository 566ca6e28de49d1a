package generation

import "errors"

// Error kinds surfaced while building outfits. Every failure returned by this
// package, the provider adapter, or the outfit service wraps exactly one of
// these so callers can match with errors.Is.
var (
	// ErrEmptyProviderResponse is returned when the provider produced no candidate text.
	ErrEmptyProviderResponse = errors.New("language model returned an empty response")

	// ErrMalformedOutput is returned when the cleaned reply is not valid JSON.
	ErrMalformedOutput = errors.New("language model output is not valid JSON")

	// ErrSchemaMismatch is returned when the reply is valid JSON but not a valid outfits document.
	ErrSchemaMismatch = errors.New("language model output does not match the outfits schema")

	// ErrProviderCallFailed is returned when the outbound call itself fails
	// (network, authentication, quota, cancellation).
	ErrProviderCallFailed = errors.New("language model provider call failed")

	// ErrInvalidConfig is returned when a generator or prompt builder cannot be configured.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
