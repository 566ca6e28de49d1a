package generation

import "context"

// Model is the single-shot text completion collaborator.
//
// Implementations send one prompt and wait for one reply: no streaming, no
// session carried between calls. Errors must wrap ErrEmptyProviderResponse
// when the provider answered without any candidate text, and
// ErrProviderCallFailed for any failure of the call itself.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
