package service

import (
	"errors"
	"fmt"
)

// ErrNilWishlist is returned when BuildOutfits is called without a wishlist.
var ErrNilWishlist = errors.New("wishlist cannot be nil")

// Operations reported in OutfitServiceError.
const (
	OpBuildPrompt = "build_prompt"
	OpGenerate    = "generate"
	OpParseReply  = "parse_reply"
	OpDecodeReply = "decode_reply"
)

// OutfitServiceError wraps errors from the outfit service with context.
type OutfitServiceError struct {
	// Operation is the pipeline step that failed (e.g., "generate", "decode_reply")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for OutfitServiceError.
func (e *OutfitServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("outfit service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("outfit service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *OutfitServiceError) Unwrap() error {
	return e.Err
}

// NewOutfitServiceError creates a new OutfitServiceError, or nil if err is nil.
func NewOutfitServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	return &OutfitServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
