package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/outfit-api/internal/domain"
	"github.com/phrazzld/outfit-api/internal/generation"
	"github.com/phrazzld/outfit-api/internal/service"
)

// Client-facing messages for each failure kind.
const (
	msgEmptyResponse   = "Gemini API returned an empty response."
	msgMalformedOutput = "Failed to decode JSON from Gemini's response."
	msgSchemaMismatch  = "Gemini's JSON output does not match the required format"
	msgProviderFailed  = "Language model provider call failed."
	msgInvalidRequest  = "Invalid request format"
	msgUnexpected      = "An unexpected error occurred"
)

// errorKind classifies an error returned while serving a request.
type errorKind int

const (
	kindUnknown errorKind = iota
	kindInvalidRequest
	kindEmptyResponse
	kindMalformedOutput
	kindSchemaMismatch
	kindProviderCallFailed
	kindInvalidConfig
)

// String returns the label used for the kind in outcome metrics.
func (k errorKind) String() string {
	switch k {
	case kindInvalidRequest:
		return "invalid_request"
	case kindEmptyResponse:
		return "empty_response"
	case kindMalformedOutput:
		return "malformed_output"
	case kindSchemaMismatch:
		return "schema_mismatch"
	case kindProviderCallFailed:
		return "provider_call_failed"
	case kindInvalidConfig:
		return "invalid_config"
	case kindUnknown:
		return "internal"
	}
	return "internal"
}

// classifyError maps err onto exactly one errorKind. Generation kinds are
// checked first so a schema diagnostic wrapping domain.ErrValidation is
// still reported as a schema mismatch, not as a bad request.
func classifyError(err error) errorKind {
	switch {
	case err == nil:
		return kindUnknown
	case errors.Is(err, generation.ErrEmptyProviderResponse):
		return kindEmptyResponse
	case errors.Is(err, generation.ErrMalformedOutput):
		return kindMalformedOutput
	case errors.Is(err, generation.ErrSchemaMismatch):
		return kindSchemaMismatch
	case errors.Is(err, generation.ErrProviderCallFailed):
		return kindProviderCallFailed
	case errors.Is(err, generation.ErrInvalidConfig):
		return kindInvalidConfig
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrNilWishlist):
		return kindInvalidRequest
	default:
		return kindUnknown
	}
}

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Every language model failure is a server error.
func MapErrorToStatusCode(err error) int {
	switch classifyError(err) {
	case kindInvalidRequest:
		return http.StatusBadRequest
	case kindEmptyResponse,
		kindMalformedOutput,
		kindSchemaMismatch,
		kindProviderCallFailed,
		kindInvalidConfig,
		kindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the message sent to the client for err.
// Only the schema mismatch carries detail from the error itself, and that
// detail is the validator diagnostic for the model output.
func GetSafeErrorMessage(err error) string {
	switch classifyError(err) {
	case kindInvalidRequest:
		return SanitizeValidationError(err)
	case kindEmptyResponse:
		return msgEmptyResponse
	case kindMalformedOutput:
		return msgMalformedOutput
	case kindSchemaMismatch:
		if diag := schemaDiagnostic(err); diag != "" {
			return msgSchemaMismatch + ": " + diag
		}
		return msgSchemaMismatch + "."
	case kindProviderCallFailed:
		return msgProviderFailed
	case kindInvalidConfig, kindUnknown:
		return msgUnexpected
	}
	return msgUnexpected
}

// schemaDiagnostic returns the text that follows the schema mismatch
// sentinel in err's message.
func schemaDiagnostic(err error) string {
	_, diag, found := strings.Cut(err.Error(), generation.ErrSchemaMismatch.Error()+": ")
	if !found {
		return ""
	}
	return diag
}

// SanitizeValidationError turns a request validation failure into a
// client message naming the offending JSON fields.
func SanitizeValidationError(err error) string {
	var fieldErrs domain.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return "Validation error: " + fieldErrs.Error()
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return "Validation error: " + fieldErr.Error()
	}

	return "Validation error"
}
