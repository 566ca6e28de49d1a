package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator reports field paths using JSON names so diagnostics match
// the wire format the caller (or the model) actually produced.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationErrors collects every field that failed validation.
type ValidationErrors []*ValidationError

// Error joins the individual field diagnostics.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, e := range ve {
		errs = append(errs, e)
	}
	return errs
}

// validateStruct runs the tag-based validator and converts its output into
// ValidationErrors. Any other validator failure is wrapped with ErrValidation.
func validateStruct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, NewValidationError(fieldPath(fe.Namespace()), tagMessage(fe), ErrValidation))
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace,
// e.g. "OutfitsResponse.outfits[0].items" -> "outfits[0].items".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
