package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable signals that the model artifact failed to load or was never configured.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrInvalidSpec signals a laptop specification field outside its allowed values.
	ErrInvalidSpec = errors.New("invalid specification")
	// ErrSchemaMismatch signals a feature row that does not fit the model schema.
	ErrSchemaMismatch = errors.New("feature schema mismatch")
	// ErrPriceOverflow signals a model output whose inverse-log transform is not finite.
	ErrPriceOverflow = errors.New("price overflow")
	// ErrInvalidArtifact signals a malformed model artifact.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

// FieldError wraps ErrInvalidSpec with the offending field and value.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrInvalidSpec.Error(), e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidSpec }

// NewFieldError creates a field validation error.
func NewFieldError(field, value, reason string) error {
	return &FieldError{Field: field, Value: value, Reason: reason}
}
