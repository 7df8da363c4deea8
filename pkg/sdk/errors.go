package laptopprice

import "github.com/kailas-cloud/laptopprice/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrModelUnavailable = domain.ErrModelUnavailable
	ErrInvalidSpec      = domain.ErrInvalidSpec
	ErrSchemaMismatch   = domain.ErrSchemaMismatch
	ErrPriceOverflow    = domain.ErrPriceOverflow
	ErrInvalidArtifact  = domain.ErrInvalidArtifact
)

// FieldError names the rejected Spec field. It matches ErrInvalidSpec.
type FieldError = domain.FieldError
