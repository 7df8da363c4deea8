package estimate

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/laptopprice/internal/domain"
	"github.com/kailas-cloud/laptopprice/internal/domain/feature"
	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
	"github.com/kailas-cloud/laptopprice/internal/domain/price"
)

// Result is the outcome of one estimate.
type Result struct {
	// Features is the row presented to the model, aligned to its schema.
	Features feature.Vector
	// LogPrice is the raw model output.
	LogPrice float64
	Price    price.Price
}

// Service turns laptop specifications into price estimates.
type Service struct {
	model Model
}

// New creates a Service. model can be nil when the artifact failed to load;
// every estimate then fails with domain.ErrModelUnavailable.
func New(model Model) *Service {
	return &Service{model: model}
}

// Available reports whether a model is configured.
func (s *Service) Available() bool { return s.model != nil }

// Schema returns the model's expected columns, or nil without a model.
func (s *Service) Schema() []string {
	if s.model == nil {
		return nil
	}
	return s.model.ExpectedColumns()
}

// Estimate encodes spec, aligns it to the model schema, predicts and reverses
// the log transform. It has no side effects on the Service.
func (s *Service) Estimate(ctx context.Context, spec laptop.Spec) (Result, error) {
	if s.model == nil {
		return Result{}, domain.ErrModelUnavailable
	}

	vec := feature.Reindex(feature.Encode(spec), s.model.ExpectedColumns())

	raw, err := s.model.Predict(ctx, vec.Values())
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}

	p, err := price.FromLog(raw)
	if err != nil {
		return Result{}, fmt.Errorf("inverse transform: %w", err)
	}

	return Result{Features: vec, LogPrice: raw, Price: p}, nil
}
