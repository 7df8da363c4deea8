package estimate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/domain/price"
	"github.com/kailas-cloud/laptopprice/internal/metrics"
)

// InstrumentedModel wraps a Model with prediction metrics and debug logging.
type InstrumentedModel struct {
	inner  Model
	name   string
	logger *zap.Logger
}

// NewInstrumentedModel wraps inner. Metrics must be registered via
// metrics.RegisterPredictionMetrics before use.
func NewInstrumentedModel(inner Model, name string, logger *zap.Logger) *InstrumentedModel {
	return &InstrumentedModel{inner: inner, name: name, logger: logger}
}

// ExpectedColumns delegates to the inner model.
func (m *InstrumentedModel) ExpectedColumns() []string { return m.inner.ExpectedColumns() }

// Predict delegates to the inner model and records the outcome.
func (m *InstrumentedModel) Predict(ctx context.Context, row []float64) (float64, error) {
	start := time.Now()
	y, err := m.inner.Predict(ctx, row)
	duration := time.Since(start)

	metrics.PredictionDuration.WithLabelValues(m.name).Observe(duration.Seconds())
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(m.name, "error").Inc()
		m.logger.Error("Prediction failed",
			zap.String("model", m.name),
			zap.Int("columns", len(row)),
			zap.Error(err),
		)
		return 0, fmt.Errorf("model %s: %w", m.name, err)
	}

	metrics.PredictionsTotal.WithLabelValues(m.name, "ok").Inc()
	if p, err := price.FromLog(y); err == nil {
		metrics.PredictedPriceEUR.Observe(p.Amount())
	}

	m.logger.Debug("Prediction completed",
		zap.String("model", m.name),
		zap.Duration("duration", duration),
		zap.Float64("log_price", y),
	)
	return y, nil
}
