package estimate

import "context"

// Model is a frozen regressor trained on log(1 + price).
type Model interface {
	// ExpectedColumns returns the feature names the model was fit on, in order.
	ExpectedColumns() []string
	// Predict evaluates one row aligned to ExpectedColumns.
	Predict(ctx context.Context, row []float64) (float64, error)
}
