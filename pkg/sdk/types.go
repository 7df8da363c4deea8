package laptopprice

import "context"

// Model is a regressor over an ordered feature row that returns a
// log1p-scaled price. *model.Model from an artifact file satisfies it.
type Model interface {
	ExpectedColumns() []string
	Predict(ctx context.Context, row []float64) (float64, error)
}

// Spec is a laptop specification. Every field is required; see
// Client.Catalog for the accepted values.
type Spec struct {
	Brand      string  `json:"brand"`
	Type       string  `json:"type"`
	OS         string  `json:"os"`
	RAM        int     `json:"ram"`
	Weight     float64 `json:"weight"`
	CPU        string  `json:"cpu"`
	GPU        string  `json:"gpu"`
	ScreenSize float64 `json:"screen_size"`
	Resolution string  `json:"resolution"`
	Storage    string  `json:"storage"`
}

// Estimate is the result of one prediction.
type Estimate struct {
	PriceEUR  float64 // inverse-transformed model output
	Formatted string  // symbol, thousands separators, two decimals
	LogPrice  float64 // raw model output
	// ActiveFeatures are the non-zero columns of the encoded row, in schema order.
	ActiveFeatures []string
}

// Range bounds a numeric input.
type Range struct {
	Min, Max, Step, Default float64
}

// Catalog lists the values a Spec may take.
type Catalog struct {
	Brands           []string
	Types            []string
	OperatingSystems []string
	RAM              []int
	Weight           Range
	CPUs             []string
	GPUs             []string
	ScreenSize       Range
	Resolutions      []string
	Storage          []string
}

// HealthStatus represents the aggregated health of the client.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}
