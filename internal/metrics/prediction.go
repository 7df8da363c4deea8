package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prediction Prometheus metrics.
var (
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laptopprice",
			Name:      "predictions_total",
			Help:      "Total number of price predictions",
		},
		[]string{"model", "status"},
	)

	PredictionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laptopprice",
			Name:      "prediction_duration_seconds",
			Help:      "Model predict duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"model"},
	)

	PredictedPriceEUR = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "laptopprice",
			Name:      "predicted_price_eur",
			Help:      "Distribution of predicted prices in euros",
			Buckets:   []float64{250, 500, 750, 1000, 1500, 2000, 3000, 5000},
		},
	)

	PredictionCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laptopprice",
			Name:      "prediction_cache_total",
			Help:      "Prediction cache lookups by result (hit/miss)",
		},
		[]string{"result"},
	)

	ModelLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "laptopprice",
			Name:      "model_loaded",
			Help:      "1 if the model artifact loaded at startup, 0 otherwise",
		},
	)

	ModelColumns = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "laptopprice",
			Name:      "model_columns",
			Help:      "Number of feature columns the loaded model expects",
		},
	)
)

var predMetricsRegistered bool

// RegisterPredictionMetrics registers Prometheus prediction metrics. Must be called once from main.
func RegisterPredictionMetrics() {
	if predMetricsRegistered {
		return
	}
	prometheus.MustRegister(PredictionsTotal)
	prometheus.MustRegister(PredictionDuration)
	prometheus.MustRegister(PredictedPriceEUR)
	prometheus.MustRegister(PredictionCacheTotal)
	prometheus.MustRegister(ModelLoaded)
	prometheus.MustRegister(ModelColumns)
	predMetricsRegistered = true
}
