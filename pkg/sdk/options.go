package laptopprice

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	modelFile string
	model     Model

	currencySymbol string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithModelFile loads the model artifact (.json, .yaml or .yml) from path.
func WithModelFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.modelFile = path
	})
}

// WithModel uses an already constructed regressor. It takes precedence
// over WithModelFile.
func WithModel(m Model) Option {
	return optionFunc(func(c *clientConfig) {
		c.model = m
	})
}

// WithCurrencySymbol sets the symbol used by Estimate.Formatted.
// Default: "€".
func WithCurrencySymbol(symbol string) Option {
	return optionFunc(func(c *clientConfig) {
		c.currencySymbol = symbol
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
