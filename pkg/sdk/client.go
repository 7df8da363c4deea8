package laptopprice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
	"github.com/kailas-cloud/laptopprice/internal/domain/price"
	"github.com/kailas-cloud/laptopprice/internal/model"
	estimateuc "github.com/kailas-cloud/laptopprice/internal/usecase/estimate"
	healthuc "github.com/kailas-cloud/laptopprice/internal/usecase/health"
)

// Internal interfaces for substitution in tests.
type estimateUseCase interface {
	Estimate(ctx context.Context, spec laptop.Spec) (estimateuc.Result, error)
	Schema() []string
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the laptopprice SDK entry point. It is safe for concurrent use.
type Client struct {
	estimateSvc estimateUseCase
	healthSvc   healthUseCase
	symbol      string
	obs         *observer
}

// New creates a Client. A model is required (WithModelFile or WithModel).
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{currencySymbol: price.DefaultSymbol}
	for _, o := range opts {
		o.apply(cfg)
	}

	m := cfg.model
	if m == nil {
		if cfg.modelFile == "" {
			return nil, errors.New("laptopprice: model required (use WithModelFile or WithModel)")
		}
		loaded, err := model.LoadFile(cfg.modelFile)
		if err != nil {
			return nil, fmt.Errorf("laptopprice: load model: %w", err)
		}
		m = loaded
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	svc := estimateuc.New(m)
	return &Client{
		estimateSvc: svc,
		healthSvc:   healthuc.New(svc, nil),
		symbol:      cfg.currencySymbol,
		obs:         obs,
	}, nil
}

// Estimate validates s and predicts its price.
func (c *Client) Estimate(ctx context.Context, s Spec) (est Estimate, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("estimate", start, err, slog.String("brand", s.Brand))
	}()

	spec, err := toInternalSpec(s)
	if err != nil {
		return Estimate{}, err
	}
	res, err := c.estimateSvc.Estimate(ctx, spec)
	if err != nil {
		return Estimate{}, fmt.Errorf("estimate: %w", err)
	}
	c.obs.observePrice(res.Price.Amount())
	return fromInternalResult(res, c.symbol), nil
}

// Catalog returns the accepted values of every Spec field.
func (c *Client) Catalog() Catalog {
	return fromInternalCatalog(laptop.GetCatalog())
}

// Defaults returns the Spec a fresh form starts with.
func Defaults() Spec {
	in := laptop.Defaults()
	return Spec{
		Brand:      in.Brand,
		Type:       in.Type,
		OS:         in.OS,
		RAM:        in.RAM,
		Weight:     in.Weight,
		CPU:        in.CPU,
		GPU:        in.GPU,
		ScreenSize: in.ScreenSize,
		Resolution: in.Resolution,
		Storage:    in.Storage,
	}
}

// Schema returns the model's expected feature columns, in order.
func (c *Client) Schema() []string {
	return c.estimateSvc.Schema()
}

// Health reports whether the model is available.
func (c *Client) Health(ctx context.Context) HealthStatus {
	return fromInternalReport(c.healthSvc.Check(ctx))
}
