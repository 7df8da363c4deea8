package predcache

import (
	"context"
	"encoding/binary"
	"math"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/usecase/estimate"
)

// store is the consumer interface for the prediction cache (ISP).
// *cache.Cache from patrickmn/go-cache satisfies it.
type store interface {
	Get(key string) (any, bool)
	SetDefault(key string, value any)
}

type entry struct {
	row []float64
	y   float64
}

// CachedModel memoizes model outputs per encoded feature row.
type CachedModel struct {
	inner      estimate.Model
	store      store
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner estimate.Model,
	s store,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedModel {
	return &CachedModel{
		inner:      inner,
		store:      s,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// ExpectedColumns delegates to the inner model.
func (c *CachedModel) ExpectedColumns() []string { return c.inner.ExpectedColumns() }

// Predict returns a cached output or calls the inner model. Errors are not cached.
func (c *CachedModel) Predict(ctx context.Context, row []float64) (float64, error) {
	key := cacheKey(row)

	if v, ok := c.store.Get(key); ok {
		// the full row is compared so a hash collision degrades to a miss
		if e, ok := v.(entry); ok && slices.Equal(e.row, row) {
			c.incCache("hit")
			return e.y, nil
		}
		c.logger.Debug("Prediction cache key collision", zap.String("key", key))
	}

	c.incCache("miss")

	y, err := c.inner.Predict(ctx, row)
	if err != nil {
		return 0, err
	}
	c.store.SetDefault(key, entry{row: slices.Clone(row), y: y})
	return y, nil
}

func (c *CachedModel) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(row []float64) string {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range row {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
