package predcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

type mockModel struct {
	calls int
	out   float64
	err   error
}

func (m *mockModel) ExpectedColumns() []string { return []string{"Inches", "Ram"} }

func (m *mockModel) Predict(_ context.Context, _ []float64) (float64, error) {
	m.calls++
	return m.out, m.err
}

func newTestCachedModel(t *testing.T, inner *mockModel) (*CachedModel, *prometheus.CounterVec) {
	t.Helper()
	total := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_cache_total"}, []string{"result"})
	// cleanup interval 0: no janitor goroutine
	return New(inner, cache.New(time.Minute, 0), total, zap.NewNop()), total
}

func TestPredict_MissThenHit(t *testing.T) {
	inner := &mockModel{out: 7}
	cm, total := newTestCachedModel(t, inner)
	ctx := context.Background()

	for range 3 {
		y, err := cm.Predict(ctx, []float64{13.3, 16})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if y != 7 {
			t.Fatalf("y = %v, want 7", y)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner called %d times, want 1", inner.calls)
	}
	if got := testutil.ToFloat64(total.WithLabelValues("hit")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(total.WithLabelValues("miss")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
}

func TestPredict_DistinctRows(t *testing.T) {
	inner := &mockModel{out: 7}
	cm, _ := newTestCachedModel(t, inner)

	_, _ = cm.Predict(context.Background(), []float64{13.3, 16})
	_, _ = cm.Predict(context.Background(), []float64{13.3, 8})
	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2", inner.calls)
	}
}

func TestPredict_ErrorNotCached(t *testing.T) {
	inner := &mockModel{err: errors.New("boom")}
	cm, _ := newTestCachedModel(t, inner)

	for range 2 {
		if _, err := cm.Predict(context.Background(), []float64{1, 2}); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2", inner.calls)
	}
}

func TestPredict_CallerMutationDoesNotLeak(t *testing.T) {
	inner := &mockModel{out: 7}
	cm, _ := newTestCachedModel(t, inner)

	row := []float64{13.3, 16}
	_, _ = cm.Predict(context.Background(), row)
	row[1] = 32
	_, _ = cm.Predict(context.Background(), []float64{13.3, 16})
	if inner.calls != 1 {
		t.Errorf("cached entry was altered by the caller, inner calls = %d", inner.calls)
	}
}

type collidingStore struct{ v any }

func (s *collidingStore) Get(string) (any, bool)     { return s.v, s.v != nil }
func (s *collidingStore) SetDefault(_ string, v any) { s.v = v }

func TestPredict_CollisionIsMiss(t *testing.T) {
	inner := &mockModel{out: 7}
	cm := New(inner, &collidingStore{}, nil, zap.NewNop())

	_, _ = cm.Predict(context.Background(), []float64{1, 2})
	_, _ = cm.Predict(context.Background(), []float64{3, 4})
	if inner.calls != 2 {
		t.Errorf("colliding key must not return another row's output, inner calls = %d", inner.calls)
	}
}

func TestCacheKey_Stable(t *testing.T) {
	if cacheKey([]float64{1, 2}) != cacheKey([]float64{1, 2}) {
		t.Error("same row must give same key")
	}
	if cacheKey([]float64{1, 2}) == cacheKey([]float64{2, 1}) {
		t.Error("order must matter")
	}
}
