package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/laptopprice/internal/config"
	"github.com/kailas-cloud/laptopprice/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterPredictionMetrics()
	os.Exit(m.Run())
}

func TestLoadModel_Sample(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m, imp, err := loadModel(config.ModelConfig{
		ArtifactPath: filepath.Join("..", "..", "models", "laptop_price.json"),
		Name:         "laptop_price",
	}, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || len(m.ExpectedColumns()) == 0 {
		t.Fatal("expected a model with columns")
	}
	if len(imp) != len(m.ExpectedColumns()) {
		t.Errorf("expected one importance per column, got %d", len(imp))
	}
	if logs.FilterMessage("Model loaded").Len() != 1 {
		t.Error("expected a Model loaded log line")
	}
}

func TestLoadModel_MissingFile(t *testing.T) {
	m, imp, err := loadModel(config.ModelConfig{
		ArtifactPath: filepath.Join(t.TempDir(), "nope.json"),
	}, zap.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
	// must be an untyped nil so estimate.Service reports the model as unavailable
	if m != nil {
		t.Errorf("expected nil model, got %T", m)
	}
	if imp != nil {
		t.Errorf("expected no importances, got %v", imp)
	}
}

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestWideEventMiddleware_LogsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := wideEventMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", http.NoBody))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusTeapot) {
		t.Errorf("status field = %v", got)
	}
}

func TestLoadModel_Cached(t *testing.T) {
	m, _, err := loadModel(config.ModelConfig{
		ArtifactPath: filepath.Join("..", "..", "models", "laptop_price.json"),
		Name:         "laptop_price",
		CacheTTLSec:  60,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := make([]float64, len(m.ExpectedColumns()))
	first, err := m.Predict(t.Context(), row)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	second, _ := m.Predict(t.Context(), row)
	if first != second {
		t.Errorf("cached prediction differs: %v vs %v", first, second)
	}
}
