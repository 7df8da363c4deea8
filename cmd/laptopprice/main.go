package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/config"
	"github.com/kailas-cloud/laptopprice/internal/domain/feature"
	logpkg "github.com/kailas-cloud/laptopprice/internal/logger"
	"github.com/kailas-cloud/laptopprice/internal/metrics"
	"github.com/kailas-cloud/laptopprice/internal/model"
	"github.com/kailas-cloud/laptopprice/internal/repository/predcache"
	chiTransport "github.com/kailas-cloud/laptopprice/internal/transport/chi"
	"github.com/kailas-cloud/laptopprice/internal/usecase/estimate"
	healthuc "github.com/kailas-cloud/laptopprice/internal/usecase/health"
	"github.com/kailas-cloud/laptopprice/internal/version"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic("failed to load .env: " + err.Error())
	}
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	if f := cfg.Logging.File; f.Path != "" {
		var closeFile func() error
		logger, closeFile, err = logpkg.WithFile(logger, logpkg.FileOptions{
			Path:       f.Path,
			MaxSizeMB:  f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAgeDays: f.MaxAgeDays,
			Compress:   f.Compress,
			Fields:     logpkg.ServiceFields(env),
		})
		if err != nil {
			panic("failed to open log file: " + err.Error())
		}
		defer func() { _ = closeFile() }()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting laptopprice server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("model_path", cfg.Model.ArtifactPath),
	)

	// Register prediction metrics explicitly (no init())
	metrics.RegisterPredictionMetrics()

	// A model that fails to load is reported on the page; the server still starts.
	predictor, importances, loadErr := loadModel(cfg.Model, logger)

	estimateSvc := estimate.New(predictor)

	image := chiTransport.NewImageAsset(cfg.UI.FeatureImportanceImage)
	// Pass nil interface (not typed nil pointer) when no image is configured.
	var imageChecker healthuc.AssetChecker
	if image != nil {
		imageChecker = image
		if !image.Exists() {
			logger.Warn("Feature importance image not found",
				zap.String("path", cfg.UI.FeatureImportanceImage))
		}
	}
	healthSvc := healthuc.New(estimateSvc, imageChecker)

	server := chiTransport.NewServer(estimateSvc, healthSvc, image, chiTransport.PageOptions{
		Title:          cfg.UI.Title,
		ModelName:      cfg.Model.Name,
		CurrencySymbol: cfg.UI.CurrencySymbol,
		ModelLoadError: loadErr,
		Importances:    importances,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r, chiTransport.APIOptions{
		Keys:           cfg.Auth.APIKeys,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadModel reads the artifact and assembles the decorator chain:
// Model -> Cached -> Instrumented. On failure it returns a nil
// estimate.Model together with the load error.
func loadModel(cfg config.ModelConfig, logger *zap.Logger) (estimate.Model, []model.Importance, error) {
	m, err := model.LoadFile(cfg.ArtifactPath)
	if err != nil {
		metrics.ModelLoaded.Set(0)
		logger.Error("Failed to load model", zap.String("path", cfg.ArtifactPath), zap.Error(err))
		return nil, nil, err
	}

	columns := m.ExpectedColumns()
	metrics.ModelLoaded.Set(1)
	metrics.ModelColumns.Set(float64(len(columns)))
	logger.Info("Model loaded",
		zap.String("name", cfg.Name),
		zap.String("type", string(m.Type())),
		zap.Int("columns", len(columns)),
	)
	logCoverage(feature.Coverage(columns), logger)

	var predictor estimate.Model = m
	if cfg.CacheTTLSec > 0 {
		ttl := time.Duration(cfg.CacheTTLSec) * time.Second
		predictor = predcache.New(m, cache.New(ttl, 2*ttl), metrics.PredictionCacheTotal, logger)
	}

	return estimate.NewInstrumentedModel(predictor, cfg.Name, logger), m.Importances(), nil
}

func logCoverage(report feature.CoverageReport, logger *zap.Logger) {
	if len(report.MissingNumeric) > 0 {
		logger.Warn("Model schema lacks numeric columns", zap.Strings("columns", report.MissingNumeric))
	}
	for _, p := range report.Prefixes {
		if len(p.Missing) > 0 {
			logger.Debug("Form values without schema column",
				zap.String("prefix", string(p.Prefix)),
				zap.Strings("values", p.Missing),
			)
		}
	}
	if len(report.GPUColumns) > 0 {
		logger.Warn("Model schema has GPU columns; GPU is not encoded",
			zap.Strings("columns", report.GPUColumns))
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.CodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
