package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/domain"
	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
	logpkg "github.com/kailas-cloud/laptopprice/internal/logger"
	"github.com/kailas-cloud/laptopprice/internal/metrics"
	"github.com/kailas-cloud/laptopprice/internal/model"
	estimateuc "github.com/kailas-cloud/laptopprice/internal/usecase/estimate"
	healthuc "github.com/kailas-cloud/laptopprice/internal/usecase/health"
)

// Error codes returned by the JSON API.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeModelUnavailable = "model_unavailable"
	CodeUnauthorized     = "unauthorized"
	CodeRateLimited      = "rate_limited"
	CodeInternalError    = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// EstimateResponse is the JSON body of a successful estimate.
type EstimateResponse struct {
	PriceEUR       float64      `json:"price_eur"`
	Formatted      string       `json:"formatted"`
	LogPrice       float64      `json:"log_price"`
	ActiveFeatures []string     `json:"active_features"`
	Input          laptop.Input `json:"input"`
}

// ModelResponse is the JSON body of GET /api/v1/model.
type ModelResponse struct {
	Name        string             `json:"name"`
	Loaded      bool               `json:"loaded"`
	Columns     []string           `json:"columns"`
	Importances []model.Importance `json:"importances,omitempty"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// PageOptions configures the HTML form.
type PageOptions struct {
	Title          string
	ModelName      string
	CurrencySymbol string
	// ModelLoadError is shown on every page when the artifact failed to load.
	ModelLoadError error
	// Importances feed the chart at /feature-importance/chart. Nil disables it.
	Importances []model.Importance
}

// APIOptions protects the /api/v1 group.
type APIOptions struct {
	Keys           []string // bearer tokens; empty disables auth
	RateLimitRPS   float64  // 0 disables throttling
	RateLimitBurst int
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the specification form and the estimate API.
type Server struct {
	estimates     *estimateuc.Service
	health        *healthuc.Service
	image         *ImageAsset
	page          PageOptions
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server. image can be nil.
func NewServer(
	estimates *estimateuc.Service,
	health *healthuc.Service,
	image *ImageAsset,
	page PageOptions,
	logger *zap.Logger,
) *Server {
	s := &Server{
		estimates: estimates,
		health:    health,
		image:     image,
		page:      page,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		fieldErrorHandler,
		sentinelHandler(domain.ErrInvalidSpec, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrModelUnavailable, http.StatusServiceUnavailable, CodeModelUnavailable),
	}
	return s
}

// Routes registers all endpoints on r.
func (s *Server) Routes(r chi.Router, api APIOptions) {
	r.Get("/", s.Form)
	r.Post("/", s.SubmitForm)
	r.Get("/feature-importance", s.FeatureImportance)
	r.Get("/feature-importance/chart", s.FeatureImportanceChart)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(api.Keys))
		r.Use(RateLimitMiddleware(api.RateLimitRPS, api.RateLimitBurst))
		r.Get("/catalog", s.GetCatalog)
		r.Get("/model", s.GetModel)
		r.Get("/estimates", s.QueryEstimate)
		r.Post("/estimates", s.CreateEstimate)
	})
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, laptop.GetCatalog())
}

// GetModel handles GET /api/v1/model.
func (s *Server) GetModel(w http.ResponseWriter, _ *http.Request) {
	cols := s.estimates.Schema()
	if cols == nil {
		cols = []string{}
	}
	writeJSON(w, http.StatusOK, ModelResponse{
		Name:        s.page.ModelName,
		Loaded:      s.estimates.Available(),
		Columns:     cols,
		Importances: s.page.Importances,
	})
}

// CreateEstimate handles POST /api/v1/estimates with a JSON body.
func (s *Server) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var in laptop.Input
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	spec, err := laptop.New(in)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.respondEstimate(w, r, spec)
}

// QueryEstimate handles GET /api/v1/estimates?brand=...&storage=...
func (s *Server) QueryEstimate(w http.ResponseWriter, r *http.Request) {
	_, spec, err := specFromValues(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.respondEstimate(w, r, spec)
}

func (s *Server) respondEstimate(w http.ResponseWriter, r *http.Request, spec laptop.Spec) {
	res, err := s.estimates.Estimate(r.Context(), spec)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	active := res.Features.Active()
	if active == nil {
		active = []string{}
	}
	writeJSON(w, http.StatusOK, EstimateResponse{
		PriceEUR:       res.Price.Amount(),
		Formatted:      res.Price.Format(s.page.CurrencySymbol),
		LogPrice:       res.LogPrice,
		ActiveFeatures: active,
		Input:          spec.Input(),
	})
}

// FeatureImportance handles GET /feature-importance.
func (s *Server) FeatureImportance(w http.ResponseWriter, r *http.Request) {
	if s.image == nil {
		http.NotFound(w, r)
		return
	}
	s.image.ServeHTTP(w, r)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// errorStatus maps a domain error to an HTTP status and a message safe to show users.
func errorStatus(err error) (int, string) {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, fe.Error()
	case errors.Is(err, domain.ErrInvalidSpec):
		return http.StatusBadRequest, domain.ErrInvalidSpec.Error()
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusServiceUnavailable, domain.ErrModelUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// fieldErrorHandler reports which specification field was rejected.
func fieldErrorHandler(w http.ResponseWriter, err error) bool {
	var fe *domain.FieldError
	if !errors.As(err, &fe) {
		return false
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:    CodeValidationFailed,
		Message: fe.Error(),
		Field:   fe.Field,
	})
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
