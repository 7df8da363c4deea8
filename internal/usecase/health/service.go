package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional component is missing.
	Degraded Status = "degraded"
	// Unhealthy indicates predictions cannot be served.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	model ModelChecker
	image AssetChecker
}

// New creates a Service. image can be nil when no feature-importance chart is configured.
func New(model ModelChecker, image AssetChecker) *Service {
	return &Service{model: model, image: image}
}

// Check runs health checks against all components.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)

	status := Healthy
	if s.model.Available() {
		checks["model"] = CheckOK
	} else {
		checks["model"] = CheckError
		status = Unhealthy
	}

	if s.image != nil {
		if s.image.Exists() {
			checks["feature_importance"] = CheckOK
		} else {
			checks["feature_importance"] = CheckError
			if status == Healthy {
				status = Degraded
			}
		}
	}

	return Report{Status: status, Checks: checks}
}
