package laptopprice

import (
	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
	estimateuc "github.com/kailas-cloud/laptopprice/internal/usecase/estimate"
	healthuc "github.com/kailas-cloud/laptopprice/internal/usecase/health"
)

func toInternalSpec(s Spec) (laptop.Spec, error) {
	return laptop.New(laptop.Input{
		Brand:      s.Brand,
		Type:       s.Type,
		OS:         s.OS,
		RAM:        s.RAM,
		Weight:     s.Weight,
		CPU:        s.CPU,
		GPU:        s.GPU,
		ScreenSize: s.ScreenSize,
		Resolution: s.Resolution,
		Storage:    s.Storage,
	})
}

func fromInternalResult(r estimateuc.Result, symbol string) Estimate {
	return Estimate{
		PriceEUR:       r.Price.Amount(),
		Formatted:      r.Price.Format(symbol),
		LogPrice:       r.LogPrice,
		ActiveFeatures: r.Features.Active(),
	}
}

func fromInternalRange(r laptop.Range) Range {
	return Range{Min: r.Min, Max: r.Max, Step: r.Step, Default: r.Default}
}

func fromInternalCatalog(c laptop.Catalog) Catalog {
	return Catalog{
		Brands:           c.Brands,
		Types:            c.Types,
		OperatingSystems: c.OperatingSystems,
		RAM:              c.RAM,
		Weight:           fromInternalRange(c.Weight),
		CPUs:             c.CPUs,
		GPUs:             c.GPUs,
		ScreenSize:       fromInternalRange(c.ScreenSize),
		Resolutions:      c.Resolutions,
		Storage:          c.Storage,
	}
}

func fromInternalReport(r healthuc.Report) HealthStatus {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{Status: string(r.Status), Checks: checks}
}
