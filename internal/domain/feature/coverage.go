package feature

import (
	"strings"

	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
)

// PrefixCoverage reports which form values of one category have a schema column.
type PrefixCoverage struct {
	Prefix  Prefix
	Matched []string
	Missing []string
}

// CoverageReport describes how well the form vocabulary matches a model schema.
type CoverageReport struct {
	Prefixes []PrefixCoverage
	// MissingNumeric lists direct numeric columns absent from the schema.
	MissingNumeric []string
	// GPUColumns lists schema columns that look like GPU indicators.
	GPUColumns []string
}

// Coverage checks the form vocabulary against schema. Values without a column
// are legal input; they silently encode as "feature absent".
func Coverage(schema []string) CoverageReport {
	cols := make(map[string]struct{}, len(schema))
	for _, c := range schema {
		cols[c] = struct{}{}
	}

	var report CoverageReport
	for _, c := range []string{ColumnInches, ColumnRAM, ColumnWeight} {
		if _, ok := cols[c]; !ok {
			report.MissingNumeric = append(report.MissingNumeric, c)
		}
	}

	catalog := laptop.GetCatalog()
	for _, ind := range Indicators {
		pc := PrefixCoverage{Prefix: ind.Prefix}
		for _, v := range ind.Vocabulary(catalog) {
			if _, ok := cols[IndicatorName(ind.Prefix, v)]; ok {
				pc.Matched = append(pc.Matched, v)
			} else {
				pc.Missing = append(pc.Missing, v)
			}
		}
		report.Prefixes = append(report.Prefixes, pc)
	}

	gpuPrefix := string(PrefixGPU) + "_"
	for _, c := range schema {
		if strings.HasPrefix(c, gpuPrefix) {
			report.GPUColumns = append(report.GPUColumns, c)
		}
	}
	return report
}

// MissingCount returns the number of form values with no schema column.
func (r CoverageReport) MissingCount() int {
	n := 0
	for _, p := range r.Prefixes {
		n += len(p.Missing)
	}
	return n
}
