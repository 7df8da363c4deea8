package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/laptopprice/internal/domain/feature"
	"github.com/kailas-cloud/laptopprice/internal/model"
)

type inspectReport struct {
	Name           string              `json:"name"`
	Type           model.Type          `json:"type"`
	Columns        int                 `json:"columns"`
	MissingNumeric []string            `json:"missing_numeric,omitempty"`
	Unmatched      map[string][]string `json:"unmatched,omitempty"`
	GPUColumns     []string            `json:"gpu_columns,omitempty"`
	Top            []model.Importance  `json:"top"`
}

func inspectCommand() *cobra.Command {
	var (
		top    int
		asJSON bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "inspect ARTIFACT",
		Short: "Validate an artifact and report schema coverage",
		Long: "Loads the artifact, checks which form values have a matching " +
			"indicator column and lists the most important columns.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.LoadFile(args[0])
			if err != nil {
				return err
			}
			rep := buildReport(m, top)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
			} else {
				printReport(cmd.OutOrStdout(), rep)
			}

			if strict && (len(rep.MissingNumeric) > 0 || len(rep.Unmatched) > 0) {
				return fmt.Errorf("schema does not cover every form value")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of most important columns to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a form value has no schema column")
	return cmd
}

func buildReport(m *model.Model, top int) inspectReport {
	cov := feature.Coverage(m.ExpectedColumns())
	rep := inspectReport{
		Name:           m.Name(),
		Type:           m.Type(),
		Columns:        len(m.ExpectedColumns()),
		MissingNumeric: cov.MissingNumeric,
		GPUColumns:     cov.GPUColumns,
	}
	for _, p := range cov.Prefixes {
		if len(p.Missing) == 0 {
			continue
		}
		if rep.Unmatched == nil {
			rep.Unmatched = make(map[string][]string)
		}
		rep.Unmatched[string(p.Prefix)] = p.Missing
	}

	imp := m.Importances()
	if top >= 0 && top < len(imp) {
		imp = imp[:top]
	}
	rep.Top = imp
	return rep
}

func printReport(w io.Writer, rep inspectReport) {
	fmt.Fprintf(w, "model:   %s (%s)\n", rep.Name, rep.Type)
	fmt.Fprintf(w, "columns: %d\n", rep.Columns)
	if len(rep.MissingNumeric) > 0 {
		fmt.Fprintf(w, "missing numeric columns: %s\n", strings.Join(rep.MissingNumeric, ", "))
	}
	for _, ind := range feature.Indicators {
		if missing, ok := rep.Unmatched[string(ind.Prefix)]; ok {
			fmt.Fprintf(w, "%s: no column for %s\n", ind.Prefix, strings.Join(missing, ", "))
		}
	}
	if len(rep.GPUColumns) > 0 {
		fmt.Fprintf(w, "GPU columns present but not encoded: %s\n", strings.Join(rep.GPUColumns, ", "))
	}
	if len(rep.Top) > 0 {
		fmt.Fprintln(w, "top columns:")
		for _, i := range rep.Top {
			fmt.Fprintf(w, "  %-32s %.3f\n", i.Column, i.Score)
		}
	}
}
