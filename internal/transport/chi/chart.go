package chi

import (
	"bytes"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/model"
)

// maxChartBars caps the chart to the most important columns.
const maxChartBars = 20

func newImportanceChart(title string, imp []model.Importance) *charts.Bar {
	if len(imp) > maxChartBars {
		imp = imp[:maxChartBars]
	}
	names := make([]string, len(imp))
	values := make([]opts.BarData, len(imp))
	for i, v := range imp {
		names[i] = v.Column
		values[i] = opts.BarData{Value: v.Score}
	}

	boolPtr := func(b bool) *bool { return &b }

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Feature Importance",
			Subtitle: "Relative weight of each model column",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Share"}),
		charts.WithGridOpts(opts.Grid{
			ContainLabel: boolPtr(true),
			Bottom:       "20%",
		}),
	)
	bar.SetXAxis(names).AddSeries("Importance", values)
	return bar
}

// FeatureImportanceChart handles GET /feature-importance/chart: an
// interactive chart computed from the loaded model.
func (s *Server) FeatureImportanceChart(w http.ResponseWriter, r *http.Request) {
	if len(s.page.Importances) == 0 {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := newImportanceChart(s.page.Title, s.page.Importances).Render(&buf); err != nil {
		s.logger.Error("render importance chart", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
