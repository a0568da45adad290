package echarts

import (
	"fmt"

	"covidlens/domain/core"
	"covidlens/internal/analysis"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewHistogram builds the faceted histogram: one transparency-blended bar
// series per group over shared bin edges, plus the fitted normal curve.
func NewHistogram(variable, group core.ColumnKey, h *analysis.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s distribution by %s", variable, group),
			Subtitle: fmt.Sprintf("%d shared bins across all groups", analysis.HistogramBins),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: true},
				Restore:     &opts.ToolBoxFeatureRestore{Show: true},
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Name: variable.String()}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	bar.SetXAxis(h.Labels)
	for i, s := range h.Series {
		data := make([]opts.BarData, len(s.Counts))
		for j, c := range s.Counts {
			data[j] = opts.BarData{Value: c}
		}
		bar.AddSeries(s.Group, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorAt(i), Opacity: 0.55}),
			// Overlay all groups on the same bins instead of side-by-side bars.
			charts.WithBarChartOpts(opts.BarChart{BarGap: "-100%", BarCategoryGap: "10%"}),
		)
	}

	if len(h.Normal) > 0 {
		lineData := make([]opts.LineData, len(h.Normal))
		for i, v := range h.Normal {
			lineData[i] = opts.LineData{Value: v}
		}
		line := charts.NewLine()
		line.SetXAxis(h.Labels)
		line.AddSeries("normal fit", lineData,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#333333"}),
		)
		bar.Overlap(line)
	}
	return bar
}
