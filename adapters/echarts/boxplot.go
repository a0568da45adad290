package echarts

import (
	"fmt"

	"covidlens/domain/core"
	"covidlens/internal/analysis"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewBoxPlot builds the grouped box-and-whisker chart. Geometry comes
// precomputed from analysis.BoxStats; the per-group mean/median/stddev
// annotation rides along as the item name so it shows on hover.
func NewBoxPlot(variable, group core.ColumnKey, geoms []analysis.BoxGeometry) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s by %s", variable, group),
			Subtitle: "whiskers at 1.5×IQR, dots are outliers",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: true},
				Restore:     &opts.ToolBoxFeatureRestore{Show: true},
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
		charts.WithYAxisOpts(opts.YAxis{Name: variable.String(), Scale: true}),
	)

	categories := make([]string, len(geoms))
	boxData := make([]opts.BoxPlotData, len(geoms))
	var outliers []opts.ScatterData
	for i, g := range geoms {
		categories[i] = g.Group
		boxData[i] = opts.BoxPlotData{
			Name: fmt.Sprintf("%s · n=%d · mean=%.2f · median=%.2f · sd=%.2f",
				g.Group, g.Summary.Count, g.Summary.Mean, g.Summary.Median, g.Summary.StdDev),
			Value: []float64{g.Low, g.Q1, g.Median, g.Q3, g.High},
		}
		for _, v := range g.Outliers {
			outliers = append(outliers, opts.ScatterData{
				Name:       g.Group,
				Value:      []interface{}{g.Group, v},
				SymbolSize: 6,
			})
		}
	}

	box.SetXAxis(categories).AddSeries("distribution", boxData)

	if len(outliers) > 0 {
		sc := charts.NewScatter()
		sc.SetXAxis(categories).AddSeries("outliers", outliers,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728", Opacity: 0.8}))
		box.Overlap(sc)
	}
	return box
}
