package echarts

import (
	"fmt"
	"math"

	"covidlens/internal/analysis"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewScatter builds the grouped scatter overlay. One series per group in
// first-seen order, colored from the fixed palette (cycling past ten
// groups), with shared hover/zoom/reset tools.
func NewScatter(data *analysis.ScatterData, group string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s vs %s", data.X, data.Y),
			Subtitle: fmt.Sprintf("colored by %s, sized by %s", group, data.SizeBy),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
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
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: data.X.String(), Scale: true}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: data.Y.String(), Scale: true}),
	)

	for i, s := range data.Series {
		points := make([]opts.ScatterData, len(s.Points))
		for j, p := range s.Points {
			points[j] = opts.ScatterData{
				Name:  s.Group,
				Value: []interface{}{p.X, p.Y},
				// Size values live in [50, 400]; treat them as marker area
				// so the pixel diameter stays in a sane range.
				SymbolSize: int(math.Round(math.Sqrt(p.Size))),
			}
		}
		sc.AddSeries(s.Group, points,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ColorAt(i), Opacity: 0.75}))
	}
	return sc
}
