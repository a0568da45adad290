// Package plotpng renders the three dashboard charts to static PNG files
// for offline reports. It reuses the same analysis results the interactive
// charts consume.
package plotpng

import (
	"fmt"

	"covidlens/domain/core"
	"covidlens/domain/dataset"
	"covidlens/internal/analysis"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	exportWidth  = 7 * vg.Inch
	exportHeight = 5 * vg.Inch
)

// SaveBox writes a grouped box plot PNG. Box geometry is recomputed by the
// plotter from the raw per-group values, matching the interactive chart's
// 1.5×IQR whisker rule.
func SaveBox(table *dataset.Table, variable, group core.ColumnKey, path string) error {
	levels, byLevel, err := table.GroupIndex(group)
	if err != nil {
		return err
	}
	varCol, ok := table.Col(variable)
	if !ok || varCol.Kind != dataset.KindNumeric {
		return core.NewUnknownVariableError(variable.String())
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by %s", variable, group)
	p.Y.Label.Text = variable.String()

	names := make([]string, 0, len(levels))
	for _, level := range levels {
		values := make(plotter.Values, 0, len(byLevel[level]))
		for _, row := range byLevel[level] {
			if varCol.Valid[row] {
				values = append(values, varCol.Floats[row])
			}
		}
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(len(names)), values)
		if err != nil {
			return err
		}
		p.Add(box)
		names = append(names, level)
	}
	if len(names) == 0 {
		return core.ErrEmptySelection
	}
	p.NominalX(names...)

	return p.Save(exportWidth, exportHeight, path)
}

// SaveHistogram writes a histogram PNG over the full variable range.
func SaveHistogram(table *dataset.Table, variable core.ColumnKey, path string) error {
	varCol, ok := table.Col(variable)
	if !ok || varCol.Kind != dataset.KindNumeric {
		return core.NewUnknownVariableError(variable.String())
	}
	values := plotter.Values(varCol.NonNull())
	if len(values) == 0 {
		return core.ErrEmptySelection
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s distribution", variable)
	p.X.Label.Text = variable.String()
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, analysis.HistogramBins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(exportWidth, exportHeight, path)
}

// SaveScatter writes the grouped scatter PNG, one glyph color per group.
func SaveScatter(data *analysis.ScatterData, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", data.X, data.Y)
	p.X.Label.Text = data.X.String()
	p.Y.Label.Text = data.Y.String()
	p.Add(plotter.NewGrid())

	for i, s := range data.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = pt.X
			xys[j].Y = pt.Y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		p.Add(sc)
		p.Legend.Add(s.Group, sc)
	}

	return p.Save(exportWidth, exportHeight, path)
}
