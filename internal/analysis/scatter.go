package analysis

import (
	"covidlens/domain/core"
	"covidlens/domain/dataset"
	"covidlens/domain/eda"
)

// Visual size range for scatter points. A constant size variable maps every
// point to the midpoint instead of dividing by zero.
const (
	SizeMin = 50.0
	SizeMax = 400.0
	SizeMid = (SizeMin + SizeMax) / 2
)

// ScatterPoint is one observation with its locally computed visual size.
type ScatterPoint struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// ScatterSeries is one group's points.
type ScatterSeries struct {
	Group  string         `json:"group"`
	Points []ScatterPoint `json:"points"`
}

// ScatterData is the full scatter computation: x is the selected variable,
// y is the other of the two fixed measures, sizes are a min-max rescale of
// the size variable. Sizes live only in this return value; the shared table
// is never written.
type ScatterData struct {
	X      core.ColumnKey  `json:"x"`
	Y      core.ColumnKey  `json:"y"`
	SizeBy core.ColumnKey  `json:"size_by"`
	Series []ScatterSeries `json:"series"`
}

// ComputeScatter assembles per-group scatter series in first-seen group
// order. A row contributes only when x, y and the size variable are all
// non-null, and the [SizeMin, SizeMax] rescale spans exactly those plotted
// rows: size cells on rows excluded for a null x or y never stretch or
// shrink the visual range.
func ComputeScatter(table *dataset.Table, variable, sizeBy, group core.ColumnKey) (*ScatterData, error) {
	yKey, err := eda.OtherVariable(variable)
	if err != nil {
		return nil, err
	}

	xCol, ok := table.Col(variable)
	if !ok || xCol.Kind != dataset.KindNumeric {
		return nil, core.NewUnknownVariableError(variable.String())
	}
	yCol, ok := table.Col(yKey)
	if !ok {
		return nil, core.NewUnknownVariableError(yKey.String())
	}
	sizeCol, ok := table.Col(sizeBy)
	if !ok || sizeCol.Kind != dataset.KindNumeric {
		return nil, core.NewUnknownVariableError(sizeBy.String())
	}

	levels, byLevel, err := table.GroupIndex(group)
	if err != nil {
		return nil, err
	}

	// Collect usable rows first so the rescale range covers every plotted
	// point, not just one group.
	type rowRef struct {
		level string
		row   int
	}
	var rows []rowRef
	var sizeValues []float64
	for _, level := range levels {
		for _, row := range byLevel[level] {
			if !xCol.Valid[row] || !yCol.Valid[row] || !sizeCol.Valid[row] {
				continue
			}
			rows = append(rows, rowRef{level: level, row: row})
			sizeValues = append(sizeValues, sizeCol.Floats[row])
		}
	}
	if len(rows) == 0 {
		return nil, core.ErrEmptySelection
	}

	sizes := RescaleSizes(sizeValues)

	byGroup := make(map[string][]ScatterPoint)
	for i, ref := range rows {
		byGroup[ref.level] = append(byGroup[ref.level], ScatterPoint{
			X:    xCol.Floats[ref.row],
			Y:    yCol.Floats[ref.row],
			Size: sizes[i],
		})
	}

	data := &ScatterData{X: variable, Y: yKey, SizeBy: sizeBy}
	for _, level := range levels {
		points, ok := byGroup[level]
		if !ok {
			continue
		}
		data.Series = append(data.Series, ScatterSeries{Group: level, Points: points})
	}
	return data, nil
}

// RescaleSizes maps values linearly onto [SizeMin, SizeMax]. A zero range
// yields SizeMid for every point.
func RescaleSizes(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if min == max {
		for i := range out {
			out[i] = SizeMid
		}
		return out
	}
	scale := (SizeMax - SizeMin) / (max - min)
	for i, v := range values {
		out[i] = SizeMin + (v-min)*scale
	}
	return out
}
