// Package analysis computes the chart-facing statistics. Every function is
// a pure read over the immutable table: results are returned to the caller
// and never written back onto shared state.
package analysis

import (
	"covidlens/domain/core"
	"covidlens/domain/dataset"

	"github.com/montanaflynn/stats"
)

// GroupSummary carries the per-group hover annotation for the box plot.
type GroupSummary struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// BoxGeometry is one group's box-and-whisker geometry: quartiles, whiskers
// at 1.5×IQR clamped to observed values, and the outliers beyond them.
type BoxGeometry struct {
	Group    string
	Low      float64 // lower whisker
	Q1       float64
	Median   float64
	Q3       float64
	High     float64 // upper whisker
	Outliers []float64
	Summary  GroupSummary
}

// BoxStats computes box geometry for the selected variable, one entry per
// group level in first-seen row order. Rows with a null variable or null
// group cell are excluded.
func BoxStats(table *dataset.Table, variable, group core.ColumnKey) ([]BoxGeometry, error) {
	varCol, ok := table.Col(variable)
	if !ok || varCol.Kind != dataset.KindNumeric {
		return nil, core.NewUnknownVariableError(variable.String())
	}

	levels, byLevel, err := table.GroupIndex(group)
	if err != nil {
		return nil, err
	}

	out := make([]BoxGeometry, 0, len(levels))
	for _, level := range levels {
		values := make([]float64, 0, len(byLevel[level]))
		for _, row := range byLevel[level] {
			if varCol.Valid[row] {
				values = append(values, varCol.Floats[row])
			}
		}
		if len(values) == 0 {
			continue
		}

		geom, err := boxGeometry(level, values)
		if err != nil {
			return nil, err
		}
		out = append(out, geom)
	}

	if len(out) == 0 {
		return nil, core.ErrEmptySelection
	}
	return out, nil
}

func boxGeometry(level string, values []float64) (BoxGeometry, error) {
	// A single-observation group collapses to its point; quartiles are
	// undefined there and must not take the other groups down with them.
	if len(values) == 1 {
		v := values[0]
		return BoxGeometry{
			Group:  level,
			Low:    v,
			Q1:     v,
			Median: v,
			Q3:     v,
			High:   v,
			Summary: GroupSummary{
				Group:  level,
				Count:  1,
				Mean:   v,
				Median: v,
				StdDev: 0,
			},
		}, nil
	}

	q, err := stats.Quartile(values)
	if err != nil {
		return BoxGeometry{}, err
	}
	iqr := q.Q3 - q.Q1
	lowFence := q.Q1 - 1.5*iqr
	highFence := q.Q3 + 1.5*iqr

	// Whiskers sit on the most extreme values still inside the fences.
	low, high := q.Q2, q.Q2
	first := true
	var outliers []float64
	for _, v := range values {
		if v < lowFence || v > highFence {
			outliers = append(outliers, v)
			continue
		}
		if first {
			low, high = v, v
			first = false
			continue
		}
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviation(values)

	return BoxGeometry{
		Group:    level,
		Low:      low,
		Q1:       q.Q1,
		Median:   q.Q2,
		Q3:       q.Q3,
		High:     high,
		Outliers: outliers,
		Summary: GroupSummary{
			Group:  level,
			Count:  len(values),
			Mean:   mean,
			Median: median,
			StdDev: stdDev,
		},
	}, nil
}
