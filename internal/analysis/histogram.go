package analysis

import (
	"fmt"
	"math"

	"covidlens/domain/core"
	"covidlens/domain/dataset"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// HistogramBins is the fixed bin count used by the dashboard.
const HistogramBins = 20

// HistogramSeries is one group's counts over the shared bin edges.
type HistogramSeries struct {
	Group  string `json:"group"`
	Counts []int  `json:"counts"`
}

// Histogram holds shared-edge binned counts per group. Edges span the full
// range of the variable so every group shares the same bin boundaries.
type Histogram struct {
	Variable core.ColumnKey
	Edges    []float64 // len = bins+1
	Labels   []string  // bin-center labels for the category axis
	Series   []HistogramSeries
	Normal   []float64 // fitted normal curve as expected counts per bin
}

// ComputeHistogram bins the selected variable into HistogramBins bins,
// faceted by group. Group levels iterate in first-seen row order.
func ComputeHistogram(table *dataset.Table, variable, group core.ColumnKey) (*Histogram, error) {
	varCol, ok := table.Col(variable)
	if !ok || varCol.Kind != dataset.KindNumeric {
		return nil, core.NewUnknownVariableError(variable.String())
	}

	all := varCol.NonNull()
	if len(all) == 0 {
		return nil, core.ErrEmptySelection
	}

	min, _ := stats.Min(all)
	max, _ := stats.Max(all)
	edges := binEdges(min, max, HistogramBins)

	labels := make([]string, HistogramBins)
	for i := 0; i < HistogramBins; i++ {
		labels[i] = fmt.Sprintf("%.4g", (edges[i]+edges[i+1])/2)
	}

	levels, byLevel, err := table.GroupIndex(group)
	if err != nil {
		return nil, err
	}

	h := &Histogram{
		Variable: variable,
		Edges:    edges,
		Labels:   labels,
		Series:   make([]HistogramSeries, 0, len(levels)),
	}
	for _, level := range levels {
		counts := make([]int, HistogramBins)
		for _, row := range byLevel[level] {
			if !varCol.Valid[row] {
				continue
			}
			counts[binFor(edges, varCol.Floats[row])]++
		}
		h.Series = append(h.Series, HistogramSeries{Group: level, Counts: counts})
	}

	h.Normal = normalOverlay(all, edges)
	return h, nil
}

// binEdges spans [min, max] with n equal-width bins. A zero range widens to
// a unit interval around the constant value so counting still works.
func binEdges(min, max float64, n int) []float64 {
	if min == max {
		min -= 0.5
		max += 0.5
	}
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := 0; i <= n; i++ {
		edges[i] = min + float64(i)*width
	}
	edges[n] = max
	return edges
}

// binFor places v in a bin; the last bin is right-inclusive.
func binFor(edges []float64, v float64) int {
	n := len(edges) - 1
	width := (edges[n] - edges[0]) / float64(n)
	i := int((v - edges[0]) / width)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// normalOverlay fits a normal distribution to the full variable and returns
// expected counts per bin, for the fitted-curve line series.
func normalOverlay(values []float64, edges []float64) []float64 {
	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return nil
	}

	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	n := len(edges) - 1
	out := make([]float64, n)
	total := float64(len(values))
	for i := 0; i < n; i++ {
		out[i] = total * (dist.CDF(edges[i+1]) - dist.CDF(edges[i]))
	}
	return out
}
