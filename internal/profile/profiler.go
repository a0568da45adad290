// Package profile computes the load-time, read-only description of the
// cleaned dataset: per-column type, missing and distinct counts, plus
// descriptive statistics for the numeric columns.
package profile

import (
	"context"
	"sync"

	"covidlens/domain/core"
	"covidlens/domain/dataset"
	"covidlens/internal"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/stat"
)

// maxConcurrentColumns bounds the startup profiling fan-out.
const maxConcurrentColumns = 4

// Profiler walks every column exactly once. No sampling: counts are exact
// over the full column.
type Profiler struct {
	log *internal.Logger
}

// NewProfiler creates a profiler.
func NewProfiler() *Profiler {
	return &Profiler{log: internal.DefaultLogger.Component("Profiler")}
}

// Summarize profiles all columns of the table, bounded-concurrently.
// Column order in the result matches table order.
func (p *Profiler) Summarize(ctx context.Context, table *dataset.Table) (*dataset.Summary, error) {
	cols := table.Columns()
	summary := &dataset.Summary{
		DatasetID: table.ID,
		Rows:      table.Nrow(),
		Columns:   make([]dataset.ColumnSummary, len(cols)),
		Profiles:  make(map[core.ColumnKey]dataset.NumericProfile),
	}

	sem := semaphore.NewWeighted(maxConcurrentColumns)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, col := range cols {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, col *dataset.Column) {
			defer wg.Done()
			defer sem.Release(1)

			cs := summarizeColumn(col)
			mu.Lock()
			summary.Columns[i] = cs
			if col.Kind == dataset.KindNumeric {
				if np, ok := profileNumeric(col); ok {
					summary.Profiles[col.Name] = np
				}
			}
			mu.Unlock()
		}(i, col)
	}
	wg.Wait()

	p.log.Info("summarized %d columns over %d rows", len(cols), table.Nrow())
	return summary, nil
}

// summarizeColumn computes the exact {type, missing, distinct} triple.
func summarizeColumn(col *dataset.Column) dataset.ColumnSummary {
	missing := 0
	distinct := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			missing++
			continue
		}
		distinct[col.CellLabel(i)] = struct{}{}
	}
	return dataset.ColumnSummary{
		Name:     col.Name,
		TypeName: col.TypeName,
		Missing:  missing,
		Distinct: len(distinct),
	}
}

// profileNumeric computes descriptive statistics over the non-null cells.
func profileNumeric(col *dataset.Column) (dataset.NumericProfile, bool) {
	values := col.NonNull()
	if len(values) == 0 {
		return dataset.NumericProfile{}, false
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviation(values)

	return dataset.NumericProfile{
		Name:     col.Name,
		Count:    len(values),
		Min:      min,
		Max:      max,
		Mean:     mean,
		Median:   median,
		StdDev:   stdDev,
		Skewness: stat.Skew(values, nil),
		Kurtosis: stat.ExKurtosis(values, nil),
	}, true
}
