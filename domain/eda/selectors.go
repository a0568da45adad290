// Package eda models the dashboard's selector state and the explicit
// selector-to-chart dependency wiring. Every chart render is a pure function
// of the immutable dataset plus the current selector values, so "reactivity"
// is recompute-on-read: the client re-requests exactly the charts that
// declare a dependency on the selector that changed.
package eda

import (
	"covidlens/domain/core"
	"covidlens/domain/dataset"
)

// Selector names one of the three dashboard controls.
type Selector string

const (
	SelectorGroup    Selector = "group"
	SelectorVariable Selector = "variable"
	SelectorSize     Selector = "size"
)

// Chart names one of the rendered views.
type Chart string

const (
	ChartBox       Chart = "box"
	ChartHistogram Chart = "histogram"
	ChartScatter   Chart = "scatter"
	ChartSummary   Chart = "summary"
)

// Dependencies enumerates which selectors each chart subscribes to. The
// summary table subscribes to nothing and never re-renders.
func Dependencies() map[Chart][]Selector {
	return map[Chart][]Selector{
		ChartBox:       {SelectorVariable, SelectorGroup},
		ChartHistogram: {SelectorVariable, SelectorGroup},
		ChartScatter:   {SelectorVariable, SelectorSize, SelectorGroup},
		ChartSummary:   {},
	}
}

// State holds the current selection of the three controls.
type State struct {
	Group    core.ColumnKey `json:"group"`
	Variable core.ColumnKey `json:"variable"`
	Size     core.ColumnKey `json:"size"`
}

// VariableOptions is the fixed two-option set offered by the variable and
// size selectors.
func VariableOptions() []core.ColumnKey {
	return []core.ColumnKey{"covid_deaths", "total_deaths"}
}

// OtherVariable returns the scatter y-variable for a chosen x-variable: the
// other of the two fixed measures. This is deliberately a two-value toggle,
// not a general complement; adding a third measure needs a real y selector.
func OtherVariable(v core.ColumnKey) (core.ColumnKey, error) {
	opts := VariableOptions()
	switch v {
	case opts[0]:
		return opts[1], nil
	case opts[1]:
		return opts[0], nil
	default:
		return "", core.NewUnknownVariableError(v.String())
	}
}

// IsVariable reports whether v is one of the two fixed measures.
func IsVariable(v core.ColumnKey) bool {
	for _, o := range VariableOptions() {
		if o == v {
			return true
		}
	}
	return false
}

// GroupOptions restricts the group-by control to columns whose distinct
// count stays under the cardinality ceiling, keeping grouped plots legible.
// Computed once from the load-time summary; insertion order is preserved.
func GroupOptions(summary *dataset.Summary, ceiling int) []core.ColumnKey {
	out := make([]core.ColumnKey, 0, len(summary.Columns))
	for _, c := range summary.Columns {
		if c.Distinct < ceiling {
			out = append(out, c.Name)
		}
	}
	return out
}

// Options bundles the option sets served to the client alongside the
// dependency registry.
type Options struct {
	Group        []core.ColumnKey     `json:"group"`
	Variable     []core.ColumnKey     `json:"variable"`
	Size         []core.ColumnKey     `json:"size"`
	Dependencies map[Chart][]Selector `json:"dependencies"`
}

// DefaultState picks the first option of each control.
func DefaultState(opts Options) State {
	s := State{}
	if len(opts.Group) > 0 {
		s.Group = opts.Group[0]
	}
	if len(opts.Variable) > 0 {
		s.Variable = opts.Variable[0]
	}
	if len(opts.Size) > 0 {
		s.Size = opts.Size[0]
	}
	return s
}

// NewOptions derives the full option bundle from a load-time summary.
func NewOptions(summary *dataset.Summary, ceiling int) Options {
	return Options{
		Group:        GroupOptions(summary, ceiling),
		Variable:     VariableOptions(),
		Size:         VariableOptions(),
		Dependencies: Dependencies(),
	}
}
