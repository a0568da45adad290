package dataset

import (
	"strconv"
	"time"

	"covidlens/domain/core"
)

// Kind partitions cleaned columns into the two sets the dashboard cares about.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Column is one typed column of the cleaned dataset. Numeric columns store
// values in Floats with Valid marking non-null cells; categorical columns
// store Labels. A column never mutates after the table is sealed.
type Column struct {
	Name     core.ColumnKey
	Kind     Kind
	TypeName string // declared cell type: "int", "float" or "string"

	Floats []float64
	Valid  []bool
	Labels []string
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// IsNull reports whether cell i holds no value.
func (c *Column) IsNull(i int) bool {
	if c.Kind == KindNumeric {
		return !c.Valid[i]
	}
	return c.Labels[i] == ""
}

// CellLabel returns the display/grouping label for cell i ("" for nulls).
func (c *Column) CellLabel(i int) string {
	if c.Kind == KindCategorical {
		return c.Labels[i]
	}
	if !c.Valid[i] {
		return ""
	}
	if c.TypeName == "int" {
		return strconv.FormatInt(int64(c.Floats[i]), 10)
	}
	return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
}

// NonNull returns the column's numeric values with null cells removed.
func (c *Column) NonNull() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if c.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// Table is the immutable-after-cleaning dataset: a column store built once
// at startup and shared read-only for the process lifetime.
type Table struct {
	ID       core.DatasetID
	Name     string
	LoadedAt time.Time

	columns map[core.ColumnKey]*Column
	order   []core.ColumnKey
	nrow    int
}

// NewTable creates an empty table with a fresh dataset ID.
func NewTable(name string) *Table {
	return &Table{
		ID:       core.NewDatasetID(),
		Name:     name,
		LoadedAt: time.Now(),
		columns:  make(map[core.ColumnKey]*Column),
	}
}

// AddColumn appends a column. The first column fixes the row count.
func (t *Table) AddColumn(c *Column) {
	if len(t.order) == 0 {
		t.nrow = c.Len()
	}
	t.columns[c.Name] = c
	t.order = append(t.order, c.Name)
}

// Col looks up a column by name.
func (t *Table) Col(key core.ColumnKey) (*Column, bool) {
	c, ok := t.columns[key]
	return c, ok
}

// Columns returns all columns in insertion order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.columns[k])
	}
	return out
}

// Names returns column names in insertion order.
func (t *Table) Names() []core.ColumnKey {
	out := make([]core.ColumnKey, len(t.order))
	copy(out, t.order)
	return out
}

// Nrow returns the number of rows.
func (t *Table) Nrow() int {
	return t.nrow
}

// GroupIndex partitions row indices by the labels of the given column,
// preserving first-seen order of the labels. Rows whose group cell is null
// are excluded.
func (t *Table) GroupIndex(key core.ColumnKey) ([]string, map[string][]int, error) {
	col, ok := t.columns[key]
	if !ok {
		return nil, nil, core.NewUnknownGroupError(key.String())
	}
	levels := make([]string, 0, 8)
	byLevel := make(map[string][]int)
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		label := col.CellLabel(i)
		if _, seen := byLevel[label]; !seen {
			levels = append(levels, label)
		}
		byLevel[label] = append(byLevel[label], i)
	}
	return levels, byLevel, nil
}
