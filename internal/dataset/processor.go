// Package dataset turns a raw string table into the typed, immutable column
// store the dashboard reads for the rest of the process lifetime.
package dataset

import (
	"strconv"
	"strings"

	"covidlens/adapters/tabular"
	"covidlens/domain/core"
	domds "covidlens/domain/dataset"
	"covidlens/internal"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Processor applies the fixed cleaning spec: drop, rename, then typed
// extraction. Any missing expected column or unparseable numeric cell is a
// startup failure with no recovery.
type Processor struct {
	spec domds.CleaningSpec
	log  *internal.Logger
}

// NewProcessor creates a processor for the given cleaning spec.
func NewProcessor(spec domds.CleaningSpec) *Processor {
	return &Processor{
		spec: spec,
		log:  internal.DefaultLogger.Component("Processor"),
	}
}

// Clean builds the typed table from a raw read. The returned table is the
// shared dataset; nothing mutates it after this call.
func (p *Processor) Clean(raw *tabular.RawTable, name string) (*domds.Table, error) {
	for rawName := range p.spec.Rename {
		if !raw.HasColumn(rawName) {
			return nil, core.NewColumnMissingError(rawName)
		}
	}
	for _, rawName := range p.spec.Drop {
		if !raw.HasColumn(rawName) {
			return nil, core.NewColumnMissingError(rawName)
		}
	}
	if raw.NRows() == 0 {
		return nil, core.ErrEmptyDataset
	}

	records := make([][]string, 0, raw.NRows()+1)
	records = append(records, raw.Headers)
	records = append(records, raw.Records...)

	// All columns load as strings; numeric parsing below stays strict so a
	// bad cell aborts instead of silently becoming NaN.
	df := dataframe.LoadRecords(
		records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	df = df.Select(p.spec.KeptRawColumns())
	if df.Err != nil {
		return nil, df.Err
	}
	for rawName, cleaned := range p.spec.Rename {
		df = df.Rename(cleaned, rawName)
		if df.Err != nil {
			return nil, df.Err
		}
	}
	p.log.Debug("dropped %d columns, kept %d", len(p.spec.Drop), len(p.spec.Order))

	table := domds.NewTable(name)
	for _, cleaned := range p.spec.Order {
		cells := df.Col(cleaned).Records()
		col, err := p.buildColumn(cleaned, cells)
		if err != nil {
			return nil, err
		}
		table.AddColumn(col)
	}

	if table.Nrow() == 0 {
		return nil, core.ErrEmptyDataset
	}

	p.log.Info("cleaned dataset %s: %d rows, %d columns", table.ID, table.Nrow(), len(table.Columns()))
	return table, nil
}

func (p *Processor) buildColumn(name string, cells []string) (*domds.Column, error) {
	key := core.ColumnKey(name)

	switch {
	case p.spec.IsInteger(name) || p.spec.IsNumeric(name):
		typeName := "float"
		if p.spec.IsInteger(name) {
			typeName = "int"
		}
		col := &domds.Column{
			Name:     key,
			Kind:     domds.KindNumeric,
			TypeName: typeName,
			Floats:   make([]float64, len(cells)),
			Valid:    make([]bool, len(cells)),
		}
		for i, cell := range cells {
			if isNullCell(cell) {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
			if err != nil {
				return nil, core.NewNotNumericError(name, i, cell)
			}
			col.Floats[i] = v
			col.Valid[i] = true
		}
		return col, nil

	default:
		col := &domds.Column{
			Name:     key,
			Kind:     domds.KindCategorical,
			TypeName: "string",
			Labels:   make([]string, len(cells)),
		}
		for i, cell := range cells {
			if isNullCell(cell) {
				continue
			}
			col.Labels[i] = cell
		}
		return col, nil
	}
}

// isNullCell treats empty cells and the usual NA spellings as missing.
func isNullCell(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "N/A", "NaN", "nan", "null":
		return true
	}
	return false
}
