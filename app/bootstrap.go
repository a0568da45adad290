// Package app wires the startup pipeline shared by all binaries: read the
// raw file, clean it into the typed table, and compute the load-time summary.
package app

import (
	"context"
	"os"
	"path/filepath"

	"covidlens/adapters/tabular"
	"covidlens/domain/dataset"
	"covidlens/internal/config"
	dsproc "covidlens/internal/dataset"
	"covidlens/internal/errors"
	"covidlens/internal/profile"
)

// LoadDataset runs the full startup pipeline. Any failure here aborts the
// process; there is no retry.
func LoadDataset(ctx context.Context, cfg *config.Config) (*dataset.Table, *dataset.Summary, error) {
	reader := tabular.NewDataReader(cfg.Data.File)
	raw, err := reader.ReadData()
	if err != nil {
		return nil, nil, errors.DataFileError(cfg.Data.File, err)
	}

	processor := dsproc.NewProcessor(dataset.DefaultCleaningSpec())
	name := filepath.Base(cfg.Data.File)
	table, err := processor.Clean(raw, name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset cleaning failed")
	}

	summary, err := profile.NewProfiler().Summarize(ctx, table)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset profiling failed")
	}

	return table, summary, nil
}

// ReadNotes loads the optional markdown methodology notes. A missing or
// unset notes file is not an error; the Notes panel simply stays hidden.
func ReadNotes(cfg *config.Config) []byte {
	if cfg.Data.NotesFile == "" {
		return nil
	}
	notes, err := os.ReadFile(cfg.Data.NotesFile)
	if err != nil {
		return nil
	}
	return notes
}
