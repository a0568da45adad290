package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Startup failures abort initialization with no retry.
	ErrColumnMissing = errors.New("expected column not present")
	ErrNotNumeric    = errors.New("non-numeric data in numeric column")
	ErrEmptyDataset  = errors.New("dataset has no rows")

	// Render-time failures stay local to one chart panel.
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownGroup    = errors.New("unknown group column")
	ErrEmptySelection  = errors.New("selection matched no usable rows")
)

// Error constructors with context

func NewColumnMissingError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnMissing, column)
}

func NewNotNumericError(column string, row int, value string) error {
	return fmt.Errorf("%w: column %s row %d value %q", ErrNotNumeric, column, row, value)
}

func NewUnknownVariableError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownVariable, name)
}

func NewUnknownGroupError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownGroup, name)
}

// Error checking helpers

// IsStartupError reports whether err belongs to the class that aborts initialization.
func IsStartupError(err error) bool {
	return errors.Is(err, ErrColumnMissing) ||
		errors.Is(err, ErrNotNumeric) ||
		errors.Is(err, ErrEmptyDataset)
}

// IsRenderError reports whether err is a per-chart render failure.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrUnknownVariable) ||
		errors.Is(err, ErrUnknownGroup) ||
		errors.Is(err, ErrEmptySelection)
}
