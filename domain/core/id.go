package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// DatasetID identifies one loaded dataset snapshot.
	DatasetID ID
	// RenderID tags a single chart render for log correlation.
	RenderID ID
	// ColumnKey names a cleaned dataset column.
	ColumnKey string
)

func (id DatasetID) String() string { return ID(id).String() }
func (id RenderID) String() string  { return ID(id).String() }
func (k ColumnKey) String() string  { return string(k) }

// NewDatasetID creates a fresh dataset identifier
func NewDatasetID() DatasetID { return DatasetID(NewID()) }

// NewRenderID creates a fresh render identifier
func NewRenderID() RenderID { return RenderID(NewID()) }

// ParseColumnKey parses a string into a ColumnKey
func ParseColumnKey(s string) (ColumnKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("column key cannot be empty")
	}
	return ColumnKey(s), nil
}
