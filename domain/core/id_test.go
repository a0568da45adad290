package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	emptyID := ID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}

	nonEmptyID := ID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseColumnKey tests column key parsing
func TestParseColumnKey(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnKey
		hasError bool
	}{
		{"covid_deaths", ColumnKey("covid_deaths"), false},
		{"year", ColumnKey("year"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseColumnKey(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestHash tests hash construction and comparison
func TestHash(t *testing.T) {
	a := NewHash([]byte("alpha"))
	b := NewHash([]byte("alpha"))
	c := NewHash([]byte("beta"))

	if a.IsEmpty() {
		t.Error("Expected non-empty hash")
	}
	if !a.Equals(b) {
		t.Errorf("Expected identical input to hash identically: %s vs %s", a, b)
	}
	if a.Equals(c) {
		t.Error("Expected different input to hash differently")
	}
	if len(a.Short()) != 12 {
		t.Errorf("Expected 12-char short form, got %q", a.Short())
	}
}
