package echarts

import "testing"

func TestColorAtCycles(t *testing.T) {
	if PaletteSize() != 10 {
		t.Fatalf("expected a 10-color palette, got %d", PaletteSize())
	}

	seen := make(map[string]bool)
	for i := 0; i < PaletteSize(); i++ {
		c := ColorAt(i)
		if seen[c] {
			t.Errorf("palette color %s repeats within the first cycle", c)
		}
		seen[c] = true
	}

	// Group 10 wraps back to group 0's color, 11 to 1's, and so on.
	for i := 0; i < 5; i++ {
		if ColorAt(i+10) != ColorAt(i) {
			t.Errorf("ColorAt(%d) should cycle to ColorAt(%d)", i+10, i)
		}
	}
}
