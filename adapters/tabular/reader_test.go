package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deaths.csv")
	content := "Year,Race,COVID-19 Deaths\n2020, White ,10\n2021,Black,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	raw, err := NewDataReader(path).ReadData()
	if err != nil {
		t.Fatalf("ReadData failed: %v", err)
	}

	if len(raw.Headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(raw.Headers))
	}
	if raw.NRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", raw.NRows())
	}
	if raw.Records[0][1] != "White" {
		t.Errorf("cells should be trimmed, got %q", raw.Records[0][1])
	}
	if raw.Records[1][2] != "" {
		t.Errorf("empty cell should stay empty, got %q", raw.Records[1][2])
	}
	if !raw.HasColumn("Year") || raw.HasColumn("State") {
		t.Error("HasColumn misreports headers")
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("Year,Race\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewDataReader(path).ReadData(); err == nil {
		t.Error("expected error for header-only file")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := NewDataReader("/nonexistent/deaths.csv").ReadData(); err == nil {
		t.Error("expected error for missing file")
	}
}
