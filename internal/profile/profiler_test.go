package profile

import (
	"context"
	"math"
	"testing"

	"covidlens/domain/core"
	"covidlens/domain/dataset"
	dsproc "covidlens/internal/dataset"
	"covidlens/internal/testkit"
)

func dsTable(records [][]string) (*dataset.Table, error) {
	processor := dsproc.NewProcessor(dataset.DefaultCleaningSpec())
	return processor.Clean(testkit.RawTableWith(records), "fixture.csv")
}

func TestSummarizeCounts(t *testing.T) {
	records := make([][]string, 0, 100)
	for i := 0; i < 100; i++ {
		covid := "5"
		if i < 3 {
			covid = "" // exactly three nulls
		}
		race := "White"
		if i%2 == 1 {
			race = "Black"
		}
		records = append(records, []string{
			"2023-01-01", "2020-01-01", "2020-12-31", "US", "", "By Year",
			"2020", race, "0-17", covid, "10",
		})
	}

	table, err := dsTable(records)
	if err != nil {
		t.Fatalf("fixture clean failed: %v", err)
	}

	summary, err := NewProfiler().Summarize(context.Background(), table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	covid, ok := summary.Column("covid_deaths")
	if !ok {
		t.Fatal("covid_deaths summary missing")
	}
	if covid.Missing != 3 {
		t.Errorf("expected missing=3, got %d", covid.Missing)
	}
	if covid.Distinct != 1 {
		t.Errorf("expected distinct=1, got %d", covid.Distinct)
	}

	race, _ := summary.Column("race")
	if race.Missing != 0 || race.Distinct != 2 {
		t.Errorf("race summary: want missing=0 distinct=2, got missing=%d distinct=%d", race.Missing, race.Distinct)
	}

	if summary.Rows != 100 {
		t.Errorf("expected 100 rows, got %d", summary.Rows)
	}
}

func TestSummarizeTypeNames(t *testing.T) {
	table, err := testkit.ToyTable()
	if err != nil {
		t.Fatalf("fixture clean failed: %v", err)
	}
	summary, err := NewProfiler().Summarize(context.Background(), table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	wantTypes := map[string]string{
		"year":         "int",
		"race":         "string",
		"age_group":    "string",
		"covid_deaths": "float",
		"total_deaths": "float",
	}
	for name, want := range wantTypes {
		cs, ok := summary.Column(core.ColumnKey(name))
		if !ok {
			t.Fatalf("summary row for %q missing", name)
		}
		if cs.TypeName != want {
			t.Errorf("%s: want type %q, got %q", name, want, cs.TypeName)
		}
	}
}

func TestNumericProfiles(t *testing.T) {
	table, err := testkit.ToyTable()
	if err != nil {
		t.Fatalf("fixture clean failed: %v", err)
	}
	summary, err := NewProfiler().Summarize(context.Background(), table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	p, ok := summary.Profiles["covid_deaths"]
	if !ok {
		t.Fatal("covid_deaths profile missing")
	}
	if p.Min != 1 || p.Max != 4 {
		t.Errorf("want min=1 max=4, got min=%v max=%v", p.Min, p.Max)
	}
	if math.Abs(p.Mean-2.5) > 1e-9 {
		t.Errorf("want mean=2.5, got %v", p.Mean)
	}
	if math.Abs(p.Median-2.5) > 1e-9 {
		t.Errorf("want median=2.5, got %v", p.Median)
	}
}
