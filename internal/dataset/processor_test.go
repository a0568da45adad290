package dataset

import (
	"errors"
	"testing"

	"covidlens/adapters/tabular"
	"covidlens/domain/core"
	domds "covidlens/domain/dataset"
)

func rawHeaders() []string {
	return []string{
		"Data As Of", "Start Date", "End Date", "State", "Footnote", "Group",
		"Year", "Race and Hispanic Origin Group", "Age Group",
		"COVID-19 Deaths", "Total Deaths",
	}
}

func rawRecord(year, race, age, covid, total string) []string {
	return []string{"2023-01-01", "2020-01-01", "2020-12-31", "US", "", "By Year", year, race, age, covid, total}
}

func TestCleanDropsAndRenames(t *testing.T) {
	raw := &tabular.RawTable{
		Headers: rawHeaders(),
		Records: [][]string{
			rawRecord("2020", "White", "0-17", "1", "10"),
			rawRecord("2021", "Black", "18-64", "2", "20"),
		},
	}

	table, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	wantPresent := []string{"year", "race", "age_group", "covid_deaths", "total_deaths"}
	for _, name := range wantPresent {
		if _, ok := table.Col(core.ColumnKey(name)); !ok {
			t.Errorf("expected renamed column %q to be present", name)
		}
	}

	dropped := []string{"Data As Of", "Start Date", "End Date", "State", "Footnote", "Group"}
	for _, name := range dropped {
		if _, ok := table.Col(core.ColumnKey(name)); ok {
			t.Errorf("expected dropped column %q to be absent", name)
		}
	}

	if got := len(table.Columns()); got != 5 {
		t.Errorf("expected 5 columns after cleaning, got %d", got)
	}
	if table.Nrow() != 2 {
		t.Errorf("expected 2 rows, got %d", table.Nrow())
	}
}

func TestCleanColumnOrder(t *testing.T) {
	raw := &tabular.RawTable{
		Headers: rawHeaders(),
		Records: [][]string{rawRecord("2020", "White", "0-17", "1", "10")},
	}
	table, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	want := []core.ColumnKey{"year", "race", "age_group", "covid_deaths", "total_deaths"}
	got := table.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d: want %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCleanMissingColumnAborts(t *testing.T) {
	headers := rawHeaders()[:9] // missing the death-count columns
	records := [][]string{rawRecord("2020", "White", "0-17", "1", "10")[:9]}
	raw := &tabular.RawTable{Headers: headers, Records: records}

	_, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err == nil {
		t.Fatal("expected missing-column error, got nil")
	}
	if !errors.Is(err, core.ErrColumnMissing) {
		t.Errorf("expected ErrColumnMissing, got %v", err)
	}
}

func TestCleanMissingDropColumnAborts(t *testing.T) {
	headers := make([]string, 0, 10)
	for _, h := range rawHeaders() {
		if h == "State" {
			continue
		}
		headers = append(headers, h)
	}
	record := rawRecord("2020", "White", "0-17", "1", "10")
	records := [][]string{append(record[:3:3], record[4:]...)}
	raw := &tabular.RawTable{Headers: headers, Records: records}

	_, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err == nil {
		t.Fatal("expected missing-column error for an absent dropped column, got nil")
	}
	if !errors.Is(err, core.ErrColumnMissing) {
		t.Errorf("expected ErrColumnMissing, got %v", err)
	}
}

func TestCleanNonNumericAborts(t *testing.T) {
	raw := &tabular.RawTable{
		Headers: rawHeaders(),
		Records: [][]string{rawRecord("2020", "White", "0-17", "suppressed", "10")},
	}

	_, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err == nil {
		t.Fatal("expected non-numeric error, got nil")
	}
	if !errors.Is(err, core.ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric, got %v", err)
	}
}

func TestCleanNullableNumericCells(t *testing.T) {
	raw := &tabular.RawTable{
		Headers: rawHeaders(),
		Records: [][]string{
			rawRecord("2020", "White", "0-17", "", "10"),
			rawRecord("2020", "Black", "18-64", "5", "NA"),
			rawRecord("2021", "White", "0-17", "7", "30"),
		},
	}

	table, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	covid, _ := table.Col("covid_deaths")
	if covid.Valid[0] {
		t.Error("empty covid_deaths cell should be null")
	}
	if !covid.Valid[1] || covid.Floats[1] != 5 {
		t.Errorf("expected covid_deaths[1]=5, got valid=%v value=%v", covid.Valid[1], covid.Floats[1])
	}

	total, _ := table.Col("total_deaths")
	if total.Valid[1] {
		t.Error("NA total_deaths cell should be null")
	}
}

func TestCleanThousandsSeparators(t *testing.T) {
	raw := &tabular.RawTable{
		Headers: rawHeaders(),
		Records: [][]string{rawRecord("2020", "White", "0-17", "1,204", "12,450")},
	}

	table, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	covid, _ := table.Col("covid_deaths")
	if covid.Floats[0] != 1204 {
		t.Errorf("expected 1204, got %v", covid.Floats[0])
	}
}

func TestCleanEmptyDataset(t *testing.T) {
	raw := &tabular.RawTable{Headers: rawHeaders(), Records: [][]string{}}

	_, err := NewProcessor(domds.DefaultCleaningSpec()).Clean(raw, "test.csv")
	if !errors.Is(err, core.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}
