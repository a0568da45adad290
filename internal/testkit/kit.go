// Package testkit provides small dataset fixtures shared across tests.
package testkit

import (
	"covidlens/adapters/tabular"
	"covidlens/domain/dataset"
	dsproc "covidlens/internal/dataset"
)

// RawHeaders returns the full raw header row: the six columns the cleaning
// step drops plus the five it keeps.
func RawHeaders() []string {
	return []string{
		"Data As Of", "Start Date", "End Date", "State", "Footnote", "Group",
		"Year", "Race and Hispanic Origin Group", "Age Group",
		"COVID-19 Deaths", "Total Deaths",
	}
}

// ToyRecords is the 4-row fixture: two years, doubled death counts, so
// group medians and rescale endpoints are easy to assert by hand.
func ToyRecords() [][]string {
	return [][]string{
		{"2023-01-01", "2020-01-01", "2020-12-31", "US", "", "By Year", "2020", "White", "0-17", "1", "10"},
		{"2023-01-01", "2020-01-01", "2020-12-31", "US", "", "By Year", "2020", "Black", "18-64", "2", "20"},
		{"2023-01-01", "2021-01-01", "2021-12-31", "US", "", "By Year", "2021", "White", "0-17", "3", "30"},
		{"2023-01-01", "2021-01-01", "2021-12-31", "US", "", "By Year", "2021", "Black", "18-64", "4", "40"},
	}
}

// ToyRawTable wraps the fixture rows as a reader result.
func ToyRawTable() *tabular.RawTable {
	return &tabular.RawTable{Headers: RawHeaders(), Records: ToyRecords()}
}

// ToyTable runs the real cleaning pipeline over the fixture.
func ToyTable() (*dataset.Table, error) {
	processor := dsproc.NewProcessor(dataset.DefaultCleaningSpec())
	return processor.Clean(ToyRawTable(), "toy.csv")
}

// RawTableWith returns a raw table with the standard headers and the given
// records, for tests that need missing or malformed cells.
func RawTableWith(records [][]string) *tabular.RawTable {
	return &tabular.RawTable{Headers: RawHeaders(), Records: records}
}
