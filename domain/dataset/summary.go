package dataset

import "covidlens/domain/core"

// ColumnSummary is one row of the Statistics tab: exact counts over the
// full column, computed once at load and never mutated.
type ColumnSummary struct {
	Name     core.ColumnKey `json:"name"`
	TypeName string         `json:"type"`
	Missing  int            `json:"missing"`
	Distinct int            `json:"distinct"`
}

// NumericProfile extends the summary for numeric columns with descriptive
// statistics and distribution moments.
type NumericProfile struct {
	Name     core.ColumnKey `json:"name"`
	Count    int            `json:"count"`
	Min      float64        `json:"min"`
	Max      float64        `json:"max"`
	Mean     float64        `json:"mean"`
	Median   float64        `json:"median"`
	StdDev   float64        `json:"std_dev"`
	Skewness float64        `json:"skewness"`
	Kurtosis float64        `json:"kurtosis"`
}

// Summary is the derived, read-only description of a loaded table.
type Summary struct {
	DatasetID core.DatasetID                    `json:"dataset_id"`
	Rows      int                               `json:"rows"`
	Columns   []ColumnSummary                   `json:"columns"`
	Profiles  map[core.ColumnKey]NumericProfile `json:"profiles"`
}

// Column finds the summary row for a column name.
func (s *Summary) Column(name core.ColumnKey) (ColumnSummary, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSummary{}, false
}
