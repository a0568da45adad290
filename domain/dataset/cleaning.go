package dataset

// CleaningSpec declares the fixed column surgery applied to the raw file:
// columns to drop, raw-to-clean renames, and which cleaned columns carry
// which cell type. The file must carry every fixed column, dropped ones
// included; any absence aborts startup.
type CleaningSpec struct {
	Drop   []string
	Rename map[string]string // raw header -> cleaned name
	Order  []string          // cleaned names in canonical column order

	IntegerColumns []string // cleaned names parsed as int
	NumericColumns []string // cleaned names parsed as float (nullable)
}

// DefaultCleaningSpec matches the CDC provisional COVID-19 mortality extract:
// six metadata columns dropped, five kept under short names.
func DefaultCleaningSpec() CleaningSpec {
	return CleaningSpec{
		Drop: []string{
			"Data As Of",
			"Start Date",
			"End Date",
			"State",
			"Footnote",
			"Group",
		},
		Rename: map[string]string{
			"Year":                           "year",
			"Race and Hispanic Origin Group": "race",
			"Age Group":                      "age_group",
			"COVID-19 Deaths":                "covid_deaths",
			"Total Deaths":                   "total_deaths",
		},
		Order:          []string{"year", "race", "age_group", "covid_deaths", "total_deaths"},
		IntegerColumns: []string{"year"},
		NumericColumns: []string{"covid_deaths", "total_deaths"},
	}
}

// RawFor returns the raw header that cleans to the given name.
func (s CleaningSpec) RawFor(cleaned string) (string, bool) {
	for raw, clean := range s.Rename {
		if clean == cleaned {
			return raw, true
		}
	}
	return "", false
}

// KeptRawColumns returns the raw headers that survive cleaning, in canonical
// cleaned-column order.
func (s CleaningSpec) KeptRawColumns() []string {
	out := make([]string, 0, len(s.Order))
	for _, cleaned := range s.Order {
		if raw, ok := s.RawFor(cleaned); ok {
			out = append(out, raw)
		}
	}
	return out
}

// IsInteger reports whether the cleaned column parses as int.
func (s CleaningSpec) IsInteger(cleaned string) bool {
	for _, c := range s.IntegerColumns {
		if c == cleaned {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the cleaned column parses as float.
func (s CleaningSpec) IsNumeric(cleaned string) bool {
	for _, c := range s.NumericColumns {
		if c == cleaned {
			return true
		}
	}
	return false
}
