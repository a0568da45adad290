package tabular

// RawTable is the untyped result of reading a source file: a header row and
// string records, one slice per data row, aligned with the headers.
type RawTable struct {
	Headers []string
	Records [][]string
}

// NRows returns the number of data rows.
func (r *RawTable) NRows() int {
	return len(r.Records)
}

// HasColumn reports whether a header is present.
func (r *RawTable) HasColumn(name string) bool {
	for _, h := range r.Headers {
		if h == name {
			return true
		}
	}
	return false
}
