package dataset

import (
	"strings"

	"covidlens/domain/core"
)

// Fingerprint hashes the table's cleaned content: column names in order,
// then every cell label row-major with unit separators so adjacent cells
// cannot collide. Null cells contribute the empty label.
func (t *Table) Fingerprint() core.DatasetFingerprint {
	var b strings.Builder
	for _, name := range t.order {
		b.WriteString(name.String())
		b.WriteByte(0x1f)
	}
	b.WriteByte(0x1e)
	cols := t.Columns()
	for i := 0; i < t.nrow; i++ {
		for _, c := range cols {
			b.WriteString(c.CellLabel(i))
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
	}
	return core.NewDatasetFingerprint([]byte(b.String()))
}
