// Package echarts renders the interactive dashboard charts. Builders take
// analysis results and return configured chart objects; they never touch the
// dataset directly.
package echarts

// palette is the fixed 10-color group palette (Category10).
var palette = [...]string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ColorAt assigns group i a palette color, cycling modulo when groups
// exceed the palette size.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// PaletteSize returns the number of distinct colors before cycling.
func PaletteSize() int {
	return len(palette)
}

const (
	chartWidth  = "760px"
	chartHeight = "480px"
)
