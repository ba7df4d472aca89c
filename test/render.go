package test

import (
	"github.com/halfcell/chop/internal/compositor"
)

// RenderPlain returns a frame's rows as unstyled text, one string per
// row, for golden-style assertions.
func RenderPlain(f compositor.Frame) []string {
	rows := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		rows[i] = line.Text()
	}
	return rows
}

// RowWidths returns the cell width of every composed row.
func RowWidths(f compositor.Frame) []int {
	widths := make([]int, len(f.Lines))
	for i, line := range f.Lines {
		widths[i] = line.Width()
	}
	return widths
}
