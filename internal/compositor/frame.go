package compositor

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/halfcell/chop/internal/screen"
)

// Frame is the result of one composition pass: one line per row of the
// target rectangle, each exactly the rectangle's width.
type Frame struct {
	Rect  cellbuf.Rectangle
	Lines []screen.Line
}

// Line returns the composed line for an absolute screen row, or nil
// when the row lies outside the frame.
func (f Frame) Line(screenRow int) screen.Line {
	i := screenRow - f.Rect.Min.Y
	if i < 0 || i >= len(f.Lines) {
		return nil
	}
	return f.Lines[i]
}

// Render returns the frame as styled ANSI text, rows joined by
// newlines.
func (f Frame) Render() string {
	rows := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		rows[i] = line.Render()
	}
	return strings.Join(rows, "\n")
}

// Splice overwrites the cells of this frame covered by a partial
// frame. The partial rectangle is clipped to this frame's rectangle;
// rows and columns outside it are left untouched.
func (f *Frame) Splice(partial Frame) {
	overlap := f.Rect.Intersect(partial.Rect)
	if overlap.Empty() {
		return
	}
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		dst := f.Line(y)
		src := partial.Line(y).Clip(overlap.Min.X-partial.Rect.Min.X, overlap.Max.X-partial.Rect.Min.X)
		merged := make(screen.Line, 0, len(dst)+len(src))
		merged = append(merged, dst.Clip(0, overlap.Min.X-f.Rect.Min.X)...)
		merged = append(merged, src...)
		merged = append(merged, dst.Clip(overlap.Max.X-f.Rect.Min.X, f.Rect.Dx())...)
		f.Lines[y-f.Rect.Min.Y] = merged
	}
}

// Draw writes the frame into a cell buffer at its rectangle, for the
// downstream output driver.
func (f Frame) Draw(buf *cellbuf.Buffer) {
	cellbuf.SetContentRect(buf, f.Render(), f.Rect)
}
