package layout

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/halfcell/chop/internal/screen"
)

// SourceFunc adapts a plain function to the LineSource interface.
type SourceFunc func(row int) screen.Line

func (f SourceFunc) Line(row int) screen.Line {
	return f(row)
}

// TextSource serves pre-split lines of uniformly styled text.
type TextSource struct {
	lines []screen.Line
}

// NewTextSource splits text at newlines into one line per row.
func NewTextSource(text string, style lipgloss.Style) *TextSource {
	return &TextSource{
		lines: screen.SplitLines([]*screen.Segment{{Text: text, Style: style}}),
	}
}

// NewSegmentSource builds a TextSource from raw segments, breaking them
// into lines at newlines.
func NewSegmentSource(segments []*screen.Segment) *TextSource {
	return &TextSource{lines: screen.SplitLines(segments)}
}

func (t *TextSource) Line(row int) screen.Line {
	if row < 0 || row >= len(t.lines) {
		return nil
	}
	return t.lines[row]
}

// Len returns the number of content rows the source holds.
func (t *TextSource) Len() int {
	return len(t.lines)
}

// FillSource serves an endless block of one repeated glyph.
type FillSource struct {
	Rune  rune
	Width int
	Style lipgloss.Style
}

func (f FillSource) Line(int) screen.Line {
	return screen.Fill(f.Width, f.Rune, f.Style)
}
