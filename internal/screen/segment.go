package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Segment is a contiguous span of text sharing one visual style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Width returns the display width of the segment in terminal cells.
// Double-width glyphs occupy two cells.
func (s *Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

func (s *Segment) String() string {
	return s.Style.Render(s.Text)
}

// SplitLines groups segments into lines by breaking segments at new lines.
func SplitLines(rawSegments []*Segment) []Line {
	var lines []Line
	currentLine := make(Line, 0)
	for _, rawSegment := range rawSegments {
		text := rawSegment.Text
		idx := strings.IndexByte(text, '\n')
		for idx != -1 {
			if idx > 0 {
				currentLine = append(currentLine, &Segment{
					Text:  text[:idx],
					Style: rawSegment.Style,
				})
			}
			lines = append(lines, currentLine)
			currentLine = make(Line, 0)
			text = text[idx+1:]
			idx = strings.IndexByte(text, '\n')
		}
		if len(text) > 0 {
			currentLine = append(currentLine, &Segment{
				Text:  text,
				Style: rawSegment.Style,
			})
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, currentLine)
	}
	return lines
}
