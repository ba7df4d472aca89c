package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Line is an ordered sequence of segments forming one row of content.
// Segments are contiguous and non-overlapping; the line's width is the
// sum of its segments' cell widths.
type Line []*Segment

// Width returns the total display width of the line in cells.
func (l Line) Width() int {
	width := 0
	for _, segment := range l {
		width += segment.Width()
	}
	return width
}

// Render returns the line as a styled ANSI string.
func (l Line) Render() string {
	var sb strings.Builder
	for _, segment := range l {
		sb.WriteString(segment.String())
	}
	return sb.String()
}

// Text returns the line's text without styling.
func (l Line) Text() string {
	var sb strings.Builder
	for _, segment := range l {
		sb.WriteString(segment.Text)
	}
	return sb.String()
}

// Clip returns the cells of the line in [from, to).
//
// The result is always exactly to-from cells wide: a range reaching
// past either end of the line is padded with unstyled spaces, and a
// double-width glyph bisected by either boundary is replaced by a
// single styled space in the surviving cell. No emitted segment ever
// contains half a glyph.
func (l Line) Clip(from, to int) Line {
	if to <= from {
		return Line{}
	}
	width := to - from
	clipped := make(Line, 0, len(l)+1)
	if from < 0 {
		clipped = append(clipped, &Segment{Text: strings.Repeat(" ", -from)})
		from = 0
	}
	x := 0
	for _, segment := range l {
		segWidth := segment.Width()
		if x+segWidth <= from {
			x += segWidth
			continue
		}
		if x >= to {
			break
		}
		if x >= from && x+segWidth <= to {
			clipped = append(clipped, segment)
		} else if sub := clipSegment(segment, from-x, to-x); sub != nil {
			clipped = append(clipped, sub)
		}
		x += segWidth
	}
	return clipped.PadTo(width)
}

// clipSegment returns the cells of one segment in [from, to), where
// offsets are relative to the segment's first cell. Glyphs straddling
// a boundary become space padding so the result width is exact.
func clipSegment(segment *Segment, from, to int) *Segment {
	if from < 0 {
		from = 0
	}
	var sb strings.Builder
	x := 0
	graphemes := uniseg.NewGraphemes(segment.Text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		w := graphemes.Width()
		if w == 0 {
			if x > from && x < to {
				sb.WriteString(cluster)
			}
			continue
		}
		if x+w <= from {
			x += w
			continue
		}
		if x >= to {
			break
		}
		if x >= from && x+w <= to {
			sb.WriteString(cluster)
		} else {
			// A double-width glyph cut by the boundary loses the
			// whole glyph; the exposed cells become spaces.
			overlap := min(to, x+w) - max(from, x)
			sb.WriteString(strings.Repeat(" ", overlap))
		}
		x += w
	}
	if sb.Len() == 0 {
		return nil
	}
	return &Segment{Text: sb.String(), Style: segment.Style}
}

// PadTo extends the line with unstyled spaces up to the given width.
// Lines already at least that wide are returned unchanged.
func (l Line) PadTo(width int) Line {
	return l.PadWith(width, lipgloss.NewStyle())
}

// PadWith extends the line with styled spaces up to the given width.
// The receiver is never mutated; sources may hand out the same line
// repeatedly.
func (l Line) PadWith(width int, style lipgloss.Style) Line {
	missing := width - l.Width()
	if missing <= 0 {
		return l
	}
	padded := make(Line, len(l), len(l)+1)
	copy(padded, l)
	return append(padded, &Segment{
		Text:  strings.Repeat(" ", missing),
		Style: style,
	})
}

// Fill returns a line of the given width made of a single repeated
// glyph. A double-width glyph that does not divide the width evenly is
// topped up with a trailing space.
func Fill(width int, r rune, style lipgloss.Style) Line {
	if width <= 0 {
		return Line{}
	}
	rw := uniseg.StringWidth(string(r))
	if rw <= 0 {
		rw = 1
		r = ' '
	}
	var sb strings.Builder
	x := 0
	for ; x+rw <= width; x += rw {
		sb.WriteRune(r)
	}
	for ; x < width; x++ {
		sb.WriteByte(' ')
	}
	return Line{&Segment{Text: sb.String(), Style: style}}
}
