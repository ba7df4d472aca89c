package screen

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func makeLine(texts ...string) Line {
	line := make(Line, 0, len(texts))
	for _, t := range texts {
		line = append(line, &Segment{Text: t})
	}
	return line
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want int
	}{
		{"empty", Line{}, 0},
		{"ascii", makeLine("hello"), 5},
		{"multiple segments", makeLine("ab", "cd", "e"), 5},
		{"wide glyphs", makeLine("日本"), 4},
		{"mixed", makeLine("a日b"), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.Width())
		})
	}
}

func TestLineClip(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		from, to int
		want     string
	}{
		{"full range", makeLine("hello"), 0, 5, "hello"},
		{"prefix", makeLine("hello"), 0, 2, "he"},
		{"suffix", makeLine("hello"), 3, 5, "lo"},
		{"middle", makeLine("hello"), 1, 4, "ell"},
		{"across segments", makeLine("abc", "def"), 2, 4, "cd"},
		{"beyond end pads", makeLine("ab"), 0, 5, "ab   "},
		{"fully beyond end", makeLine("ab"), 3, 6, "   "},
		{"negative from pads left", makeLine("abc"), -2, 2, "  ab"},
		{"empty range", makeLine("abc"), 2, 2, ""},
		{"inverted range", makeLine("abc"), 3, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Clip(tt.from, tt.to)
			assert.Equal(t, tt.want, got.Text())
			if tt.to > tt.from {
				assert.Equal(t, tt.to-tt.from, got.Width())
			}
		})
	}
}

func TestLineClip_WideGlyphs(t *testing.T) {
	// 日本語 occupies cells 0-1, 2-3, 4-5.
	line := makeLine("日本語")

	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{"whole glyphs survive", 0, 4, "日本"},
		{"cut inside first glyph", 1, 4, " 本"},
		{"cut inside last glyph", 0, 3, "日 "},
		{"both boundaries inside glyphs", 1, 5, " 本 "},
		{"single cell of a wide glyph", 2, 3, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := line.Clip(tt.from, tt.to)
			assert.Equal(t, tt.want, got.Text())
			assert.Equal(t, tt.to-tt.from, got.Width())
		})
	}
}

func TestLineClip_KeepsStyles(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	line := Line{
		&Segment{Text: "ab"},
		&Segment{Text: "cd", Style: bold},
	}

	got := line.Clip(1, 3)
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Text)
	assert.Equal(t, "c", got[1].Text)
	assert.Equal(t, bold.Render("c"), got[1].String())
}

func TestLinePadWith(t *testing.T) {
	line := makeLine("ab")

	padded := line.PadWith(5, lipgloss.NewStyle())
	assert.Equal(t, 5, padded.Width())
	assert.Equal(t, "ab   ", padded.Text())

	// Already wide enough: unchanged.
	assert.Equal(t, "ab", makeLine("ab").PadWith(2, lipgloss.NewStyle()).Text())
	assert.Equal(t, "ab", makeLine("ab").PadWith(1, lipgloss.NewStyle()).Text())
}

func TestFill(t *testing.T) {
	assert.Equal(t, "....", Fill(4, '.', lipgloss.NewStyle()).Text())
	assert.Equal(t, 0, Fill(0, '.', lipgloss.NewStyle()).Width())

	// Wide fill glyph with an odd width gets a trailing space.
	wide := Fill(5, '日', lipgloss.NewStyle())
	assert.Equal(t, 5, wide.Width())
	assert.Equal(t, "日日 ", wide.Text())
}

func TestSplitLines(t *testing.T) {
	segments := []*Segment{
		{Text: "one\ntw"},
		{Text: "o\nthree"},
	}

	lines := SplitLines(segments)
	assert.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0].Text())
	assert.Equal(t, "two", lines[1].Text())
	assert.Equal(t, "three", lines[2].Text())
}

func TestSplitLines_EmptyLines(t *testing.T) {
	lines := SplitLines([]*Segment{{Text: "a\n\nb"}})
	assert.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0].Text())
	assert.Equal(t, "", lines[1].Text())
	assert.Equal(t, "b", lines[2].Text())
}
