package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/halfcell/chop/internal/config"
	"github.com/halfcell/chop/internal/layout"
	"github.com/halfcell/chop/internal/screen"
)

// paneSource renders a titled block: the title row on top, fill glyphs
// below. It produces lines wider or narrower than the region freely;
// the compositor clips and pads to the rectangle.
type paneSource struct {
	title      string
	fill       rune
	width      int
	titleStyle lipgloss.Style
	fillStyle  lipgloss.Style
}

func (p paneSource) Line(row int) screen.Line {
	if row == 0 && p.title != "" {
		title := " " + p.title + " "
		line := screen.Line{&screen.Segment{Text: title, Style: p.titleStyle}}
		if pad := p.width - line.Width(); pad > 0 {
			line = append(line, &screen.Segment{Text: strings.Repeat("-", pad), Style: p.fillStyle})
		}
		return line
	}
	return screen.Fill(p.width, p.fill, p.fillStyle)
}

func newPaneRegion(id layout.RegionID, pane config.PaneConfig) layout.Region {
	style := lipgloss.NewStyle()
	if pane.Foreground != "" {
		style = style.Foreground(lipgloss.Color(pane.Foreground))
	}
	if pane.Background != "" {
		style = style.Background(lipgloss.Color(pane.Background))
	}
	return layout.Region{
		ID:   id,
		Rect: layout.Rect(pane.X, pane.Y, pane.Width, pane.Height),
		Source: paneSource{
			title:      pane.Title,
			fill:       pane.FillRune(),
			width:      pane.Width,
			titleStyle: style.Reverse(true),
			fillStyle:  style,
		},
	}
}
