// Command chopdemo composes a handful of overlapping panes onto the
// terminal. Tab cycles the active pane, arrow keys move it, and the
// frame on screen is always the output of a single compose pass.
package main

import (
	"fmt"
	"image"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halfcell/chop/internal/compositor"
	"github.com/halfcell/chop/internal/config"
	"github.com/halfcell/chop/internal/layout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(newModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	comp    *compositor.Compositor
	regions []layout.Region
	active  int
	width   int
	height  int
}

func newModel(cfg *config.Config) *model {
	opts := compositor.Options{
		BackgroundRune: ' ',
		GridCellWidth:  cfg.GridCellWidth,
		GridCellHeight: cfg.GridCellHeight,
	}
	for _, r := range cfg.Background {
		opts.BackgroundRune = r
		break
	}
	m := &model{comp: compositor.New(opts)}
	for i, pane := range cfg.Panes {
		m.regions = append(m.regions, newPaneRegion(layout.RegionID(i+1), pane))
	}
	m.active = len(m.regions) - 1
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if len(m.regions) > 0 {
				m.active = (m.active + 1) % len(m.regions)
			}
		case "up":
			m.moveActive(0, -1)
		case "down":
			m.moveActive(0, 1)
		case "left":
			m.moveActive(-1, 0)
		case "right":
			m.moveActive(1, 0)
		}
	}
	return m, nil
}

func (m *model) moveActive(dx, dy int) {
	if m.active < 0 || m.active >= len(m.regions) {
		return
	}
	region := &m.regions[m.active]
	region.Rect = region.Rect.Add(image.Pt(dx, dy))
	// Geometry changed; invalidate the compositor's cached lines.
	region.Version++
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	frame := m.comp.Compose(m.regions, layout.Rect(0, 0, m.width, m.height))
	return frame.Render()
}
