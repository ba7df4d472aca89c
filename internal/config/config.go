// Package config loads the demo application's TOML configuration:
// the panes to compose, their geometry and colors, and the compositor
// background.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// PaneConfig describes one content region of the demo. Panes are
// listed back to front; later panes stack on top of earlier ones.
type PaneConfig struct {
	Title      string `toml:"title"`
	X          int    `toml:"x"`
	Y          int    `toml:"y"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fill       string `toml:"fill"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// FillRune returns the pane's fill glyph, defaulting to space.
func (p PaneConfig) FillRune() rune {
	for _, r := range p.Fill {
		return r
	}
	return ' '
}

type Config struct {
	// Background fills cells no pane covers.
	Background string `toml:"background"`

	// GridCellWidth and GridCellHeight tune the spatial index; zero
	// keeps the built-in bucket size.
	GridCellWidth  int `toml:"grid_cell_width"`
	GridCellHeight int `toml:"grid_cell_height"`

	Panes []PaneConfig `toml:"panes"`
}

// Default returns the configuration used when no config file exists:
// three overlapping panes that exercise stacking and occlusion.
func Default() *Config {
	return &Config{
		Background: ".",
		Panes: []PaneConfig{
			{Title: "back", X: 2, Y: 1, Width: 40, Height: 12, Fill: "a", Foreground: "8"},
			{Title: "middle", X: 14, Y: 4, Width: 36, Height: 12, Fill: "b", Foreground: "4"},
			{Title: "front", X: 26, Y: 7, Width: 32, Height: 10, Fill: "c", Foreground: "2"},
		},
	}
}

// Load reads the configuration file, falling back to Default when none
// is present. The lookup honors CHOP_CONFIG_DIR before the platform
// user config directory.
func Load() (*Config, error) {
	path := configFilePath()
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	return config, nil
}

func configFilePath() string {
	// useful during development or other non-standard setups.
	if dir := os.Getenv("CHOP_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "chop", "config.toml")
	}
	return ""
}
