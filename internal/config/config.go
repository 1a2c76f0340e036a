// Package config provides YAML-based configuration loading for the track
// editor, its engine settings and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-trains/internal/core"
)

// Config is the full application configuration.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	UI     UIConfig     `yaml:"ui"`
	Server ServerConfig `yaml:"server"`
}

// BoardConfig holds direction engine settings.
type BoardConfig struct {
	IsolatedPolicy   string `yaml:"isolated_policy"`   // "reset" or "hold"
	DefaultDirection string `yaml:"default_direction"` // "Horizontal" or "Vertical"
}

// UIConfig holds terminal editor settings.
type UIConfig struct {
	CellWidth     int           `yaml:"cell_width"`
	ShowHelp      bool          `yaml:"show_help"`
	Mouse         bool          `yaml:"mouse"`
	StatusTimeout time.Duration `yaml:"status_timeout"`
	Palette       Palette       `yaml:"palette"`
}

// Palette maps board elements to terminal colors (ANSI index or hex).
type Palette struct {
	Grid   string `yaml:"grid"`
	Track  string `yaml:"track"`
	Locked string `yaml:"locked"`
	Manual string `yaml:"manual"`
	Cursor string `yaml:"cursor"`
	Status string `yaml:"status"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // empty means ~/.trains/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// EngineOptions converts the board section into engine options.
func (b BoardConfig) EngineOptions() ([]core.EngineOption, error) {
	policy, err := core.ParseIsolatedPolicy(b.IsolatedPolicy)
	if err != nil {
		return nil, fmt.Errorf("config: board: %w", err)
	}
	opts := []core.EngineOption{core.WithIsolatedPolicy(policy)}

	if b.DefaultDirection != "" {
		dir, err := core.ParseDirection(b.DefaultDirection)
		if err != nil {
			return nil, fmt.Errorf("config: board: %w", err)
		}
		if !dir.IsStraight() {
			return nil, fmt.Errorf("config: board: default_direction must be Horizontal or Vertical, got %s", dir)
		}
		opts = append(opts, core.WithDefaultDirection(dir))
	}
	return opts, nil
}

// Validate checks values that cannot be corrected silently.
func (c Config) Validate() error {
	if _, err := c.Board.EngineOptions(); err != nil {
		return err
	}
	if c.UI.CellWidth < 1 || c.UI.CellWidth > 4 {
		return fmt.Errorf("config: ui: cell_width must be between 1 and 4, got %d", c.UI.CellWidth)
	}
	if c.UI.StatusTimeout < 0 {
		return fmt.Errorf("config: ui: status_timeout must not be negative")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server: address is required")
	}
	return nil
}
