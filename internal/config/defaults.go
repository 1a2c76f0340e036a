package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/trains.yaml
var defaultTrainsYAML []byte

// Default returns the hardcoded configuration used when nothing else loads.
func Default() Config {
	return Config{
		Board: BoardConfig{
			IsolatedPolicy:   "reset",
			DefaultDirection: "Horizontal",
		},
		UI: UIConfig{
			CellWidth:     2,
			ShowHelp:      true,
			Mouse:         true,
			StatusTimeout: 2 * time.Second,
			Palette: Palette{
				Grid:   "238",
				Track:  "252",
				Locked: "51",
				Manual: "226",
				Cursor: "205",
				Status: "245",
			},
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTrainsYAML
}
