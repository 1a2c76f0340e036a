package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trains/internal/config"
	"github.com/vovakirdan/tui-trains/internal/core"
)

// Theme contains all configurable visual styles for the editor.
type Theme struct {
	// Board colors, keyed by the color the renderer assigns
	Colors map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	ToolActive   lipgloss.Style
	ToolIdle     lipgloss.Style
	Status       lipgloss.Style

	// Layout picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
}

// NewTheme builds a theme from a configured palette.
func NewTheme(p config.Palette) Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorGrid:    fg(p.Grid),
			core.ColorTrack:   fg(p.Track),
			core.ColorLocked:  fg(p.Locked),
			core.ColorManual:  fg(p.Manual).Bold(true),
			core.ColorCursor:  fg(p.Cursor).Bold(true).Reverse(true),
			core.ColorStatus:  fg(p.Status),
		},

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ToolActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ToolIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:       fg(p.Status),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// DefaultTheme returns the theme for the default palette.
func DefaultTheme() Theme {
	return NewTheme(config.Default().UI.Palette)
}
