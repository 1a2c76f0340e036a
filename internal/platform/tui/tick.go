// Package tui provides the Bubble Tea integration for the track editor.
// It handles the terminal UI loop, input mapping, and the layout picker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusExpiredMsg clears the status line if no newer message replaced it.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd returns a command that fires once the status timeout has passed.
func expireStatusCmd(timeout time.Duration, seq int) tea.Cmd {
	if timeout <= 0 {
		return nil
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
