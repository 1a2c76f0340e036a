package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorGrid          // empty grid dots
	ColorTrack         // unlocked track
	ColorLocked        // track fixed by resolution
	ColorManual        // track fixed by rotation
	ColorCursor        // editor cursor
	ColorStatus        // status line text
)
