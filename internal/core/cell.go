package core

// Cell is a single track segment on the grid.
type Cell struct {
	Coord     Coord
	Direction Direction

	// Locked cells keep their shape when neighbours are re-resolved.
	Locked bool

	// Manual is set by explicit rotation. A manual cell stays locked until erased.
	Manual bool
}

// NewCell creates an unresolved, unlocked cell at the given coordinate.
func NewCell(c Coord) Cell {
	return Cell{Coord: c, Direction: DirNone}
}

// Open returns the sides the cell currently connects.
func (c *Cell) Open() Sides {
	return c.Direction.Open()
}

// IsOpen reports whether the cell connects the given side.
func (c *Cell) IsOpen(s Side) bool {
	return c.Direction.IsOpen(s)
}

// Faces reports whether the cell has an open side toward the neighbouring coordinate.
func (c *Cell) Faces(other Coord) bool {
	s, ok := c.Coord.SideOf(other)
	return ok && c.IsOpen(s)
}

// ConnectedUp reports whether the cell connects upward.
func (c *Cell) ConnectedUp() bool { return c.IsOpen(SideUp) }

// ConnectedRight reports whether the cell connects to the right.
func (c *Cell) ConnectedRight() bool { return c.IsOpen(SideRight) }

// ConnectedDown reports whether the cell connects downward.
func (c *Cell) ConnectedDown() bool { return c.IsOpen(SideDown) }

// ConnectedLeft reports whether the cell connects to the left.
func (c *Cell) ConnectedLeft() bool { return c.IsOpen(SideLeft) }
