package core

// Neighbors holds the cells adjacent to a coordinate.
// A nil entry means no cell, or a cell filtered out by the locked rule.
type Neighbors struct {
	Up    *Cell
	Right *Cell
	Down  *Cell
	Left  *Cell
}

// At returns the neighbour on the given side.
func (n Neighbors) At(s Side) *Cell {
	switch s {
	case SideUp:
		return n.Up
	case SideRight:
		return n.Right
	case SideDown:
		return n.Down
	case SideLeft:
		return n.Left
	}
	return nil
}

func (n *Neighbors) set(s Side, cell *Cell) {
	switch s {
	case SideUp:
		n.Up = cell
	case SideRight:
		n.Right = cell
	case SideDown:
		n.Down = cell
	case SideLeft:
		n.Left = cell
	}
}

// All returns the present neighbours in the order up, right, down, left.
func (n Neighbors) All() []*Cell {
	all := make([]*Cell, 0, 4)
	for _, s := range AllSides {
		if cell := n.At(s); cell != nil {
			all = append(all, cell)
		}
	}
	return all
}

// Sides returns the set of sides with a present neighbour.
func (n Neighbors) Sides() Sides {
	var set Sides
	for _, s := range AllSides {
		if n.At(s) != nil {
			set = set.With(s)
		}
	}
	return set
}

// Neighbors fetches the four cells around c.
//
// Unless includeLockedOpposing is set, a locked neighbour that is not open back
// toward c is left out. Such a neighbour has already committed to another shape,
// so c must not assume a connection it will never get.
func (g *Grid) Neighbors(c Coord, includeLockedOpposing bool) Neighbors {
	var n Neighbors
	for _, s := range AllSides {
		cell, ok := g.Get(c.Step(s))
		if !ok {
			continue
		}
		if !includeLockedOpposing && cell.Locked && !cell.IsOpen(s.Opposite()) {
			continue
		}
		n.set(s, cell)
	}
	return n
}
