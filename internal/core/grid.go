package core

import "sort"

// Grid is the sparse index of track cells.
// Cells live in a dense arena; index maps a packed coordinate to a slot.
// A *Cell returned by Get is borrowed: it is invalidated by the next Set or Remove.
type Grid struct {
	cells []Cell
	index map[Key]int
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{index: make(map[Key]int)}
}

// Get returns the cell at the given coordinate.
func (g *Grid) Get(c Coord) (*Cell, bool) {
	i, ok := g.index[c.Key()]
	if !ok {
		return nil, false
	}
	return &g.cells[i], true
}

// Has reports whether a cell is stored at the coordinate.
func (g *Grid) Has(c Coord) bool {
	_, ok := g.index[c.Key()]
	return ok
}

// Set stores the cell at its coordinate, replacing any existing cell.
func (g *Grid) Set(cell Cell) {
	k := cell.Coord.Key()
	if i, ok := g.index[k]; ok {
		g.cells[i] = cell
		return
	}
	g.index[k] = len(g.cells)
	g.cells = append(g.cells, cell)
}

// Remove deletes the cell at the coordinate. Returns false if none was stored.
func (g *Grid) Remove(c Coord) bool {
	k := c.Key()
	i, ok := g.index[k]
	if !ok {
		return false
	}

	// Move the last cell into the hole
	last := len(g.cells) - 1
	if i != last {
		g.cells[i] = g.cells[last]
		g.index[g.cells[i].Coord.Key()] = i
	}
	g.cells = g.cells[:last]
	delete(g.index, k)
	return true
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Clear removes every cell.
func (g *Grid) Clear() {
	g.cells = g.cells[:0]
	g.index = make(map[Key]int)
}

// All returns copies of every cell, ordered by row then column.
func (g *Grid) All() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Row != out[j].Coord.Row {
			return out[i].Coord.Row < out[j].Coord.Row
		}
		return out[i].Coord.Col < out[j].Coord.Col
	})
	return out
}

// Bounds returns the smallest rectangle (inclusive) covering every cell.
// ok is false for an empty grid.
func (g *Grid) Bounds() (lo, hi Coord, ok bool) {
	if len(g.cells) == 0 {
		return Coord{}, Coord{}, false
	}
	lo, hi = g.cells[0].Coord, g.cells[0].Coord
	for _, cell := range g.cells[1:] {
		c := cell.Coord
		lo.Col = min(lo.Col, c.Col)
		lo.Row = min(lo.Row, c.Row)
		hi.Col = max(hi.Col, c.Col)
		hi.Row = max(hi.Row, c.Row)
	}
	return lo, hi, true
}
