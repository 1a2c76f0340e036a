// Package core provides the track model and the direction resolution engine.
// It contains no external dependencies (especially no Bubble Tea) so the rules
// that keep track continuous stay pure and testable.
package core

import "fmt"

// Coord is a grid position. Col increases to the right, Row increases downward.
type Coord struct {
	Col int32
	Row int32
}

// C is a convenience constructor for Coord.
func C(col, row int32) Coord {
	return Coord{Col: col, Row: row}
}

// Key is the packed form of a Coord used to index the grid.
type Key uint64

// Key packs the coordinate into a single integer.
// Each axis keeps its full 32 bits, so distinct coordinates never share a key.
func (c Coord) Key() Key {
	return Key(uint64(uint32(c.Col))<<32 | uint64(uint32(c.Row)))
}

// Coord unpacks a key back into its coordinate.
func (k Key) Coord() Coord {
	return Coord{Col: int32(uint32(k >> 32)), Row: int32(uint32(k))}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns a new Coord offset by (dc, dr).
func (c Coord) Add(dc, dr int32) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Step returns the neighbouring coordinate on the given side.
func (c Coord) Step(s Side) Coord {
	dc, dr := s.Delta()
	return c.Add(dc, dr)
}

// SideOf returns the side of c that faces other.
// The second result is false when the two coordinates are not grid neighbours.
func (c Coord) SideOf(other Coord) (Side, bool) {
	for _, s := range AllSides {
		if c.Step(s) == other {
			return s, true
		}
	}
	return SideUp, false
}
