package core

import "strings"

// Side is one of the four edges of a cell.
type Side uint8

const (
	SideUp Side = iota
	SideRight
	SideDown
	SideLeft
)

// AllSides lists every side in the fixed iteration order up, right, down, left.
var AllSides = [4]Side{SideUp, SideRight, SideDown, SideLeft}

// Opposite returns the side facing this one across an edge.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Delta returns the (col, row) offset of the neighbour on this side.
func (s Side) Delta() (int32, int32) {
	switch s {
	case SideUp:
		return 0, -1
	case SideRight:
		return 1, 0
	case SideDown:
		return 0, 1
	case SideLeft:
		return -1, 0
	}
	return 0, 0
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "Up"
	case SideRight:
		return "Right"
	case SideDown:
		return "Down"
	case SideLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Sides is a set of cell sides.
type Sides uint8

// SidesOf builds a set from the given sides.
func SidesOf(sides ...Side) Sides {
	var set Sides
	for _, s := range sides {
		set = set.With(s)
	}
	return set
}

// With returns the set with s added.
func (set Sides) With(s Side) Sides {
	return set | 1<<s
}

// Has reports whether s is in the set.
func (set Sides) Has(s Side) bool {
	return set&(1<<s) != 0
}

// Count returns the number of sides in the set.
func (set Sides) Count() int {
	n := 0
	for _, s := range AllSides {
		if set.Has(s) {
			n++
		}
	}
	return n
}

// Contains reports whether every side of other is also in set.
func (set Sides) Contains(other Sides) bool {
	return set&other == other
}

// String lists the sides, e.g. "Up|Right".
func (set Sides) String() string {
	if set == 0 {
		return "none"
	}
	parts := make([]string, 0, 4)
	for _, s := range AllSides {
		if set.Has(s) {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, "|")
}
