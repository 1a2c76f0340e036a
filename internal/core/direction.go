package core

import "fmt"

// Direction is the shape a track cell displays.
type Direction uint8

const (
	DirNone Direction = iota // uninitialized, no open sides
	DirVertical
	DirHorizontal
	DirRightUp
	DirRightDown
	DirLeftDown
	DirLeftUp
	DirCross
)

// openSides maps each direction to the sides it connects.
var openSides = map[Direction]Sides{
	DirNone:       0,
	DirVertical:   SidesOf(SideUp, SideDown),
	DirHorizontal: SidesOf(SideLeft, SideRight),
	DirRightUp:    SidesOf(SideUp, SideRight),
	DirRightDown:  SidesOf(SideDown, SideRight),
	DirLeftDown:   SidesOf(SideDown, SideLeft),
	DirLeftUp:     SidesOf(SideUp, SideLeft),
	DirCross:      SidesOf(SideUp, SideRight, SideDown, SideLeft),
}

// rotationOrder is the cycle explicit rotation walks through.
// It does not depend on the numeric values of the constants.
var rotationOrder = []Direction{
	DirVertical,
	DirHorizontal,
	DirRightUp,
	DirRightDown,
	DirLeftDown,
	DirLeftUp,
	DirCross,
}

// Open returns the set of sides this direction connects.
func (d Direction) Open() Sides {
	return openSides[d]
}

// IsOpen reports whether the direction connects the given side.
func (d Direction) IsOpen(s Side) bool {
	return d.Open().Has(s)
}

// Next returns the direction that follows d in the rotation cycle.
// Cross wraps back to Vertical; None starts the cycle at Vertical.
func (d Direction) Next() Direction {
	for i, candidate := range rotationOrder {
		if candidate == d {
			return rotationOrder[(i+1)%len(rotationOrder)]
		}
	}
	return rotationOrder[0]
}

// IsStraight reports whether the direction is Vertical or Horizontal.
func (d Direction) IsStraight() bool {
	return d == DirVertical || d == DirHorizontal
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirVertical:
		return "Vertical"
	case DirHorizontal:
		return "Horizontal"
	case DirRightUp:
		return "RightUp"
	case DirRightDown:
		return "RightDown"
	case DirLeftDown:
		return "LeftDown"
	case DirLeftUp:
		return "LeftUp"
	case DirCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(name string) (Direction, error) {
	for d := DirNone; d <= DirCross; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("core: unknown direction %q", name)
}

// DirectionFor returns the direction whose open sides exactly equal the set.
// Only the empty set, pairs and the full set have an exact entry.
func DirectionFor(set Sides) (Direction, bool) {
	for d := DirNone; d <= DirCross; d++ {
		if d.Open() == set {
			return d, true
		}
	}
	return DirNone, false
}

// supersets lists, for a single required side, the directions that contain it.
// The straight shape comes first.
var supersets = map[Side][]Direction{
	SideUp:    {DirVertical, DirRightUp, DirLeftUp},
	SideDown:  {DirVertical, DirRightDown, DirLeftDown},
	SideLeft:  {DirHorizontal, DirLeftUp, DirLeftDown},
	SideRight: {DirHorizontal, DirRightUp, DirRightDown},
}

// fallbackDirection picks a direction for a required set with no exact entry.
// A single side takes the first superset that does not open toward a side in
// avoid, or the straight shape when every candidate does. Three sides become Cross.
func fallbackDirection(required, avoid Sides) Direction {
	if required.Count() >= 3 {
		return DirCross
	}
	for _, s := range AllSides {
		if !required.Has(s) {
			continue
		}
		candidates := supersets[s]
		for _, d := range candidates {
			if d.Open()&avoid == 0 {
				return d
			}
		}
		return candidates[0]
	}
	return DirCross
}
