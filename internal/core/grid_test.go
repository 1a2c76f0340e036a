package core

import "testing"

func TestCoordKeyCollisionFree(t *testing.T) {
	// These pairs collide under naive decimal concatenation ("1"+"12" == "11"+"2")
	// or when the sign is dropped.
	coords := []Coord{
		C(1, 12), C(11, 2),
		C(-1, 2), C(1, -2), C(-1, -2), C(1, 2),
		C(-12, 3), C(-1, 23),
		C(0, 0), C(0, -1), C(-1, 0),
		C(2147483647, -2147483648), C(-2147483648, 2147483647),
	}

	seen := make(map[Key]Coord)
	for _, c := range coords {
		k := c.Key()
		if prev, dup := seen[k]; dup {
			t.Errorf("key collision between %v and %v", prev, c)
		}
		seen[k] = c

		if back := k.Coord(); back != c {
			t.Errorf("Key(%v).Coord() = %v", c, back)
		}
	}
}

func TestCoordNeighbors(t *testing.T) {
	origin := C(0, 0)

	tests := []struct {
		name     string
		other    Coord
		side     Side
		neighbor bool
	}{
		{"up", C(0, -1), SideUp, true},
		{"right", C(1, 0), SideRight, true},
		{"down", C(0, 1), SideDown, true},
		{"left", C(-1, 0), SideLeft, true},
		{"diagonal", C(1, 1), SideUp, false},
		{"two away", C(2, 0), SideUp, false},
		{"self", C(0, 0), SideUp, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, ok := origin.SideOf(tc.other)
			if ok != tc.neighbor {
				t.Fatalf("SideOf(%v) ok = %v, expected %v", tc.other, ok, tc.neighbor)
			}
			if ok && side != tc.side {
				t.Errorf("SideOf(%v) = %v, expected %v", tc.other, side, tc.side)
			}
		})
	}
}

func TestGridSetGetRemove(t *testing.T) {
	g := NewGrid()

	for _, c := range []Coord{C(0, 0), C(1, 0), C(2, 0), C(-5, 7)} {
		g.Set(NewCell(c))
	}
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", g.Len())
	}

	cell, ok := g.Get(C(-5, 7))
	if !ok || cell.Coord != C(-5, 7) {
		t.Fatalf("Get(-5,7) = %v, %v", cell, ok)
	}

	// Remove from the middle of the arena; the moved cell must stay reachable
	if !g.Remove(C(0, 0)) {
		t.Fatal("Remove(0,0) should report a removal")
	}
	if g.Remove(C(0, 0)) {
		t.Error("second Remove(0,0) should report nothing removed")
	}
	if g.Has(C(0, 0)) {
		t.Error("removed cell still present")
	}
	for _, c := range []Coord{C(1, 0), C(2, 0), C(-5, 7)} {
		got, ok := g.Get(c)
		if !ok || got.Coord != c {
			t.Errorf("Get(%v) after remove = %v, %v", c, got, ok)
		}
	}

	// Set on an existing coordinate replaces in place
	g.Set(Cell{Coord: C(1, 0), Direction: DirCross, Locked: true})
	if g.Len() != 3 {
		t.Errorf("Len() after replace = %d, expected 3", g.Len())
	}
	if got, _ := g.Get(C(1, 0)); got.Direction != DirCross {
		t.Errorf("replaced cell direction = %v, expected Cross", got.Direction)
	}

	g.Clear()
	if g.Len() != 0 || g.Has(C(1, 0)) {
		t.Error("Clear() should remove every cell")
	}
}

func TestGridAllOrder(t *testing.T) {
	g := NewGrid()
	for _, c := range []Coord{C(2, 1), C(0, 1), C(5, -1), C(1, 0)} {
		g.Set(NewCell(c))
	}

	want := []Coord{C(5, -1), C(1, 0), C(0, 1), C(2, 1)}
	all := g.All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d cells, expected %d", len(all), len(want))
	}
	for i, c := range want {
		if all[i].Coord != c {
			t.Errorf("All()[%d] = %v, expected %v", i, all[i].Coord, c)
		}
	}

	// Copies, not borrowed references
	all[0].Direction = DirCross
	if cell, _ := g.Get(C(5, -1)); cell.Direction == DirCross {
		t.Error("All() should return copies")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()
	if _, _, ok := g.Bounds(); ok {
		t.Error("empty grid should have no bounds")
	}

	for _, c := range []Coord{C(3, -2), C(-1, 4), C(0, 0)} {
		g.Set(NewCell(c))
	}
	lo, hi, ok := g.Bounds()
	if !ok || lo != C(-1, -2) || hi != C(3, 4) {
		t.Errorf("Bounds() = %v, %v, %v; expected (-1,-2), (3,4)", lo, hi, ok)
	}
}

func TestNeighborsLockedFilter(t *testing.T) {
	g := NewGrid()
	center := C(0, 0)

	// Up: locked and facing down toward center -> kept
	g.Set(Cell{Coord: C(0, -1), Direction: DirVertical, Locked: true})
	// Right: locked dead end pointing away -> filtered
	g.Set(Cell{Coord: C(1, 0), Direction: DirVertical, Locked: true})
	// Down: unlocked, even though not facing -> kept
	g.Set(Cell{Coord: C(0, 1), Direction: DirHorizontal})
	// Left: absent

	live := g.Neighbors(center, false)
	if live.Up == nil {
		t.Error("locked neighbour facing back should be kept")
	}
	if live.Right != nil {
		t.Error("locked neighbour not facing back should be filtered")
	}
	if live.Down == nil {
		t.Error("unlocked neighbour should always be kept")
	}
	if live.Left != nil {
		t.Error("absent neighbour should be nil")
	}
	if got, want := live.Sides(), SidesOf(SideUp, SideDown); got != want {
		t.Errorf("Sides() = %v, expected %v", got, want)
	}

	all := g.Neighbors(center, true)
	if all.Right == nil {
		t.Error("includeLockedOpposing should keep every present neighbour")
	}

	order := all.All()
	if len(order) != 3 {
		t.Fatalf("All() returned %d cells, expected 3", len(order))
	}
	wantOrder := []Coord{C(0, -1), C(1, 0), C(0, 1)}
	for i, c := range wantOrder {
		if order[i].Coord != c {
			t.Errorf("All()[%d] = %v, expected %v", i, order[i].Coord, c)
		}
	}
}
