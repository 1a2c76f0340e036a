package core

import (
	"math/rand"
	"testing"
)

// fixture drives the engine the way the board controller does.
type fixture struct {
	g *Grid
	e *Engine
}

func newFixture(opts ...EngineOption) *fixture {
	g := NewGrid()
	return &fixture{g: g, e: NewEngine(g, opts...)}
}

func (f *fixture) place(coords ...Coord) {
	for _, c := range coords {
		if f.g.Has(c) {
			continue
		}
		f.g.Set(NewCell(c))
		f.e.Resolve(c)
	}
}

func (f *fixture) erase(c Coord) {
	if f.g.Remove(c) {
		f.e.OnRemove(c)
	}
}

func (f *fixture) cell(t *testing.T, c Coord) Cell {
	t.Helper()
	cell, ok := f.g.Get(c)
	if !ok {
		t.Fatalf("no cell at %v", c)
	}
	return *cell
}

func (f *fixture) expect(t *testing.T, c Coord, want Direction) {
	t.Helper()
	if got := f.cell(t, c).Direction; got != want {
		t.Errorf("cell %v = %v, expected %v", c, got, want)
	}
}

func (f *fixture) directions() map[Coord]Direction {
	out := make(map[Coord]Direction)
	for _, cell := range f.g.All() {
		out[cell.Coord] = cell.Direction
	}
	return out
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

// checkConnectivity asserts that every unlocked cell opens toward each neighbour
// that counts as live for it.
func checkConnectivity(t *testing.T, g *Grid) {
	t.Helper()
	for _, a := range g.All() {
		if a.Direction == DirNone {
			t.Errorf("cell %v left unresolved", a.Coord)
		}
		if a.Locked {
			continue
		}
		for _, s := range AllSides {
			b, ok := g.Get(a.Coord.Step(s))
			if !ok {
				continue
			}
			if (!b.Locked || b.IsOpen(s.Opposite())) && !a.IsOpen(s) {
				t.Errorf("cell %v (%v) does not open %v toward live neighbour %v (%v)",
					a.Coord, a.Direction, s, b.Coord, b.Direction)
			}
		}
	}
}

func TestPlaceRowBecomesHorizontal(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(2, 0))

	for _, c := range []Coord{C(0, 0), C(1, 0), C(2, 0)} {
		f.expect(t, c, DirHorizontal)
	}
	if !f.cell(t, C(1, 0)).Locked {
		t.Error("middle cell with two live neighbours should be locked")
	}
	checkConnectivity(t, f.g)
}

func TestPlaceBelowBecomesVertical(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(0, 1))

	f.expect(t, C(0, 0), DirVertical)
	f.expect(t, C(0, 1), DirVertical)
	checkConnectivity(t, f.g)
}

func TestPlaceCornerBecomesElbow(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(0, 1))

	f.expect(t, C(0, 0), DirRightDown)
	f.expect(t, C(1, 0), DirHorizontal)
	f.expect(t, C(0, 1), DirVertical)

	if !f.cell(t, C(0, 0)).Locked {
		t.Error("corner should be locked")
	}
	checkConnectivity(t, f.g)
}

func TestIsolatedCellDefaults(t *testing.T) {
	tests := []struct {
		name string
		opts []EngineOption
		want Direction
	}{
		{"default horizontal", nil, DirHorizontal},
		{"vertical default", []EngineOption{WithDefaultDirection(DirVertical)}, DirVertical},
		{"non-straight default ignored", []EngineOption{WithDefaultDirection(DirCross)}, DirHorizontal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.opts...)
			f.place(C(4, 4))

			cell := f.cell(t, C(4, 4))
			if cell.Direction != tc.want {
				t.Errorf("isolated cell = %v, expected %v", cell.Direction, tc.want)
			}
			if cell.Locked {
				t.Error("isolated cell should stay unlocked")
			}
		})
	}
}

func TestTeeBecomesCross(t *testing.T) {
	f := newFixture()
	// Three unconnected stubs, then the junction between them
	f.place(C(0, 0), C(2, 0), C(1, 1))
	f.place(C(1, 0))

	f.expect(t, C(1, 0), DirCross)
	f.expect(t, C(0, 0), DirHorizontal)
	f.expect(t, C(2, 0), DirHorizontal)
	f.expect(t, C(1, 1), DirVertical)
	checkConnectivity(t, f.g)
}

func TestLockedDeadEndIsNotStolen(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(2, 0))

	// (1,0) is locked Horizontal; a new cell below must not assume a connection
	f.place(C(1, 1))

	f.expect(t, C(1, 0), DirHorizontal)
	f.expect(t, C(1, 1), DirHorizontal)
	if f.cell(t, C(1, 1)).Locked {
		t.Error("cell with only a filtered neighbour should stay unlocked")
	}
	checkConnectivity(t, f.g)
}

func TestDeadEndAvoidsLockedNeighbours(t *testing.T) {
	g := NewGrid()
	e := NewEngine(g)

	g.Set(Cell{Coord: C(0, -1), Direction: DirVertical, Locked: true})  // faces down: live
	g.Set(Cell{Coord: C(0, 1), Direction: DirHorizontal, Locked: true}) // blocks down
	g.Set(Cell{Coord: C(0, 0)})
	e.Resolve(C(0, 0))

	if cell, _ := g.Get(C(0, 0)); cell.Direction != DirRightUp {
		t.Errorf("dead end with down blocked = %v, expected RightUp", cell.Direction)
	}

	// Block every alternative: the straight shape is the deterministic fallback
	g2 := NewGrid()
	e2 := NewEngine(g2)
	g2.Set(Cell{Coord: C(0, -1), Direction: DirVertical, Locked: true})
	g2.Set(Cell{Coord: C(0, 1), Direction: DirHorizontal, Locked: true})
	g2.Set(Cell{Coord: C(1, 0), Direction: DirVertical, Locked: true})
	g2.Set(Cell{Coord: C(-1, 0), Direction: DirVertical, Locked: true})
	g2.Set(Cell{Coord: C(0, 0)})
	e2.Resolve(C(0, 0))

	if cell, _ := g2.Get(C(0, 0)); cell.Direction != DirVertical {
		t.Errorf("fully blocked dead end = %v, expected Vertical", cell.Direction)
	}
}

func TestEraseMiddleIsolatesEnds(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(2, 0))
	f.erase(C(1, 0))

	for _, c := range []Coord{C(0, 0), C(2, 0)} {
		cell := f.cell(t, c)
		if cell.Direction != DirHorizontal || cell.Locked {
			t.Errorf("cell %v = %v locked=%v, expected unlocked Horizontal", c, cell.Direction, cell.Locked)
		}
	}
}

func TestIsolatedPolicyOnErase(t *testing.T) {
	tests := []struct {
		name   string
		policy IsolatedPolicy
		want   Direction
	}{
		{"reset", IsolatedReset, DirHorizontal},
		{"hold", IsolatedHold, DirVertical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(WithIsolatedPolicy(tc.policy))
			f.place(C(0, 0), C(0, 1))
			f.erase(C(0, 1))

			cell := f.cell(t, C(0, 0))
			if cell.Direction != tc.want {
				t.Errorf("survivor = %v, expected %v", cell.Direction, tc.want)
			}
			if cell.Locked {
				t.Error("isolated survivor should be unlocked")
			}
		})
	}
}

func TestEraseReleasesLockedNeighbour(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(0, 1))
	f.expect(t, C(0, 0), DirRightDown)

	f.erase(C(1, 0))

	cell := f.cell(t, C(0, 0))
	if cell.Direction != DirVertical {
		t.Errorf("corner after erase = %v, expected Vertical", cell.Direction)
	}
	if cell.Locked {
		t.Error("corner with one remaining neighbour should be unlocked")
	}
	checkConnectivity(t, f.g)
}

func TestEraseCrossArmKeepsCross(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(2, 0), C(1, -1), C(1, 1))
	f.place(C(1, 0))
	f.expect(t, C(1, 0), DirCross)

	f.erase(C(1, 1))

	// Three live arms still need every side that has a neighbour
	f.expect(t, C(1, 0), DirCross)
	if !f.cell(t, C(1, 0)).Locked {
		t.Error("junction with three arms should be re-locked")
	}

	f.erase(C(1, -1))
	f.expect(t, C(1, 0), DirHorizontal)
	checkConnectivity(t, f.g)
}

func TestRotatePersists(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0))

	got := f.e.Rotate(C(0, 0))
	if got != DirRightUp {
		t.Fatalf("Rotate(Horizontal) = %v, expected RightUp", got)
	}

	cell := f.cell(t, C(0, 0))
	if !cell.Locked || !cell.Manual {
		t.Error("rotated cell should be locked and manual")
	}

	f.e.Resolve(C(0, 0))
	f.expect(t, C(0, 0), DirRightUp)

	// A new neighbour does not undo a rotation either
	f.place(C(-1, 0))
	f.expect(t, C(0, 0), DirRightUp)
	f.expect(t, C(-1, 0), DirHorizontal)
}

func TestRotateReResolvesNeighbours(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(0, 1))

	// Vertical -> Horizontal: the lower cell loses its connection
	f.e.Rotate(C(0, 0))
	f.expect(t, C(0, 0), DirHorizontal)
	f.expect(t, C(0, 1), DirHorizontal)

	// Horizontal -> RightUp -> RightDown: facing down again, the lower cell follows
	f.e.Rotate(C(0, 0))
	f.e.Rotate(C(0, 0))
	f.expect(t, C(0, 0), DirRightDown)
	f.expect(t, C(0, 1), DirVertical)
	checkConnectivity(t, f.g)
}

func TestRotateReleasesLockedNeighbour(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(0, 1))
	f.expect(t, C(0, 0), DirRightDown)

	// Horizontal -> RightUp no longer faces the corner
	f.e.Rotate(C(1, 0))

	cell := f.cell(t, C(0, 0))
	if cell.Direction != DirVertical || cell.Locked {
		t.Errorf("corner = %v locked=%v, expected unlocked Vertical", cell.Direction, cell.Locked)
	}
}

func TestManualCellSurvivesNeighbourErase(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0))
	f.e.Rotate(C(0, 0)) // Horizontal -> RightUp, still faces right

	f.erase(C(1, 0))

	cell := f.cell(t, C(0, 0))
	if cell.Direction != DirRightUp || !cell.Locked {
		t.Errorf("manual cell = %v locked=%v, expected locked RightUp", cell.Direction, cell.Locked)
	}
}

func TestResolveIdempotent(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0), C(1, 1), C(2, 1), C(2, 2), C(5, 5))

	before := f.g.All()
	for _, cell := range before {
		f.e.Resolve(cell.Coord)
	}
	f.e.ResolveAll()
	after := f.g.All()

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("resolve changed a stable cell: %+v -> %+v", before[i], after[i])
		}
	}
}

func TestOrderIndependence(t *testing.T) {
	paths := map[string][]Coord{
		"straight": {C(0, 0), C(1, 0), C(2, 0), C(3, 0)},
		"s-bend":   {C(0, 0), C(1, 0), C(1, 1), C(2, 1)},
		"l-shape":  {C(0, 0), C(0, 1), C(0, 2), C(1, 2)},
		"hook":     {C(0, 1), C(0, 0), C(1, 0), C(2, 0), C(2, 1)},
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			var want map[Coord]Direction
			permute(path, func(order []Coord) {
				f := newFixture()
				f.place(order...)
				checkConnectivity(t, f.g)

				got := f.directions()
				if want == nil {
					want = got
					return
				}
				for c, d := range want {
					if got[c] != d {
						t.Errorf("order %v: cell %v = %v, expected %v", order, c, got[c], d)
					}
				}
			})
		})
	}
}

func TestRandomEditsKeepConnectivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := newFixture()

	for i := 0; i < 500; i++ {
		c := C(int32(rng.Intn(5)), int32(rng.Intn(5)))
		if f.g.Has(c) && rng.Intn(3) == 0 {
			f.erase(c)
		} else {
			f.place(c)
		}
		checkConnectivity(t, f.g)
		if t.Failed() {
			t.Fatalf("invariant broken after step %d at %v", i, c)
		}
	}

	before := f.g.All()
	f.e.ResolveAll()
	after := f.g.All()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("ResolveAll changed a converged cell: %+v -> %+v", before[i], after[i])
		}
	}
}

func TestContractViolationsPanic(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0))

	expectPanic(t, "Resolve on empty coordinate", func() { f.e.Resolve(C(9, 9)) })
	expectPanic(t, "Rotate on empty coordinate", func() { f.e.Rotate(C(9, 9)) })
	expectPanic(t, "OnRemove on a stored cell", func() { f.e.OnRemove(C(0, 0)) })
}

func TestTakePasses(t *testing.T) {
	f := newFixture()
	f.place(C(0, 0), C(1, 0))

	if n := f.e.TakePasses(); n < 2 {
		t.Errorf("TakePasses() = %d, expected at least one visit per placement", n)
	}
	if n := f.e.TakePasses(); n != 0 {
		t.Errorf("TakePasses() after reset = %d, expected 0", n)
	}
}

// permute calls fn with every ordering of items.
func permute(items []Coord, fn func([]Coord)) {
	buf := make([]Coord, len(items))
	copy(buf, items)
	var walk func(k int)
	walk = func(k int) {
		if k == len(buf) {
			fn(buf)
			return
		}
		for i := k; i < len(buf); i++ {
			buf[k], buf[i] = buf[i], buf[k]
			walk(k + 1)
			buf[k], buf[i] = buf[i], buf[k]
		}
	}
	walk(0)
}
