package core

import "fmt"

// IsolatedPolicy decides what shape an unlocked cell shows with no live neighbours.
type IsolatedPolicy uint8

const (
	// IsolatedReset shows the engine's default direction.
	IsolatedReset IsolatedPolicy = iota
	// IsolatedHold keeps the last shape, falling back to the default for new cells.
	IsolatedHold
)

// String returns the configuration name of the policy.
func (p IsolatedPolicy) String() string {
	switch p {
	case IsolatedReset:
		return "reset"
	case IsolatedHold:
		return "hold"
	default:
		return "unknown"
	}
}

// ParseIsolatedPolicy converts a configuration name to a policy.
func ParseIsolatedPolicy(name string) (IsolatedPolicy, error) {
	switch name {
	case "", "reset":
		return IsolatedReset, nil
	case "hold":
		return IsolatedHold, nil
	}
	return IsolatedReset, fmt.Errorf("core: unknown isolated policy %q", name)
}

// Engine resolves track directions so that adjoining cells connect.
// It mutates cells in place through the grid and is not safe for concurrent use.
type Engine struct {
	grid       *Grid
	isolated   IsolatedPolicy
	defaultDir Direction
	passes     int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithIsolatedPolicy sets the policy for cells left without live neighbours.
func WithIsolatedPolicy(p IsolatedPolicy) EngineOption {
	return func(e *Engine) { e.isolated = p }
}

// WithDefaultDirection sets the shape of isolated cells. Only straight shapes are accepted.
func WithDefaultDirection(d Direction) EngineOption {
	return func(e *Engine) {
		if d.IsStraight() {
			e.defaultDir = d
		}
	}
}

// NewEngine creates an engine over the given grid.
func NewEngine(g *Grid, opts ...EngineOption) *Engine {
	e := &Engine{
		grid:       g,
		isolated:   IsolatedReset,
		defaultDir: DirHorizontal,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the grid the engine works on.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// TakePasses returns how many cells were visited since the last call and resets the counter.
func (e *Engine) TakePasses() int {
	n := e.passes
	e.passes = 0
	return n
}

// Resolve recomputes the direction of the cell at c and cascades to its neighbours.
// Resolving a coordinate with no cell is a caller bug and panics.
func (e *Engine) Resolve(c Coord) {
	e.resolve(e.mustGet("resolve", c))
}

// ResolveAll resolves every cell once, in row-major order.
func (e *Engine) ResolveAll() {
	for _, cell := range e.grid.All() {
		if live, ok := e.grid.Get(cell.Coord); ok {
			e.resolve(live)
		}
	}
}

// Rotate advances the cell at c to the next shape and pins it there.
// Neighbours that relied on the old shape are released and re-resolved.
// Rotating a coordinate with no cell is a caller bug and panics.
func (e *Engine) Rotate(c Coord) Direction {
	cell := e.mustGet("rotate", c)
	cell.Direction = cell.Direction.Next()
	cell.Locked = true
	cell.Manual = true
	dir := cell.Direction

	e.reconcile(c)
	return dir
}

// OnRemove re-resolves the neighbours of a coordinate whose cell was just erased.
// Calling it while a cell is still stored at c is a caller bug and panics.
func (e *Engine) OnRemove(c Coord) {
	if e.grid.Has(c) {
		panic(fmt.Sprintf("core: remove %v: cell still present", c))
	}
	e.reconcile(c)
}

// reconcile releases neighbours of c whose lock depended on c facing them,
// then re-resolves all four neighbours.
func (e *Engine) reconcile(c Coord) {
	center, present := e.grid.Get(c)
	around := e.grid.Neighbors(c, true)

	var released []*Cell
	for _, s := range AllSides {
		n := around.At(s)
		if n == nil || !n.Locked || n.Manual {
			continue
		}
		if !n.IsOpen(s.Opposite()) {
			continue
		}
		if !present || !center.IsOpen(s) {
			n.Locked = false
			released = append(released, n)
		}
	}

	for _, n := range around.All() {
		e.resolve(n)
	}

	// A released cell is visible to neighbours that filtered it out while it was
	// locked, even when its shape did not change.
	for _, n := range released {
		e.cascade(n)
	}
}

// resolve is the single step of the solver. Locked cells are left alone; a result
// equal to the current state stops the cascade.
func (e *Engine) resolve(cell *Cell) {
	e.passes++
	if cell.Locked {
		return
	}

	live := e.grid.Neighbors(cell.Coord, false)
	required := live.Sides()

	dir := e.directionFor(cell, required)
	locked := required.Count() >= 2

	if dir == cell.Direction && locked == cell.Locked {
		return
	}
	cell.Direction = dir
	cell.Locked = locked

	e.cascade(cell)
}

// cascade re-resolves every unlocked neighbour of a cell that just changed.
func (e *Engine) cascade(cell *Cell) {
	for _, s := range AllSides {
		n, ok := e.grid.Get(cell.Coord.Step(s))
		if !ok || n.Locked {
			continue
		}
		e.resolve(n)
	}
}

// directionFor maps the required open sides of a cell to a shape.
func (e *Engine) directionFor(cell *Cell, required Sides) Direction {
	if required == 0 {
		if e.isolated == IsolatedHold && cell.Direction != DirNone {
			return cell.Direction
		}
		return e.defaultDir
	}
	if dir, ok := DirectionFor(required); ok {
		return dir
	}
	return fallbackDirection(required, e.blocked(cell.Coord))
}

// blocked returns the sides of c with a locked neighbour that does not face c.
// A dead end should not open toward them.
func (e *Engine) blocked(c Coord) Sides {
	var set Sides
	around := e.grid.Neighbors(c, true)
	for _, s := range AllSides {
		n := around.At(s)
		if n != nil && n.Locked && !n.IsOpen(s.Opposite()) {
			set = set.With(s)
		}
	}
	return set
}

func (e *Engine) mustGet(op string, c Coord) *Cell {
	cell, ok := e.grid.Get(c)
	if !ok {
		panic(fmt.Sprintf("core: %s %v: no cell", op, c))
	}
	return cell
}
