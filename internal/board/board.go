// Package board is the controller between user input and the track engine.
// It owns the grid, dispatches tool actions and tells the view when to redraw.
package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trains/internal/core"
)

// Tool is the editing action applied to a clicked cell.
type Tool uint8

const (
	ToolTrack Tool = iota
	ToolEraser
	ToolRotate
)

// String returns the display name of the tool.
func (t Tool) String() string {
	switch t {
	case ToolTrack:
		return "track"
	case ToolEraser:
		return "eraser"
	case ToolRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// ParseTool converts a display name back to a Tool.
func ParseTool(name string) (Tool, error) {
	for _, t := range []Tool{ToolTrack, ToolEraser, ToolRotate} {
		if t.String() == name {
			return t, nil
		}
	}
	return ToolTrack, fmt.Errorf("board: unknown tool %q", name)
}

// Redraw is delivered to listeners after every mutation.
// Cells is a copy of the whole board in row-major order.
type Redraw struct {
	Cells []core.Cell
	Cause string
}

// Snapshot is a read-only view of the board state.
type Snapshot struct {
	Cells    []core.Cell
	Tool     Tool
	First    core.Coord
	HasFirst bool
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for per-action debug output.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithEngineOptions passes options through to the direction engine.
func WithEngineOptions(opts ...core.EngineOption) Option {
	return func(b *Board) { b.engineOpts = append(b.engineOpts, opts...) }
}

// Board holds one editable track network.
// It is owned by a single UI loop and is not safe for concurrent use.
type Board struct {
	grid       *core.Grid
	engine     *core.Engine
	engineOpts []core.EngineOption
	tool       Tool
	first      core.Coord
	hasFirst   bool
	listeners  []func(Redraw)
	logger     *log.Logger
}

// New creates an empty board with the track tool selected.
func New(opts ...Option) *Board {
	b := &Board{
		grid:   core.NewGrid(),
		tool:   ToolTrack,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.engine = core.NewEngine(b.grid, b.engineOpts...)
	return b
}

// OnRedraw registers a listener called after every mutation.
func (b *Board) OnRedraw(fn func(Redraw)) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

// PlaceTrack puts a new track cell at c and resolves it.
// It reports false when a cell is already there.
func (b *Board) PlaceTrack(c core.Coord) bool {
	if b.grid.Has(c) {
		return false
	}
	if b.grid.Len() == 0 {
		b.first = c
		b.hasFirst = true
	}

	b.grid.Set(core.NewCell(c))
	b.engine.Resolve(c)

	b.changed("place", c)
	return true
}

// EraseTrack removes the cell at c and re-resolves what it touched.
// It reports false when there is nothing to erase.
func (b *Board) EraseTrack(c core.Coord) bool {
	if !b.grid.Remove(c) {
		return false
	}
	if b.hasFirst && b.first == c {
		b.hasFirst = false
	}
	b.engine.OnRemove(c)

	b.changed("erase", c)
	return true
}

// RotateTrack advances the cell at c to its next shape and pins it.
// It reports false when there is no cell to rotate.
func (b *Board) RotateTrack(c core.Coord) bool {
	if !b.grid.Has(c) {
		return false
	}
	b.engine.Rotate(c)

	b.changed("rotate", c)
	return true
}

// Apply runs the selected tool at c. With the track tool, shift rotates
// an existing cell instead of placing.
func (b *Board) Apply(c core.Coord, shift bool) bool {
	switch b.tool {
	case ToolEraser:
		return b.EraseTrack(c)
	case ToolRotate:
		return b.RotateTrack(c)
	default:
		if shift {
			return b.RotateTrack(c)
		}
		return b.PlaceTrack(c)
	}
}

// SetTool selects the tool used by Apply.
func (b *Board) SetTool(t Tool) {
	b.tool = t
}

// Tool returns the selected tool.
func (b *Board) Tool() Tool {
	return b.tool
}

// Clear destroys all track. It reports false if the board was already empty.
func (b *Board) Clear() bool {
	if b.grid.Len() == 0 {
		return false
	}
	b.grid.Clear()
	b.hasFirst = false

	b.logger.Debug("clear")
	b.emit("clear")
	return true
}

// FirstCell returns the coordinate of the cell that started the current network.
// It is unset once that cell is erased or the board is cleared.
func (b *Board) FirstCell() (core.Coord, bool) {
	return b.first, b.hasFirst
}

// Cell returns a copy of the cell at c.
func (b *Board) Cell(c core.Coord) (core.Cell, bool) {
	cell, ok := b.grid.Get(c)
	if !ok {
		return core.Cell{}, false
	}
	return *cell, true
}

// Cells returns copies of every cell in row-major order.
func (b *Board) Cells() []core.Cell {
	return b.grid.All()
}

// Bounds returns the smallest rectangle covering all track.
// ok is false on an empty board.
func (b *Board) Bounds() (lo, hi core.Coord, ok bool) {
	return b.grid.Bounds()
}

// Len returns the number of track cells.
func (b *Board) Len() int {
	return b.grid.Len()
}

// Snapshot returns the current state for rendering or inspection.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Cells:    b.grid.All(),
		Tool:     b.tool,
		First:    b.first,
		HasFirst: b.hasFirst,
	}
}

func (b *Board) changed(cause string, c core.Coord) {
	b.logger.Debug(cause,
		"at", c.String(),
		"passes", b.engine.TakePasses(),
		"cells", b.grid.Len(),
	)
	b.emit(cause)
}

func (b *Board) emit(cause string) {
	if len(b.listeners) == 0 {
		return
	}
	ev := Redraw{Cells: b.grid.All(), Cause: cause}
	for _, fn := range b.listeners {
		fn(ev)
	}
}
