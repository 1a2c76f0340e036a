// Package render draws track cells into a core.Screen with box-drawing glyphs.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-trains/internal/core"
)

// DefaultCellWidth is the number of screen columns one grid cell occupies.
// The extra column carries the horizontal connector so track reads as continuous.
const DefaultCellWidth = 2

const (
	glyphEmpty      = '·'
	glyphUnresolved = '•'
	glyphConnector  = '─'
	glyphCursor     = '+'
)

var glyphs = map[core.Direction]rune{
	core.DirVertical:   '│',
	core.DirHorizontal: '─',
	core.DirRightUp:    '└',
	core.DirRightDown:  '┌',
	core.DirLeftDown:   '┐',
	core.DirLeftUp:     '┘',
	core.DirCross:      '┼',
}

// Glyph returns the box-drawing rune for a direction.
func Glyph(d core.Direction) rune {
	if r, ok := glyphs[d]; ok {
		return r
	}
	return glyphUnresolved
}

// ColorFor picks the screen color for a cell from its lock state.
func ColorFor(cell core.Cell) core.Color {
	switch {
	case cell.Manual:
		return core.ColorManual
	case cell.Locked:
		return core.ColorLocked
	default:
		return core.ColorTrack
	}
}

// Viewport maps a window of board coordinates onto a screen region.
type Viewport struct {
	Origin    core.Coord // board coordinate drawn at the top-left
	X, Y      int        // screen offset of the region
	Cols      int        // visible cells per row
	Rows      int        // visible rows
	CellWidth int
}

// Fit returns a viewport covering a width x height screen region at (x, y).
func Fit(origin core.Coord, x, y, width, height, cellWidth int) Viewport {
	if cellWidth < 1 {
		cellWidth = DefaultCellWidth
	}
	return Viewport{
		Origin:    origin,
		X:         x,
		Y:         y,
		Cols:      max(width/cellWidth, 0),
		Rows:      max(height, 0),
		CellWidth: cellWidth,
	}
}

func (v Viewport) cellWidth() int {
	if v.CellWidth < 1 {
		return DefaultCellWidth
	}
	return v.CellWidth
}

// Contains reports whether the board coordinate is visible.
func (v Viewport) Contains(c core.Coord) bool {
	dc := int(c.Col - v.Origin.Col)
	dr := int(c.Row - v.Origin.Row)
	return dc >= 0 && dc < v.Cols && dr >= 0 && dr < v.Rows
}

// ScreenPos returns the screen position of the first column of a cell.
func (v Viewport) ScreenPos(c core.Coord) (x, y int, ok bool) {
	if !v.Contains(c) {
		return 0, 0, false
	}
	x = v.X + int(c.Col-v.Origin.Col)*v.cellWidth()
	y = v.Y + int(c.Row-v.Origin.Row)
	return x, y, true
}

// CoordAt maps a screen position back to a board coordinate.
func (v Viewport) CoordAt(x, y int) (core.Coord, bool) {
	if x < v.X || y < v.Y {
		return core.Coord{}, false
	}
	col := (x - v.X) / v.cellWidth()
	row := y - v.Y
	if col >= v.Cols || row >= v.Rows {
		return core.Coord{}, false
	}
	return core.C(v.Origin.Col+int32(col), v.Origin.Row+int32(row)), true
}

// DrawBoard draws the visible part of the board: dots for empty cells,
// glyphs for track.
func DrawBoard(dst *core.Screen, v Viewport, cells []core.Cell) {
	cw := v.cellWidth()
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			x := v.X + col*cw
			dst.SetColored(x, v.Y+row, glyphEmpty, core.ColorGrid)
			for i := 1; i < cw; i++ {
				dst.SetColored(x+i, v.Y+row, ' ', core.ColorGrid)
			}
		}
	}

	for _, cell := range cells {
		drawCell(dst, v, cell)
	}
}

func drawCell(dst *core.Screen, v Viewport, cell core.Cell) {
	x, y, ok := v.ScreenPos(cell.Coord)
	if !ok {
		return
	}
	color := ColorFor(cell)
	dst.SetColored(x, y, Glyph(cell.Direction), color)
	if cell.ConnectedRight() {
		for i := 1; i < v.cellWidth(); i++ {
			dst.SetColored(x+i, y, glyphConnector, color)
		}
	}
}

// DrawCursor highlights the cell under the cursor. A track cell keeps its
// glyph, an empty cell shows a cursor mark.
func DrawCursor(dst *core.Screen, v Viewport, at core.Coord, cell *core.Cell) {
	x, y, ok := v.ScreenPos(at)
	if !ok {
		return
	}
	r := glyphCursor
	if cell != nil {
		r = Glyph(cell.Direction)
	}
	dst.SetColored(x, y, r, core.ColorCursor)
}

// Text renders the cells inside their bounding box as plain text, with
// trailing spaces trimmed. An empty board renders as an empty string.
func Text(cells []core.Cell, cellWidth int) string {
	if len(cells) == 0 {
		return ""
	}
	if cellWidth < 1 {
		cellWidth = DefaultCellWidth
	}

	lo, hi := cells[0].Coord, cells[0].Coord
	for _, cell := range cells[1:] {
		lo.Col = min(lo.Col, cell.Coord.Col)
		lo.Row = min(lo.Row, cell.Coord.Row)
		hi.Col = max(hi.Col, cell.Coord.Col)
		hi.Row = max(hi.Row, cell.Coord.Row)
	}

	cols := int(hi.Col-lo.Col) + 1
	rows := int(hi.Row-lo.Row) + 1
	screen := core.NewScreen(cols*cellWidth, rows)
	DrawBoard(screen, Fit(lo, 0, 0, cols*cellWidth, rows, cellWidth), cells)

	lines := make([]string, rows)
	for y := range lines {
		lines[y] = strings.TrimRight(screen.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}

// DrawHint draws a boxed one-line message centered along the bottom of dst.
// Nothing is drawn when the box does not fit.
func DrawHint(dst *core.Screen, text string) {
	w := utf8.RuneCountInString(text) + 4
	h := 3
	x := (dst.Width() - w) / 2
	y := dst.Height() - h
	if x < 0 || y < 0 {
		return
	}

	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, core.ColorStatus)
	dst.DrawTextCentered(y+1, text)
}
