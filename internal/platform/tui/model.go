package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trains/internal/board"
	"github.com/vovakirdan/tui-trains/internal/config"
	"github.com/vovakirdan/tui-trains/internal/core"
	"github.com/vovakirdan/tui-trains/internal/layouts"
	"github.com/vovakirdan/tui-trains/internal/render"
)

// headerHeight is the number of rows above the board.
const headerHeight = 1

const emptyHint = "space or click to lay track"

// EditorOptions configures a new editor model.
type EditorOptions struct {
	Config config.Config
	Layout *layouts.Layout // replayed onto the board at start, may be nil
	Logger *log.Logger
	Width  int
	Height int
	Label  string // shown in the HUD, e.g. the SSH user
}

// frameCache holds the cells delivered by the last board redraw.
type frameCache struct {
	cells   []core.Cell
	redraws int
}

// Model is the Bubble Tea model for the track editor.
type Model struct {
	board     *board.Board
	frame     *frameCache
	screen    *core.Screen
	theme     Theme
	keys      EditorKeyMap
	help      help.Model
	ui        config.UIConfig
	layout    string
	label     string
	origin    core.Coord // board coordinate at the top-left of the view
	cursor    core.Coord
	width     int
	height    int
	status    string
	statusSeq int
	quitting  bool
	back      bool
}

// NewModel creates an editor with an empty board, or one built from a layout.
func NewModel(opts EditorOptions) (Model, error) {
	engineOpts, err := opts.Config.Board.EngineOptions()
	if err != nil {
		return Model{}, err
	}

	b := board.New(
		board.WithLogger(opts.Logger),
		board.WithEngineOptions(engineOpts...),
	)
	frame := &frameCache{}
	b.OnRedraw(func(r board.Redraw) {
		frame.cells = r.Cells
		frame.redraws++
	})

	h := help.New()
	h.ShowAll = false

	m := Model{
		board:  b,
		frame:  frame,
		screen: core.NewScreen(0, 0),
		theme:  NewTheme(opts.Config.UI.Palette),
		keys:   DefaultEditorKeyMap(),
		help:   h,
		ui:     opts.Config.UI,
		label:  opts.Label,
	}

	if opts.Layout != nil {
		opts.Layout.Replay(b)
		m.layout = opts.Layout.Name
		m.status = fmt.Sprintf("loaded %s, %d cells", opts.Layout.Name, b.Len())
		if first, ok := b.FirstCell(); ok {
			m.cursor = first
		}
	}

	m.resize(opts.Width, opts.Height)
	m.center()
	return m, nil
}

// Init starts the status timer for the initial message.
func (m Model) Init() tea.Cmd {
	if m.status == "" {
		return nil
	}
	return expireStatusCmd(m.ui.StatusTimeout, m.statusSeq)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)

	case key.Matches(msg, m.keys.Apply):
		return m, m.applyAt(m.cursor, false)

	case key.Matches(msg, m.keys.Erase):
		if m.board.EraseTrack(m.cursor) {
			return m, m.setStatus("erased " + m.cursor.String())
		}
		return m, m.setStatus("nothing to erase at " + m.cursor.String())

	case key.Matches(msg, m.keys.Rotate):
		return m, m.rotateAt(m.cursor)

	case key.Matches(msg, m.keys.Clear):
		n := m.board.Len()
		if m.board.Clear() {
			return m, m.setStatus(fmt.Sprintf("cleared %d cells", n))
		}
		return m, m.setStatus("board is already empty")

	case key.Matches(msg, m.keys.Track):
		return m, m.selectTool(board.ToolTrack)
	case key.Matches(msg, m.keys.Eraser):
		return m, m.selectTool(board.ToolEraser)
	case key.Matches(msg, m.keys.RotateTool):
		return m, m.selectTool(board.ToolRotate)
	case key.Matches(msg, m.keys.NextTool):
		return m, m.selectTool((m.board.Tool() + 1) % 3)

	case key.Matches(msg, m.keys.First):
		first, ok := m.board.FirstCell()
		if !ok {
			return m, m.setStatus("no track laid yet")
		}
		m.cursor = first
		m.follow()
	}

	return m, nil
}

// handleMouse maps clicks onto board cells. Left click applies the tool,
// right click erases, dragging with the left button paints or erases.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	c, ok := m.viewport().CoordAt(msg.X, msg.Y-headerHeight)
	if !ok {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.cursor = c
		return m, m.applyAt(c, msg.Shift)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.cursor = c
		if m.board.EraseTrack(c) {
			return m, m.setStatus("erased " + c.String())
		}

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		if c == m.cursor {
			return m, nil
		}
		m.cursor = c
		switch m.board.Tool() {
		case board.ToolTrack:
			m.board.PlaceTrack(c)
		case board.ToolEraser:
			m.board.EraseTrack(c)
		}
	}

	return m, nil
}

func (m *Model) applyAt(c core.Coord, shift bool) tea.Cmd {
	tool := m.board.Tool()
	if tool == board.ToolRotate || (tool == board.ToolTrack && shift) {
		return m.rotateAt(c)
	}
	if !m.board.Apply(c, shift) {
		return m.setStatus(fmt.Sprintf("%s: nothing to do at %s", tool, c))
	}
	if tool == board.ToolEraser {
		return m.setStatus("erased " + c.String())
	}
	return m.setStatus("placed " + c.String())
}

func (m *Model) rotateAt(c core.Coord) tea.Cmd {
	if !m.board.RotateTrack(c) {
		return m.setStatus("nothing to rotate at " + c.String())
	}
	cell, _ := m.board.Cell(c)
	return m.setStatus(fmt.Sprintf("rotated %s to %s", c, cell.Direction))
}

func (m *Model) selectTool(t board.Tool) tea.Cmd {
	m.board.SetTool(t)
	return m.setStatus("tool: " + t.String())
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	return expireStatusCmd(m.ui.StatusTimeout, m.statusSeq)
}

func (m *Model) move(dc, dr int32) {
	m.cursor = m.cursor.Add(dc, dr)
	m.follow()
}

// boardSize returns the screen area left for the board after HUD, status and help.
func (m *Model) boardSize() (w, h int) {
	footer := 1
	if m.ui.ShowHelp {
		footer += lipgloss.Height(m.help.View(m.keys))
	}
	return max(m.width, 1), max(m.height-headerHeight-footer, 1)
}

func (m *Model) viewport() render.Viewport {
	w, h := m.boardSize()
	return render.Fit(m.origin, 0, 0, w, h, m.ui.CellWidth)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	w, h := m.boardSize()
	m.screen.Resize(w, h)
	m.follow()
}

// center scrolls so the cursor sits in the middle of the view.
// With track on the board it centers on the track instead, keeping the cursor visible.
func (m *Model) center() {
	v := m.viewport()
	mid := m.cursor
	if lo, hi, ok := m.board.Bounds(); ok {
		mid = core.C(lo.Col+(hi.Col-lo.Col)/2, lo.Row+(hi.Row-lo.Row)/2)
	}
	m.origin = mid.Add(-int32(v.Cols/2), -int32(v.Rows/2))
	m.follow()
}

// follow scrolls the minimum amount needed to keep the cursor visible.
func (m *Model) follow() {
	v := m.viewport()
	cols, rows := int32(max(v.Cols, 1)), int32(max(v.Rows, 1))

	if m.cursor.Col < m.origin.Col {
		m.origin.Col = m.cursor.Col
	} else if m.cursor.Col >= m.origin.Col+cols {
		m.origin.Col = m.cursor.Col - cols + 1
	}
	if m.cursor.Row < m.origin.Row {
		m.origin.Row = m.cursor.Row
	} else if m.cursor.Row >= m.origin.Row+rows {
		m.origin.Row = m.cursor.Row - rows + 1
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.viewport()
	m.screen.Clear()
	render.DrawBoard(m.screen, v, m.frame.cells)

	var under *core.Cell
	if cell, ok := m.board.Cell(m.cursor); ok {
		under = &cell
	}
	render.DrawCursor(m.screen, v, m.cursor, under)
	if m.board.Len() == 0 {
		render.DrawHint(m.screen, emptyHint)
	}

	parts := []string{
		m.hud(),
		RenderScreen(m.screen, m.theme.Colors),
		m.statusLine(under),
	}
	if m.ui.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// hud renders the single header line.
func (m Model) hud() string {
	sep := m.theme.HUDSeparator.Render(" │ ")

	tools := make([]string, 0, 3)
	for i, t := range []board.Tool{board.ToolTrack, board.ToolEraser, board.ToolRotate} {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.board.Tool() {
			tools = append(tools, m.theme.ToolActive.Render(label))
		} else {
			tools = append(tools, m.theme.ToolIdle.Render(label))
		}
	}

	fields := []string{
		m.theme.HUDTitle.Render("TRAINS"),
		strings.Join(tools, " "),
		m.theme.HUDLabel.Render("cells ") + m.theme.HUDValue.Render(fmt.Sprint(m.board.Len())),
		m.theme.HUDLabel.Render("at ") + m.theme.HUDValue.Render(m.cursor.String()),
	}
	if m.layout != "" {
		fields = append(fields, m.theme.HUDLabel.Render("layout ")+m.theme.HUDValue.Render(m.layout))
	}
	if m.label != "" {
		fields = append(fields, m.theme.HUDValue.Render(m.label))
	}
	return strings.Join(fields, sep)
}

// statusLine shows the last message, or describes the cell under the cursor.
func (m Model) statusLine(under *core.Cell) string {
	if m.status != "" {
		return m.theme.Status.Render(m.status)
	}
	if under == nil {
		return m.theme.Status.Render("empty")
	}

	state := "free"
	switch {
	case under.Manual:
		state = "rotated"
	case under.Locked:
		state = "locked"
	}
	return m.theme.Status.Render(fmt.Sprintf("%s %s", under.Direction, state))
}

// Board returns the board being edited.
func (m Model) Board() *board.Board {
	return m.board
}

// Cursor returns the board coordinate under the cursor.
func (m Model) Cursor() core.Coord {
	return m.cursor
}

// Redraws returns how many board redraws the view has received.
func (m Model) Redraws() int {
	return m.frame.redraws
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToPicker returns true if user asked to return to the layout picker.
func (m Model) BackToPicker() bool {
	return m.back
}
