package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trains/internal/config"
	"github.com/vovakirdan/tui-trains/internal/layouts"
)

// SessionOptions configures a picker + editor session.
type SessionOptions struct {
	Config  config.Config
	Catalog []layouts.Layout
	Initial *layouts.Layout // skip the picker and open this layout directly
	Blank   bool            // skip the picker and open an empty board
	Logger  *log.Logger
	Width   int
	Height  int
	Label   string
}

// SessionModel manages the full session flow: picker -> editor -> picker.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	theme    Theme
	picker   PickerModel
	editor   *Model
	inEditor bool
	quitting bool
	err      error
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	theme := NewTheme(opts.Config.UI.Palette)
	m := SessionModel{
		opts:   opts,
		theme:  theme,
		picker: NewPickerModel(opts.Catalog, theme, opts.Width, opts.Height),
	}

	if opts.Initial != nil || opts.Blank {
		m.openEditor(opts.Initial)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	if m.inEditor {
		return m.editor.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	if m.inEditor && m.editor != nil {
		return m.updateEditor(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when the picker is shown.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.picker.Chosen() {
		if !m.openEditor(m.picker.Selected()) {
			return m, tea.Quit
		}
		return m, m.editor.Init()
	}

	return m, cmd
}

// updateEditor handles updates when the editor is shown.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if editor, ok := newModel.(Model); ok {
		m.editor = &editor
	}

	// Back to the picker, dropping the board
	if m.editor.BackToPicker() {
		m.inEditor = false
		m.editor = nil
		m.picker = NewPickerModel(m.opts.Catalog, m.theme, m.opts.Width, m.opts.Height)
		return m, m.picker.Init()
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// openEditor builds the editor for a layout (nil for an empty board).
// It reports false and records the error if the configuration is unusable.
func (m *SessionModel) openEditor(layout *layouts.Layout) bool {
	editor, err := NewModel(EditorOptions{
		Config: m.opts.Config,
		Layout: layout,
		Logger: m.opts.Logger,
		Width:  m.opts.Width,
		Height: m.opts.Height,
		Label:  m.opts.Label,
	})
	if err != nil {
		m.err = err
		m.quitting = true
		return false
	}
	m.editor = &editor
	m.inEditor = true
	return true
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inEditor && m.editor != nil {
		return m.editor.View()
	}

	return m.picker.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// InEditor reports whether the editor is on screen.
func (m SessionModel) InEditor() bool {
	return m.inEditor
}

// Editor returns the active editor, or nil while the picker is shown.
func (m SessionModel) Editor() *Model {
	return m.editor
}

// Run starts the Bubble Tea program for a local session.
func Run(opts SessionOptions) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewSessionModel(opts), programOpts...)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
