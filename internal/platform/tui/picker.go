package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-trains/internal/layouts"
)

// Picker layout constants
const (
	pickerMinHeight  = 5
	pickerChrome     = 7 // title, subtitle, help and margins
	pickerIDWidth    = 12
	pickerNameWidth  = 18
	pickerStepsWidth = 6
)

// PickerModel is the Bubble Tea model for choosing a layout to start from.
// The first row always starts an empty board.
type PickerModel struct {
	layouts  []layouts.Layout
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	theme    Theme
	width    int
	height   int
	quitting bool
	chosen   bool
	selected *layouts.Layout
}

// NewPickerModel creates a picker over the given layouts.
func NewPickerModel(catalog []layouts.Layout, theme Theme, width, height int) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		layouts: catalog,
		keys:    DefaultPickerKeyMap(),
		help:    h,
		theme:   theme,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	descWidth := m.width - pickerIDWidth - pickerNameWidth - pickerStepsWidth - 10
	if descWidth < 10 {
		descWidth = 10
	}

	columns := []table.Column{
		{Title: "ID", Width: pickerIDWidth},
		{Title: "Name", Width: pickerNameWidth},
		{Title: "Steps", Width: pickerStepsWidth},
		{Title: "Description", Width: descWidth},
	}

	rows := make([]table.Row, 0, len(m.layouts)+1)
	rows = append(rows, table.Row{"-", "Empty board", "0", "Start from scratch"})
	for _, l := range m.layouts {
		rows = append(rows, table.Row{l.ID, l.Name, fmt.Sprint(len(l.Steps)), l.Description})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-pickerChrome, pickerMinHeight)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			if i := m.table.Cursor(); i > 0 && i <= len(m.layouts) {
				selected := m.layouts[i-1]
				m.selected = &selected
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.MenuTitle.Render("  T R A I N S  "))
	b.WriteString("\n")
	b.WriteString(m.theme.MenuDescription.Render("  Choose a layout to start from"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Chosen reports whether the user picked a row.
func (m PickerModel) Chosen() bool {
	return m.chosen
}

// Selected returns the chosen layout, or nil for the empty board.
func (m PickerModel) Selected() *layouts.Layout {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}
