package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// EditorKeyMap defines the key bindings for the track editor.
type EditorKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Apply      key.Binding
	Erase      key.Binding
	Rotate     key.Binding
	Clear      key.Binding
	Track      key.Binding
	Eraser     key.Binding
	RotateTool key.Binding
	NextTool   key.Binding
	First      key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Erase, k.Rotate, k.NextTool, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.First},
		{k.Apply, k.Erase, k.Rotate, k.Clear},
		{k.Track, k.Eraser, k.RotateTool, k.NextTool},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Apply: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "use tool"),
		),
		Erase: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "erase"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rotate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear board"),
		),
		Track: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "track tool"),
		),
		Eraser: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "eraser tool"),
		),
		RotateTool: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "rotate tool"),
		),
		NextTool: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tool"),
		),
		First: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "go to first cell"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "layouts"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerKeyMap defines the key bindings for the layout picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
