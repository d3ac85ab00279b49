package viewmodels

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shown in the help line.
// Input dispatch lives in the input package; these are display only.
type KeyMap struct {
	Open     key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
	open     bool
	multiple bool
}

// DefaultKeyMap returns the widget's bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("enter/↓", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForState returns a copy with the bindings relevant to the widget state enabled
func (k KeyMap) ForState(open, multiple, canClear bool) KeyMap {
	k.open = open
	k.multiple = multiple
	k.Clear.SetEnabled(canClear && !open)
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	if !k.open {
		return []key.Binding{k.Open, k.Clear, k.Help, k.Quit}
	}
	commit := k.Select
	if k.multiple {
		commit = k.Toggle
	}
	return []key.Binding{k.Up, k.Down, commit, k.Close}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Up, k.Down},
		{k.Select, k.Clear, k.Help, k.Quit},
	}
}
