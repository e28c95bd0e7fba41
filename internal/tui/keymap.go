package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard key bindings while browsing.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Console  key.Binding
	SSH      key.Binding
	Start    key.Binding
	Shutdown key.Binding
	Inactive key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Console, k.SSH, k.Start, k.Shutdown, k.Inactive, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Console, k.SSH},
		{k.Start, k.Shutdown, k.Inactive, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Console: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "console"),
		),
		SSH: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "ssh"),
		),
		Start: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "start"),
		),
		Shutdown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "shutdown"),
		),
		Inactive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "inactive"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
