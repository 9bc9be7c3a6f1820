package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the TUI key bindings. It implements help.KeyMap.
type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	Home     key.Binding
	Contact  key.Binding
	Jump     key.Binding
	Down     key.Binding
	Up       key.Binding
	Copy     key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "enter", "right", "pgdown"),
			key.WithHelp("n/enter", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "b", "left", "pgup", "backspace"),
			key.WithHelp("p/b", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "home"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c", "end"),
			key.WithHelp("c", "contact"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy email"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "email"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Home, k.Contact, k.Jump},
		{k.Down, k.Up},
		{k.Copy, k.Open, k.Help, k.Quit},
	}
}
