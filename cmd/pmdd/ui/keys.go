package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the TUI key bindings. It implements help.KeyMap.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Calculate  key.Binding
	ToggleView key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "calculator/protocol"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Calculate, k.ToggleView, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Calculate},
		{k.ScrollUp, k.ScrollDown},
		{k.ToggleView, k.Quit},
	}
}

// calculatorHelp and protocolHelp narrow the footer to the keys that do
// something on the current page.
type calculatorHelp struct{ KeyMap }

func (k calculatorHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Calculate, k.ToggleView, k.Quit}
}

type protocolHelp struct{ KeyMap }

func (k protocolHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.ToggleView, k.Quit}
}
