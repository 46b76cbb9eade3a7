package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	First     key.Binding
	Previous  key.Binding
	Next      key.Binding
	Last      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		First:     key.NewBinding(key.WithKeys("home", "H"), key.WithHelp("H", "first")),
		Previous:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "previous")),
		Next:      key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next")),
		Last:      key.NewBinding(key.WithKeys("end", "L"), key.WithHelp("L", "last")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle row")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle page")),
		Clear:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "clear sel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.First, k.Previous, k.Next, k.Last},
		{k.Toggle, k.ToggleAll, k.Clear},
		{k.Help, k.Quit},
	}
}
