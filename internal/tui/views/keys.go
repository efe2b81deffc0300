package views

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Focus  key.Binding
	Copy   key.Binding
	Back   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓/j", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Pick, k.Up, k.Down, k.Focus, k.Copy, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Copy, k.Back},
		{k.Pick, k.Up, k.Down, k.Focus},
	}
}
