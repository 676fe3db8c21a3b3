package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Focus  key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Pin    key.Binding
	Unpin  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to input")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle pin")),
		Pin:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
		Unpin:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unpin")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// setListFocus enables the bindings that only apply to one focus area.
func (k *keyMap) setListFocus(list bool) {
	k.Submit.SetEnabled(!list)
	k.Back.SetEnabled(list)
	k.Up.SetEnabled(list)
	k.Down.SetEnabled(list)
	k.Toggle.SetEnabled(list)
	k.Pin.SetEnabled(list)
	k.Unpin.SetEnabled(list)
	k.Help.SetEnabled(list)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Focus, k.Back},
		{k.Up, k.Down},
		{k.Toggle, k.Pin, k.Unpin},
		{k.Help, k.Quit},
	}
}
