package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Toggle     key.Binding
	TogglePage key.Binding
	Bulk       key.Binding
	Clear      key.Binding
	Quit       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

var keys = keyMap{
	Next:       key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
	Prev:       key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "prev page")),
	Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select row")),
	TogglePage: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
	Bulk:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select first N")),
	Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),
	Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.TogglePage, k.Bulk, k.Clear, k.Quit}
}

func (k keyMap) popoverHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
