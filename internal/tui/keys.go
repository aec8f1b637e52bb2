package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	version key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	version: key.NewBinding(key.WithKeys("v")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
