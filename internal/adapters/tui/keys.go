package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Extend key.Binding
	Logout key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Extend: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "stay logged in")),
		Logout: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log out")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
