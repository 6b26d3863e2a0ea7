package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the container key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding

	NextTab key.Binding
	PrevTab key.Binding

	ToggleBar   key.Binding
	ToggleSwipe key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous tab"),
		),
		ToggleBar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bar"),
		),
		ToggleSwipe: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle swipe"),
		),
	}
}
