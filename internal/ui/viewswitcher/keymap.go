package viewswitcher

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the switcher. Movement activates the
// focused tab immediately; there is no separate confirm step.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Overflow key.Binding
	Down     key.Binding
	Up       key.Binding
	Select   key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next view"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous view"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first view"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last view"),
		),
		Overflow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "more views"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next overflow item"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous overflow item"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open view"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
	}
}
