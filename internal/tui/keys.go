package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all display-loop key bindings with built-in help text.
type KeyMap struct {
	Quit      key.Binding
	Escape    key.Binding
	ForceQuit key.Binding
	Pause     key.Binding
	Next      key.Binding
	Reload    key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next card"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload deck"),
		),
		Faster: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Next, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Escape, k.ForceQuit},
		{k.Pause, k.Next, k.Reload},
		{k.Faster, k.Slower, k.Help},
	}
}
