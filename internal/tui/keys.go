//go:build !nopanel

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the panel key bindings outside the file picker (the
// picker brings its own navigation keys).
type KeyMap struct {
	Compute key.Binding // Start hashing the selected file.
	Cancel  key.Binding // Discard an in-flight computation.
	Copy    key.Binding // Copy the digest to the clipboard.
	PickNew key.Binding // Return to the file picker.
	Theme   key.Binding // Toggle dark/light theme.
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Compute: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "calculate"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy hash"),
	),
	PickNew: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "select file"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
