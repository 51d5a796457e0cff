// Package keymap defines keybindings for the interactive prompt.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the prompt keybindings.
type KeyMap struct {
	// Submit accepts the entered path.
	Submit key.Binding

	// Cancel abandons the prompt.
	Cancel key.Binding

	// Clear empties the input.
	Clear key.Binding

	// Help toggles between the short and the full help line.
	Help key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "scan"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		// Not "?", which is valid in a path
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
	}
}

// ShortHelp returns the keybindings shown under the prompt.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Help}
}

// FullHelp returns every keybinding, shown after Help is pressed.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.Cancel, k.Help},
	}
}
