package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateDetailKeyMap creates the edit screen keymap.
// Esc is handled by the list screen so the form never aborts on its own,
// and up/down move between the four inputs like tab/shift+tab.
func CreateDetailKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(key.WithKeys("ctrl+c"))

	keymap.Input.Next = key.NewBinding(
		key.WithKeys("enter", "tab", "down"),
		key.WithHelp("enter", "next"),
	)
	keymap.Input.Prev = key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "back"),
	)

	return keymap
}
