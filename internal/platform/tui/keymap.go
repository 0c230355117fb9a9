package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a platform-level input intent. The game core consumes a
// single abstract activate signal; everything else stays in the driver.
type Action int

const (
	ActionNone Action = iota
	ActionActivate
	ActionPause
	ActionScreenshot
	ActionQuit
)

// KeyMapper translates Bubble Tea input messages to actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Space, up, w, and r all
// collapse into the one activate signal; each key press yields exactly
// one activation.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case " ", "up", "w", "r":
		return ActionActivate
	case "p", "esc":
		return ActionPause
	case "ctrl+s":
		return ActionScreenshot
	}
	return ActionNone
}

// MapMouse translates a mouse message to an action. Any button press on
// the play surface activates, same as a key.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) Action {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonNone {
		return ActionActivate
	}
	return ActionNone
}
