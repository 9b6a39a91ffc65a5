package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"merlinpad/internal/registry"
)

// KeyMapper translates Bubble Tea key messages to pad keys and encoder
// movements. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// PadKey translates a key message to a pad key index. Arrow keys and
// WASD drive the d-pad diamond; digits address the pads directly.
// Returns (key, true) when the message maps to a pad.
func (km *KeyMapper) PadKey(msg tea.KeyMsg) (int, bool) {
	switch msg.String() {
	case "up", "w":
		return registry.KeyUp, true
	case "down", "s":
		return registry.KeyDown, true
	case "left", "a":
		return registry.KeyLeft, true
	case "right", "d":
		return registry.KeyRight, true
	case " ", "f":
		return registry.KeyFire, true
	case "enter":
		return registry.KeyStart, true
	case "esc", "m":
		return registry.KeyMenu, true
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return int(msg.String()[0] - '0'), true
	}
	return 0, false
}

// EncoderDelta translates a key message to a rotary encoder movement:
// ',' turns left and '.' turns right, like < and > without shift.
func (km *KeyMapper) EncoderDelta(msg tea.KeyMsg) int {
	switch msg.String() {
	case ",":
		return -1
	case ".":
		return 1
	}
	return 0
}

// IsQuit reports whether the message is a session-level quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScores
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScores
	}
	return MenuActionNone
}
