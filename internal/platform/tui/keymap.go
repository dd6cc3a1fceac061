package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndmitriev/pixelpole/internal/physics"
)

// KeyMapper translates Bubble Tea key messages to environment actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a push direction. The environment
// needs an action every tick, so keys select the direction held until the
// next key; ok is false for keys that don't change it.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action physics.Action, ok bool) {
	switch msg.String() {
	case "left", "a", "h":
		return physics.ActionLeft, true
	case "right", "d", "l":
		return physics.ActionRight, true
	}
	return 0, false
}

// IsQuit reports whether the key requests leaving the session.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// IsRestart reports whether the key requests a fresh episode.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
