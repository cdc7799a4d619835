package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drpaneas/panis/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game command.
// Returns the command (may be CmdNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.CmdNone, true
	}

	switch key {
	case "left", "a", "h":
		return core.CmdMoveLeft, false
	case "right", "d", "l":
		return core.CmdMoveRight, false
	case " ", "up", "w":
		return core.CmdJumpPress, false
	case "W": // Shift+w, the long-press jump under the hold policy
		return core.CmdJumpLongHold, false
	case "e":
		return core.CmdJumpRelease, false
	case "p", "esc":
		return core.CmdPause, false
	}

	return core.CmdNone, false
}
