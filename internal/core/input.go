package core

// Command is a single discrete input command consumed by the simulation.
// The input source surfaces at most one command per poll; a tick with no
// input runs with CmdNone so physics always advances.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdJumpPress    // Jump button pressed
	CmdJumpRelease  // Jump button released (hold policy cuts the jump short)
	CmdJumpLongHold // Jump button held past the long-press threshold
	CmdPause
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdJumpPress:
		return "JumpPress"
	case CmdJumpRelease:
		return "JumpRelease"
	case CmdJumpLongHold:
		return "JumpLongHold"
	case CmdPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Movement returns true for commands that express horizontal intent.
func (c Command) Movement() bool {
	return c == CmdMoveLeft || c == CmdMoveRight
}
