package game

import "github.com/drpaneas/panis/internal/config"

// JumpTrigger is the variable-height jump policy. Two interchangeable
// strategies exist; their timing constants are not merged, each policy
// carries its own (see config.JumpConfig).
type JumpTrigger interface {
	// Name identifies the policy ("double_tap" or "hold").
	Name() string

	// Launch returns the initial (negative) vertical velocity for a jump
	// press while grounded. tick is the current tick, lastPress the tick
	// of the previous jump press (0 = never pressed).
	Launch(tick, lastPress uint64) int

	// LongHold returns the velocity for a long-press jump while grounded.
	// ok is false when the policy has no long-press behavior.
	LongHold() (v int, ok bool)

	// Release adjusts the current velocity when the jump button is
	// released while still rising.
	Release(v int) int
}

// DoubleTapJump launches the big jump when a press lands within the window
// of the previous press, the small jump otherwise. Release and long-hold
// are ignored.
type DoubleTapJump struct {
	Small       int
	Big         int
	WindowTicks uint64
}

// NewDoubleTapJump derives the tick window from the configured millisecond
// window and tick rate.
func NewDoubleTapJump(cfg config.JumpConfig, tickRate int) DoubleTapJump {
	if tickRate <= 0 {
		tickRate = 60
	}
	return DoubleTapJump{
		Small:       cfg.SmallVelocity,
		Big:         cfg.BigVelocity,
		WindowTicks: uint64(cfg.DoubleTapMS * tickRate / 1000),
	}
}

func (j DoubleTapJump) Name() string { return config.JumpPolicyDoubleTap }

func (j DoubleTapJump) Launch(tick, lastPress uint64) int {
	if lastPress > 0 && tick-lastPress < j.WindowTicks {
		return j.Big
	}
	return j.Small
}

func (j DoubleTapJump) LongHold() (int, bool) { return 0, false }

func (j DoubleTapJump) Release(v int) int { return v }

// HoldJump launches the small jump on press and the big jump on a long
// hold; releasing mid-rise halves the upward velocity, giving continuous
// player-controlled height between the two extremes.
type HoldJump struct {
	Small int
	Big   int
}

// NewHoldJump builds the press-duration policy from config.
func NewHoldJump(cfg config.JumpConfig) HoldJump {
	return HoldJump{Small: cfg.SmallVelocity, Big: cfg.BigVelocity}
}

func (j HoldJump) Name() string { return config.JumpPolicyHold }

func (j HoldJump) Launch(_, _ uint64) int { return j.Small }

func (j HoldJump) LongHold() (int, bool) { return j.Big, true }

func (j HoldJump) Release(v int) int {
	if v < 0 {
		return v / 2
	}
	return v
}

// newJumpTrigger selects the configured policy; unknown names fall back to
// double-tap, the canonical policy of the original build.
func newJumpTrigger(cfg config.JumpConfig, tickRate int) JumpTrigger {
	if cfg.Policy == config.JumpPolicyHold {
		return NewHoldJump(cfg)
	}
	return NewDoubleTapJump(cfg, tickRate)
}
