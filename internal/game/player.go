package game

import "github.com/drpaneas/panis/internal/core"

// Player is the character state owned by a session. Horizontal position is
// tracked in all three coordinate spaces; world x is canonical and the
// session asserts world_x == camera_x + screen_x after every tick.
type Player struct {
	WorldX  int
	ScreenX int
	CameraX int

	Y  int // Vertical position, 0 = top of the screen
	VY int // Vertical velocity, positive = downward

	OnGround     bool
	FacingRight  bool
	LastJumpTick uint64 // Tick of the last jump press, 0 = never
}

// BBox returns the player's bounding box in world pixels.
func (p *Player) BBox(charW, charH int) core.Rect {
	return core.NewRect(p.WorldX, p.Y, charW, charH)
}
