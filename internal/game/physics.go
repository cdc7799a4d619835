package game

import (
	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

// Physics advances vertical motion one tick at a time: gravity integration,
// jump triggering, ceiling and landing detection, and the ground-line
// clamp. The character is Grounded or airborne; airborne splits into rising
// (negative velocity) and falling once velocity turns non-negative.
type Physics struct {
	gravity  int
	maxFall  int
	minY     int // Max-jump-height clamp: the highest y a jump can reach
	groundY  int
	charW    int
	charH    int
	cellSize int

	grid    *Grid
	trigger JumpTrigger
}

// NewPhysics builds the engine for one session.
func NewPhysics(cfg config.Config, grid *Grid, trigger JumpTrigger) *Physics {
	minY := cfg.World.GroundTop() - cfg.Physics.MaxJumpHeight
	if minY < 0 {
		minY = 0
	}
	return &Physics{
		gravity:  cfg.Physics.Gravity,
		maxFall:  cfg.Physics.MaxFallSpeed,
		minY:     minY,
		groundY:  cfg.World.GroundY,
		charW:    cfg.World.CharWidth,
		charH:    cfg.World.CharHeight,
		cellSize: cfg.World.CellSize,
		grid:     grid,
		trigger:  trigger,
	}
}

// Step resolves one tick of vertical motion for the player, then collects
// any pickups under the resulting bounding box. Jump commands are consumed
// here; movement commands are the resolver's concern.
func (p *Physics) Step(pl *Player, cmd core.Command, tick uint64) []core.Event {
	var events []core.Event

	switch cmd {
	case core.CmdJumpPress:
		if pl.OnGround {
			pl.VY = p.trigger.Launch(tick, pl.LastJumpTick)
			pl.LastJumpTick = tick
			pl.OnGround = false
		}
	case core.CmdJumpLongHold:
		if pl.OnGround {
			if v, ok := p.trigger.LongHold(); ok {
				pl.VY = v
				pl.LastJumpTick = tick
				pl.OnGround = false
			}
		}
	case core.CmdJumpRelease:
		if !pl.OnGround && pl.VY < 0 {
			pl.VY = p.trigger.Release(pl.VY)
		}
	}

	groundTop := p.groundY - p.charH

	// A grounded character standing above the ground line loses support
	// when it walks off its platform.
	if pl.OnGround && pl.Y < groundTop &&
		!p.grid.HasGroundSupport(pl.WorldX, pl.Y, p.charW, p.charH) {
		pl.OnGround = false
	}

	if !pl.OnGround {
		pl.VY += p.gravity
		if pl.VY > p.maxFall {
			pl.VY = p.maxFall
		}
		newY := pl.Y + pl.VY

		switch {
		case pl.VY < 0: // Rising
			if newY < p.minY {
				newY = p.minY
				pl.VY = 0
			}
			// A fast rise can clear a whole cell row in one tick, so the
			// climb is tested as one swept box covering the old and the
			// tentative positions. The old body is solid-free, so any hit
			// belongs to a row entered on the way up.
			climb := core.NewRect(pl.WorldX, newY, p.charW, pl.Y+p.charH-newY)
			if p.grid.SolidIn(climb) {
				// Head bump: hold position, kill the rise.
				pl.VY = 0
				events = append(events, core.Event{Kind: core.EventCeilingBump})
			} else {
				pl.Y = newY
			}

		case pl.VY > 0: // Falling
			// Terminal velocity outruns the cell size, so the feet are
			// swept pixel by pixel and land on the first supporting row
			// instead of passing through a thin platform.
			landed := false
			for y := pl.Y + 1; y <= newY; y++ {
				if p.grid.HasGroundSupport(pl.WorldX, y, p.charW, p.charH) {
					// Land on the platform: snap to the top of the
					// supporting cell.
					row := (y + p.charH) / p.cellSize
					pl.Y = row*p.cellSize - p.charH
					pl.VY = 0
					pl.OnGround = true
					landed = true
					break
				}
				if y >= groundTop {
					pl.Y = groundTop
					pl.VY = 0
					pl.OnGround = true
					landed = true
					break
				}
			}
			if !landed {
				pl.Y = newY
			}
		}
	}

	if n := p.grid.CollectPickups(pl.BBox(p.charW, p.charH)); n > 0 {
		events = append(events, core.Event{Kind: core.EventPickup, Count: n})
	}

	return events
}
