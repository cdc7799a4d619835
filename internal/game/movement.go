package game

import (
	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

// Resolver turns horizontal input intent into a validated position change:
// it rejects moves whose bounding box would intersect a solid cell and
// commits accepted moves through the camera.
type Resolver struct {
	cam    Camera
	grid   *Grid
	speed  int
	worldW int
	charW  int
	charH  int
}

// NewResolver builds the movement resolver for one session.
func NewResolver(cfg config.Config, grid *Grid, cam Camera) *Resolver {
	return &Resolver{
		cam:    cam,
		grid:   grid,
		speed:  cfg.World.MoveSpeed,
		worldW: cfg.World.Width(),
		charW:  cfg.World.CharWidth,
		charH:  cfg.World.CharHeight,
	}
}

// TryMove attempts one step in the given direction. It returns whether the
// character moved plus any bump events: a wall bump when a solid cell
// rejects the move, a boundary bump on every attempt stopped at a world
// edge and whenever a committed move lands exactly on one.
func (r *Resolver) TryMove(pl *Player, right bool) (bool, []core.Event) {
	pl.FacingRight = right

	maxX := r.worldW - r.charW
	delta := r.speed
	if !right {
		delta = -delta
	}
	tentative := core.Clamp(pl.WorldX+delta, 0, maxX)

	if tentative == pl.WorldX {
		// Already pinned at a world edge.
		return false, []core.Event{{Kind: core.EventBoundaryBump}}
	}

	if r.grid.SolidIn(core.NewRect(tentative, pl.Y, r.charW, r.charH)) {
		return false, []core.Event{{Kind: core.EventWallBump}}
	}

	v := r.cam.Advance(View{WorldX: pl.WorldX, ScreenX: pl.ScreenX, CameraX: pl.CameraX}, r.speed, right)
	pl.WorldX, pl.ScreenX, pl.CameraX = v.WorldX, v.ScreenX, v.CameraX

	var events []core.Event
	if pl.WorldX == 0 || pl.WorldX == maxX {
		events = append(events, core.Event{Kind: core.EventBoundaryBump})
	}
	return true, events
}
