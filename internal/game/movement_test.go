package game

import (
	"testing"

	"github.com/drpaneas/panis/internal/core"
)

func newTestResolver(g *Grid) *Resolver {
	cfg := openWorldConfig()
	return NewResolver(cfg, g, NewCamera(cfg.World))
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestWallBumpRejectsMove(t *testing.T) {
	cfg := openWorldConfig()
	g := emptyTestGrid(cfg)
	placeSolid(g, 6, 4) // x 32..39, just past the character standing at x 22
	r := newTestResolver(g)
	pl := spawnPlayer(cfg)
	pl.WorldX, pl.ScreenX = 22, 22
	before := pl

	moved, ev := r.TryMove(&pl, true)
	if moved {
		t.Fatal("move into a solid cell was accepted")
	}
	if !hasEvent(ev, core.EventWallBump) {
		t.Fatalf("events = %v, want a wall bump", ev)
	}
	if pl.WorldX != before.WorldX || pl.ScreenX != before.ScreenX || pl.CameraX != before.CameraX || pl.Y != before.Y {
		t.Fatalf("rejected move changed position: %+v -> %+v", before, pl)
	}
	if !pl.FacingRight {
		t.Fatal("facing should update even when the move is rejected")
	}
}

func TestWalkPastWallAbove(t *testing.T) {
	// A solid cell above head height must not block horizontal movement.
	cfg := openWorldConfig()
	g := emptyTestGrid(cfg)
	placeSolid(g, 3, 5)
	r := newTestResolver(g)
	pl := spawnPlayer(cfg)

	moved, ev := r.TryMove(&pl, true)
	if !moved || len(ev) != 0 {
		t.Fatalf("moved %v events %v, want clean move", moved, ev)
	}
	if pl.WorldX != 36 {
		t.Fatalf("world_x = %d, want 36", pl.WorldX)
	}
}

func TestBoundaryBumpEveryAttempt(t *testing.T) {
	cfg := openWorldConfig()
	g := emptyTestGrid(cfg)
	r := newTestResolver(g)
	pl := spawnPlayer(cfg)
	pl.WorldX, pl.ScreenX, pl.CameraX = 0, 0, 0

	for i := 0; i < 3; i++ {
		moved, ev := r.TryMove(&pl, false)
		if moved {
			t.Fatalf("attempt %d: moved past the left edge", i)
		}
		if !hasEvent(ev, core.EventBoundaryBump) {
			t.Fatalf("attempt %d: events = %v, want a boundary bump", i, ev)
		}
	}
	if pl.FacingRight {
		t.Fatal("facing should turn left")
	}
}

func TestBoundaryBumpOnArrival(t *testing.T) {
	cfg := openWorldConfig()
	g := emptyTestGrid(cfg)
	r := newTestResolver(g)
	pl := spawnPlayer(cfg)
	pl.WorldX, pl.ScreenX, pl.CameraX = 4, 4, 0

	moved, ev := r.TryMove(&pl, false)
	if !moved {
		t.Fatal("step onto the edge should be accepted")
	}
	if pl.WorldX != 0 || pl.ScreenX != 0 {
		t.Fatalf("world_x %d screen_x %d, want 0 0", pl.WorldX, pl.ScreenX)
	}
	if !hasEvent(ev, core.EventBoundaryBump) {
		t.Fatalf("events = %v, want a boundary bump on arrival", ev)
	}
}

func TestMarchAcrossWorld(t *testing.T) {
	cfg := openWorldConfig()
	g := emptyTestGrid(cfg)
	r := newTestResolver(g)
	pl := spawnPlayer(cfg)

	maxX := cfg.World.Width() - cfg.World.CharWidth

	// March right until pinned at the far edge, checking the coordinate
	// identity after every accepted step.
	steps := 0
	for {
		moved, _ := r.TryMove(&pl, true)
		if pl.WorldX != pl.CameraX+pl.ScreenX {
			t.Fatalf("step %d: world %d != camera %d + screen %d", steps, pl.WorldX, pl.CameraX, pl.ScreenX)
		}
		if !moved {
			break
		}
		steps++
		if steps > 1000 {
			t.Fatal("never reached the right edge")
		}
	}
	if pl.WorldX != maxX {
		t.Fatalf("pinned at world_x %d, want %d", pl.WorldX, maxX)
	}
	if pl.CameraX != cfg.World.MaxCameraX() {
		t.Fatalf("camera_x = %d, want %d", pl.CameraX, cfg.World.MaxCameraX())
	}
	if pl.ScreenX != cfg.World.ScreenWidth-cfg.World.CharWidth {
		t.Fatalf("screen_x = %d, want %d", pl.ScreenX, cfg.World.ScreenWidth-cfg.World.CharWidth)
	}

	// And all the way back.
	steps = 0
	for {
		moved, _ := r.TryMove(&pl, false)
		if pl.WorldX != pl.CameraX+pl.ScreenX {
			t.Fatalf("return step %d: world %d != camera %d + screen %d", steps, pl.WorldX, pl.CameraX, pl.ScreenX)
		}
		if !moved {
			break
		}
		steps++
		if steps > 1000 {
			t.Fatal("never reached the left edge")
		}
	}
	if pl.WorldX != 0 || pl.ScreenX != 0 || pl.CameraX != 0 {
		t.Fatalf("return trip ended at %d/%d/%d, want 0/0/0", pl.WorldX, pl.ScreenX, pl.CameraX)
	}
}
