package game

import (
	"testing"

	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

func newTestPhysics(cfg config.Config, g *Grid) *Physics {
	return NewPhysics(cfg, g, NewDoubleTapJump(cfg.Jump, 60))
}

func TestJumpAndLand(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)

	if pl.Y != 49 || !pl.OnGround {
		t.Fatalf("spawn state: y %d on_ground %v", pl.Y, pl.OnGround)
	}

	// The launch velocity is applied and gravity integrates on the same
	// tick, so the press itself already moves the character.
	tick := uint64(1)
	phys.Step(&pl, core.CmdJumpPress, tick)
	if want := cfg.Jump.SmallVelocity + cfg.Physics.Gravity; pl.VY != want {
		t.Fatalf("after press: vy = %d, want %d", pl.VY, want)
	}
	if pl.OnGround {
		t.Fatal("still grounded after jump press")
	}
	if pl.Y != 41 {
		t.Fatalf("after press: y = %d, want 41", pl.Y)
	}

	for i := 0; i < 60 && !pl.OnGround; i++ {
		tick++
		phys.Step(&pl, core.CmdNone, tick)
		if pl.Y < 0 || pl.Y > 49 {
			t.Fatalf("y %d escaped [0, 49] at tick %d", pl.Y, tick)
		}
	}
	if !pl.OnGround || pl.Y != 49 || pl.VY != 0 {
		t.Fatalf("after landing: y %d vy %d on_ground %v", pl.Y, pl.VY, pl.OnGround)
	}
}

func TestGravityClampedToMaxFall(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)
	pl.Y = 0
	pl.OnGround = false

	for tick := uint64(1); tick <= 10 && !pl.OnGround; tick++ {
		phys.Step(&pl, core.CmdNone, tick)
		if pl.VY > cfg.Physics.MaxFallSpeed {
			t.Fatalf("vy %d exceeds max fall speed %d", pl.VY, cfg.Physics.MaxFallSpeed)
		}
	}
	if !pl.OnGround {
		t.Fatal("free fall from the top never reached the ground")
	}
}

func TestDoubleTapLaunch(t *testing.T) {
	trig := NewDoubleTapJump(config.Default().Jump, 60)
	if trig.WindowTicks != 18 {
		t.Fatalf("window = %d ticks, want 18 (300ms at 60Hz)", trig.WindowTicks)
	}

	// Solitary press: small jump. A press inside the window: big jump.
	if v := trig.Launch(100, 0); v != -10 {
		t.Errorf("first ever press: vy %d, want -10", v)
	}
	if v := trig.Launch(100, 90); v != -14 {
		t.Errorf("press 10 ticks after previous: vy %d, want -14", v)
	}
	if v := trig.Launch(100, 80); v != -10 {
		t.Errorf("press 20 ticks after previous: vy %d, want -10", v)
	}
}

func TestDoubleTapAcrossLanding(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)

	// First jump, ride it to the ground, then press again within the
	// window: the second jump is the big one.
	tick := uint64(1)
	phys.Step(&pl, core.CmdJumpPress, tick)
	for i := 0; i < 60 && !pl.OnGround; i++ {
		tick++
		phys.Step(&pl, core.CmdNone, tick)
	}
	tick++
	phys.Step(&pl, core.CmdJumpPress, tick)
	if want := cfg.Jump.BigVelocity + cfg.Physics.Gravity; pl.VY != want {
		t.Fatalf("second press vy = %d, want big jump %d", pl.VY, want)
	}
}

func TestHoldJumpPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Jump.Policy = config.JumpPolicyHold
	g := emptyTestGrid(cfg)
	phys := NewPhysics(cfg, g, NewHoldJump(cfg.Jump))
	pl := spawnPlayer(cfg)

	// Long hold launches the big jump directly.
	phys.Step(&pl, core.CmdJumpLongHold, 1)
	if want := cfg.Jump.BigVelocity + cfg.Physics.Gravity; pl.VY != want {
		t.Fatalf("long hold vy = %d, want %d", pl.VY, want)
	}

	// Releasing mid-rise halves the upward velocity.
	before := pl.VY
	phys.Step(&pl, core.CmdJumpRelease, 2)
	// Gravity applies after the release adjustment.
	want := before/2 + cfg.Physics.Gravity
	if pl.VY != want {
		t.Fatalf("after release: vy = %d, want %d", pl.VY, want)
	}
}

func TestCeilingBump(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	// Solid cells overhead at row 4 (y 32..39) across the player's span.
	placeSolid(g, 4, 4)
	placeSolid(g, 4, 5)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg) // world_x 32 puts the body under cols 4-5

	// Press tick: vy -10 then gravity, rising to y 41, no contact yet.
	ev := phys.Step(&pl, core.CmdJumpPress, 1)
	if len(ev) != 0 || pl.Y != 41 {
		t.Fatalf("press tick: y %d events %v, want y 41 and none", pl.Y, ev)
	}

	ev = phys.Step(&pl, core.CmdNone, 2)
	// Tick 2: vy -6, tentative y 35 intersects the solid row: bump.
	if pl.Y != 41 {
		t.Fatalf("head bump should hold y at 41, got %d", pl.Y)
	}
	if pl.VY != 0 {
		t.Fatalf("head bump should zero vy, got %d", pl.VY)
	}
	if len(ev) != 1 || ev[0].Kind != core.EventCeilingBump {
		t.Fatalf("events = %v, want one ceiling bump", ev)
	}

	// The character then falls back to the ground line.
	tick := uint64(3)
	for i := 0; i < 60 && !pl.OnGround; i++ {
		phys.Step(&pl, core.CmdNone, tick)
		tick++
	}
	if pl.Y != 49 {
		t.Fatalf("expected to land at 49, got %d", pl.Y)
	}
}

func TestFastRiseBlockedByLowCeiling(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	// Solids one row above standing head height (y 40..47), just clear
	// of the standing body at 49..58.
	placeSolid(g, 5, 4)
	placeSolid(g, 5, 5)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)

	// A press inside the double-tap window launches the big jump, which
	// climbs 12px on the press tick, more than one cell row. The swept
	// climb box must still register the contact.
	pl.LastJumpTick = 95
	ev := phys.Step(&pl, core.CmdJumpPress, 100)
	if pl.Y != 49 || pl.VY != 0 {
		t.Fatalf("bump should hold y 49 vy 0, got y %d vy %d", pl.Y, pl.VY)
	}
	if len(ev) != 1 || ev[0].Kind != core.EventCeilingBump {
		t.Fatalf("events = %v, want one ceiling bump", ev)
	}
	if g.SolidIn(pl.BBox(cfg.World.CharWidth, cfg.World.CharHeight)) {
		t.Fatal("body overlaps a solid cell after the bump")
	}
}

func TestPlatformLanding(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	placeSolid(g, 5, 4) // top of cell at y 40
	placeSolid(g, 5, 5)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)
	pl.Y = 20
	pl.OnGround = false

	tick := uint64(1)
	for i := 0; i < 30 && !pl.OnGround; i++ {
		phys.Step(&pl, core.CmdNone, tick)
		tick++
	}
	if !pl.OnGround {
		t.Fatal("never landed")
	}
	// Snapped to the top of the supporting cell: 5*8 - 10 = 30.
	if pl.Y != 30 {
		t.Fatalf("landed at y %d, want 30 (platform top)", pl.Y)
	}
	if pl.VY != 0 {
		t.Fatalf("vy = %d after landing", pl.VY)
	}
}

func TestTerminalFallLandsOnThinPlatform(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	placeSolid(g, 3, 4) // cell spans y 24..31
	placeSolid(g, 3, 5)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)
	pl.Y = 13
	pl.VY = cfg.Physics.MaxFallSpeed
	pl.OnGround = false

	// At terminal velocity the feet cross the whole platform row in one
	// tick (23 to 33); the pixel sweep must catch it on the way down.
	phys.Step(&pl, core.CmdNone, 1)
	if !pl.OnGround {
		t.Fatal("fell through the platform row")
	}
	// Snapped to the top of the supporting cell: 3*8 - 10 = 14.
	if pl.Y != 14 || pl.VY != 0 {
		t.Fatalf("landed at y %d vy %d, want y 14 vy 0", pl.Y, pl.VY)
	}
}

func TestWalkOffPlatformFalls(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	placeSolid(g, 5, 4)
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)
	pl.Y = 30
	pl.OnGround = true
	pl.WorldX = 48 // both feet past the platform column
	pl.ScreenX = 48

	phys.Step(&pl, core.CmdNone, 1)
	if pl.OnGround {
		t.Fatal("support lost but still grounded")
	}

	tick := uint64(2)
	for i := 0; i < 30 && !pl.OnGround; i++ {
		phys.Step(&pl, core.CmdNone, tick)
		tick++
	}
	if pl.Y != 49 {
		t.Fatalf("fell to y %d, want ground top 49", pl.Y)
	}
}

func TestMaxJumpHeightClamp(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.MaxJumpHeight = 10 // highest reachable y is 39
	g := emptyTestGrid(cfg)
	phys := NewPhysics(cfg, g, NewDoubleTapJump(cfg.Jump, 60))
	pl := spawnPlayer(cfg)

	phys.Step(&pl, core.CmdJumpPress, 1)
	pl.VY = cfg.Jump.BigVelocity // force the big launch
	phys.Step(&pl, core.CmdNone, 2)

	if pl.Y < 39 {
		t.Fatalf("rose to y %d past the configured ceiling 39", pl.Y)
	}
	if pl.Y == 39 && pl.VY != 0 {
		t.Fatalf("clamped at max height but vy = %d", pl.VY)
	}
}

func TestPickupCollectedWhileAirborne(t *testing.T) {
	cfg := config.Default()
	g := emptyTestGrid(cfg)
	placePickup(g, 4, 4) // y 32..39 above the spawn
	phys := newTestPhysics(cfg, g)
	pl := spawnPlayer(cfg)

	phys.Step(&pl, core.CmdJumpPress, 1)
	var collected int
	tick := uint64(2)
	for i := 0; i < 60 && !pl.OnGround; i++ {
		for _, e := range phys.Step(&pl, core.CmdNone, tick) {
			if e.Kind == core.EventPickup {
				collected += e.Count
			}
		}
		tick++
	}
	if collected != 1 {
		t.Fatalf("collected %d pickups during the jump, want 1", collected)
	}
	if g.Pills() != 0 {
		t.Fatalf("grid still reports %d pills", g.Pills())
	}
}
