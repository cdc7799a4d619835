// Package game implements the PANIS side-scroller simulation core: player
// position, vertical physics, camera scrolling, and tile-grid collision and
// pickup logic, advanced one discrete step per fixed-rate tick. The package
// contains pure logic with no platform dependencies; rendering, input
// polling, and feedback hardware live behind the platform layer.
package game

import (
	"fmt"
	"math/rand"

	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

// Game is one simulation session. It exclusively owns the player state and
// the collision grid; every tick is atomic and runs on a single goroutine.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	grid     *Grid
	player   Player
	physics  *Physics
	resolver *Resolver

	tick   uint64
	score  int
	paused bool
	won    bool
}

// configPath and difficultyPreset are set by the CLI before the first Reset.
var (
	configPath       string
	difficultyPreset config.Preset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "panis"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "PANIS"
}

// Reset initializes or restarts the session: loads configuration, generates
// the collision grid from the runtime seed, and places the character at its
// spawn. A failed config load falls back to the embedded default.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(cfg, rc)
}

// ResetWith initializes the session with an explicit config. Grid
// generation is a pure function of the runtime seed, so two sessions with
// equal config and seed evolve identically under equal command sequences.
func (g *Game) ResetWith(cfg config.Config, rc core.RuntimeConfig) {
	g.cfg = cfg
	g.runtime = rc

	rng := rand.New(rand.NewSource(rc.Seed))
	g.grid = NewGrid(cfg, rng)

	w := cfg.World
	g.player = Player{
		WorldX:      w.StartX(),
		ScreenX:     w.StartX(),
		CameraX:     0,
		Y:           w.GroundTop(),
		VY:          0,
		OnGround:    true,
		FacingRight: true,
	}

	cam := NewCamera(w)
	trigger := newJumpTrigger(cfg.Jump, rc.TickRate)
	g.physics = NewPhysics(cfg, g.grid, trigger)
	g.resolver = NewResolver(cfg, g.grid, cam)

	g.tick = 0
	g.score = 0
	g.paused = false
	g.won = false
}

// Step advances the simulation by one fixed tick, consuming at most one
// input command. Physics advances every unpaused tick regardless of input.
func (g *Game) Step(cmd core.Command) core.StepResult {
	if g.won {
		return core.StepResult{State: g.State()}
	}

	if cmd == core.CmdPause {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var events []core.Event

	switch cmd {
	case core.CmdMoveLeft:
		_, ev := g.resolver.TryMove(&g.player, false)
		events = append(events, ev...)
	case core.CmdMoveRight:
		_, ev := g.resolver.TryMove(&g.player, true)
		events = append(events, ev...)
	}

	ev := g.physics.Step(&g.player, cmd, g.tick)
	events = append(events, ev...)
	for _, e := range ev {
		if e.Kind == core.EventPickup {
			g.score += e.Count
		}
	}

	if g.grid.Pills() == 0 && g.grid.PillTotal() > 0 {
		g.won = true
	}

	g.checkInvariants()
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the externally visible session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Pills:    g.grid.Pills(),
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// checkInvariants panics when a tick has broken a structural invariant.
// A violation is a programming defect, never an expected runtime state,
// so there is no recovery path.
func (g *Game) checkInvariants() {
	p := &g.player
	if p.WorldX != p.CameraX+p.ScreenX {
		panic(fmt.Sprintf("game: world_x %d != camera_x %d + screen_x %d at tick %d",
			p.WorldX, p.CameraX, p.ScreenX, g.tick))
	}
	groundTop := g.cfg.World.GroundTop()
	if p.Y < 0 || p.Y > groundTop {
		panic(fmt.Sprintf("game: y_pos %d outside [0, %d] at tick %d", p.Y, groundTop, g.tick))
	}
	if p.OnGround && p.Y != groundTop &&
		!g.grid.HasGroundSupport(p.WorldX, p.Y, g.cfg.World.CharWidth, g.cfg.World.CharHeight) {
		panic(fmt.Sprintf("game: on_ground without support at y_pos %d, tick %d", p.Y, g.tick))
	}
}
