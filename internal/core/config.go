package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it for deterministic simulation; the platform layer uses the
// terminal dimensions for rendering.
type RuntimeConfig struct {
	TermW    int   // Terminal width in characters
	TermH    int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic grid generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TermW:    80,
		TermH:    24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Pickups collected so far
	Pills    int  // Pickups remaining on the grid
	GameOver bool // Whether the session has ended (all pickups collected)
	Paused   bool // Whether the simulation is paused
}
