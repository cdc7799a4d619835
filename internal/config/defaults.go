package config

import (
	_ "embed"
)

//go:embed defaults/panis.yaml
var defaultYAML []byte

// Default returns the default configuration, matching the constants of the
// original handheld build: 128x64 screen, ground line at y=59, 10x10
// character, three 128px tiles.
func Default() Config {
	return Config{
		World: WorldConfig{
			ScreenWidth:  128,
			ScreenHeight: 64,
			TileWidth:    128,
			NumTiles:     3,
			GroundY:      59,
			CharWidth:    10,
			CharHeight:   10,
			MoveSpeed:    4,
			CellSize:     8,
		},
		Physics: PhysicsConfig{
			Gravity:       2,
			MaxFallSpeed:  10,
			MaxJumpHeight: 40,
		},
		Jump: JumpConfig{
			Policy:        JumpPolicyDoubleTap,
			SmallVelocity: -10,
			BigVelocity:   -14,
			DoubleTapMS:   300,
		},
		Grid: GridConfig{
			AirSolidPercent:    6,
			GroundSolidPercent: 5,
			PickupPercent:      10,
			MaxAttempts:        1000,
		},
	}
}
