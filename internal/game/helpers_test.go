package game

import (
	"github.com/drpaneas/panis/internal/config"
)

// emptyTestGrid builds a grid with no solids or pickups for tests that
// place cells by hand.
func emptyTestGrid(cfg config.Config) *Grid {
	w := cfg.World
	g := &Grid{
		rows:     w.ScreenHeight / w.CellSize,
		cols:     w.Width() / w.CellSize,
		cellSize: w.CellSize,
	}
	g.cells = make([][]Cell, g.rows)
	for r := range g.cells {
		g.cells[r] = make([]Cell, g.cols)
	}
	return g
}

func placeSolid(g *Grid, row, col int) {
	g.cells[row][col] = CellSolid
	g.blocks++
}

func placePickup(g *Grid, row, col int) {
	g.cells[row][col] = CellPickup
	g.pills++
	g.pillTotal++
}

// spawnPlayer returns a player at the session start position.
func spawnPlayer(cfg config.Config) Player {
	w := cfg.World
	return Player{
		WorldX:      w.StartX(),
		ScreenX:     w.StartX(),
		Y:           w.GroundTop(),
		OnGround:    true,
		FacingRight: true,
	}
}

// openWorldConfig is the default config with procedural generation turned
// off, leaving an obstacle-free world for movement scenarios.
func openWorldConfig() config.Config {
	cfg := config.Default()
	cfg.Grid.AirSolidPercent = 0
	cfg.Grid.GroundSolidPercent = 0
	cfg.Grid.PickupPercent = 0
	return cfg
}
