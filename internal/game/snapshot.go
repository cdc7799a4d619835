package game

// Snapshot captures the complete read-only render state of one tick:
// everything the platform needs to draw tiles, character, and HUD. The
// grid contents are copied, so the renderer never aliases live state.
type Snapshot struct {
	Tick uint64

	WorldX      int
	ScreenX     int
	CameraX     int
	Y           int
	VY          int
	FacingRight bool
	OnGround    bool

	Score  int
	Pills  int
	Blocks int
	Won    bool
	Paused bool

	// World geometry, fixed per session
	ScreenW  int
	ScreenH  int
	WorldW   int
	GroundY  int
	CharW    int
	CharH    int
	CellSize int

	Cells [][]Cell
}

// Snapshot returns the current tick's snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.cfg.World
	return Snapshot{
		Tick:        g.tick,
		WorldX:      g.player.WorldX,
		ScreenX:     g.player.ScreenX,
		CameraX:     g.player.CameraX,
		Y:           g.player.Y,
		VY:          g.player.VY,
		FacingRight: g.player.FacingRight,
		OnGround:    g.player.OnGround,
		Score:       g.score,
		Pills:       g.grid.Pills(),
		Blocks:      g.grid.Blocks(),
		Won:         g.won,
		Paused:      g.paused,
		ScreenW:     w.ScreenWidth,
		ScreenH:     w.ScreenHeight,
		WorldW:      w.Width(),
		GroundY:     w.GroundY,
		CharW:       w.CharWidth,
		CharH:       w.CharHeight,
		CellSize:    w.CellSize,
		Cells:       g.grid.Cells(),
	}
}
