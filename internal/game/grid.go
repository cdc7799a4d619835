package game

import (
	"math/rand"

	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

// Cell is the kind of one collision grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSolid
	CellPickup
)

// Grid is the tile map the simulation collides against: a fixed rows x cols
// mapping of world space at cellSize pixels per cell. It is generated once
// per session and mutated only by pickup collection.
type Grid struct {
	rows     int
	cols     int
	cellSize int
	cells    [][]Cell

	pills     int // Pickups remaining
	pillTotal int // Pickups placed at generation
	blocks    int // Solid cells placed at generation
}

// NewGrid generates a grid from the given config and seeded RNG. Generation
// is deterministic for a fixed seed. Placement that cannot meet its target
// within the attempt cap stops silently (a soft cap, not an error). Cells
// overlapping the spawn box are never made solid so a seeded grid cannot
// trap the character at its starting position.
func NewGrid(cfg config.Config, rng *rand.Rand) *Grid {
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

	spawn := core.NewRect(w.StartX(), w.GroundTop(), w.CharWidth, w.CharHeight)
	// Keep one extra cell of headroom above the spawn so the first jump is
	// never an immediate ceiling bump.
	spawn.Y -= w.CellSize
	spawn.H += w.CellSize

	groundRow := w.GroundY / w.CellSize
	if groundRow > g.rows {
		groundRow = g.rows
	}

	total := g.rows * g.cols
	gp := cfg.Grid

	// Phase 1: airborne solid blocks, rejection-sampled anywhere above the
	// ground zone.
	target := total * gp.AirSolidPercent / 100
	placed := 0
	for attempt := 0; placed < target && attempt < gp.MaxAttempts; attempt++ {
		row := rng.Intn(groundRow)
		col := rng.Intn(g.cols)
		if g.cells[row][col] != CellEmpty || g.cellOverlaps(row, col, spawn) {
			continue
		}
		g.cells[row][col] = CellSolid
		placed++
	}

	// Phase 2: ground stacks. Each hit takes the lowest empty cell of a
	// randomly chosen column, so repeated hits on one column grow a tower.
	target = total * gp.GroundSolidPercent / 100
	stacked := 0
	for attempt := 0; stacked < target && attempt < gp.MaxAttempts; attempt++ {
		col := rng.Intn(g.cols)
		row := groundRow - 1
		for row >= 0 && g.cells[row][col] != CellEmpty {
			row--
		}
		if row < 0 || g.cellOverlaps(row, col, spawn) {
			continue
		}
		g.cells[row][col] = CellSolid
		stacked++
	}
	g.blocks = placed + stacked

	// Phase 3: pickups on a share of the cells still empty.
	empty := 0
	for r := 0; r < groundRow; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == CellEmpty {
				empty++
			}
		}
	}
	target = empty * gp.PickupPercent / 100
	for attempt := 0; g.pillTotal < target && attempt < gp.MaxAttempts; attempt++ {
		row := rng.Intn(groundRow)
		col := rng.Intn(g.cols)
		if g.cells[row][col] != CellEmpty {
			continue
		}
		g.cells[row][col] = CellPickup
		g.pillTotal++
	}
	g.pills = g.pillTotal

	return g
}

// cellOverlaps reports whether the cell at (row, col) intersects the box.
func (g *Grid) cellOverlaps(row, col int, b core.Rect) bool {
	x := col * g.cellSize
	y := row * g.cellSize
	if x > b.Right() || x+g.cellSize-1 < b.X {
		return false
	}
	if y > b.Bottom() || y+g.cellSize-1 < b.Y {
		return false
	}
	return true
}

// Cell returns the kind at grid indices (row, col).
// Any out-of-bounds index is treated as open air, never solid.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return CellEmpty
	}
	return g.cells[row][col]
}

// CellAt returns the kind of the cell containing the world pixel (wx, wy).
func (g *Grid) CellAt(wx, wy int) Cell {
	if wx < 0 || wy < 0 {
		return CellEmpty
	}
	return g.Cell(wy/g.cellSize, wx/g.cellSize)
}

// IsSolid reports whether the world pixel (wx, wy) lies in a solid cell.
func (g *Grid) IsSolid(wx, wy int) bool {
	return g.CellAt(wx, wy) == CellSolid
}

// HasGroundSupport reports whether a character of charW x charH at
// (wx, y) stands on a solid cell: it probes the row one pixel below the
// two foot corners.
func (g *Grid) HasGroundSupport(wx, y, charW, charH int) bool {
	below := y + charH // One pixel past the feet
	row := below / g.cellSize
	if row >= g.rows {
		return false
	}
	return g.Cell(row, wx/g.cellSize) == CellSolid ||
		g.Cell(row, (wx+charW-1)/g.cellSize) == CellSolid
}

// SolidIn reports whether any cell overlapped by the bounding box is
// solid. Every spanned row and column is scanned: a box larger than one
// cell has interior cells its corners alone would miss.
func (g *Grid) SolidIn(b core.Rect) bool {
	if b.X > g.cols*g.cellSize-1 || b.Y > g.rows*g.cellSize-1 || b.Right() < 0 || b.Bottom() < 0 {
		return false
	}
	r0 := core.Max(0, b.Y/g.cellSize)
	r1 := core.Min(g.rows-1, b.Bottom()/g.cellSize)
	c0 := core.Max(0, b.X/g.cellSize)
	c1 := core.Min(g.cols-1, b.Right()/g.cellSize)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if g.cells[r][c] == CellSolid {
				return true
			}
		}
	}
	return false
}

// CollectPickups clears every pickup cell overlapped by the bounding box
// and returns how many were collected. Every spanned row and column is
// scanned so boxes wider than one cell cannot miss a pickup.
func (g *Grid) CollectPickups(b core.Rect) int {
	r0 := core.Max(0, b.Y/g.cellSize)
	r1 := core.Min(g.rows-1, b.Bottom()/g.cellSize)
	c0 := core.Max(0, b.X/g.cellSize)
	c1 := core.Min(g.cols-1, b.Right()/g.cellSize)

	collected := 0
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if g.cells[r][c] == CellPickup {
				g.cells[r][c] = CellEmpty
				collected++
			}
		}
	}
	g.pills -= collected
	return collected
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the cell edge length in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Pills returns the number of pickups still on the grid.
func (g *Grid) Pills() int { return g.pills }

// PillTotal returns the number of pickups placed at generation.
func (g *Grid) PillTotal() int { return g.pillTotal }

// Blocks returns the number of solid cells placed at generation.
func (g *Grid) Blocks() int { return g.blocks }

// Cells returns a row-major copy of the grid contents for the renderer.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range g.cells {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}
