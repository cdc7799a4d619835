package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drpaneas/panis/internal/core"
	"github.com/drpaneas/panis/internal/game"
)

// Terminal cells are roughly twice as tall as wide, so world pixels map to
// characters at different horizontal and vertical scales.
const (
	scaleX = 2
	scaleY = 4
)

const (
	runeSolid  = '▓'
	runePickup = '•'
	runePlayer = '█'
	runeGround = '═'
)

// RenderSnapshot draws one simulation snapshot into the screen buffer,
// centered in the terminal.
func RenderSnapshot(s *core.Screen, snap game.Snapshot, showDebug bool) {
	s.Clear()

	fieldW := snap.ScreenW / scaleX
	fieldH := snap.ScreenH / scaleY
	ox := (s.Width() - fieldW) / 2
	oy := (s.Height() - fieldH) / 2
	if ox < 1 {
		ox = 1
	}
	if oy < 2 {
		oy = 2
	}

	s.DrawBox(core.NewRect(ox-1, oy-1, fieldW+2, fieldH+2))

	// Ground line
	groundRow := oy + snap.GroundY/scaleY
	s.DrawHLine(ox, groundRow, fieldW, runeGround)

	drawCells(s, snap, ox, oy, fieldW)
	drawPlayer(s, snap, ox, oy)

	// HUD above the playfield
	hud := fmt.Sprintf("SCORE %d   LEFT %d", snap.Score, snap.Pills)
	s.DrawText(ox, oy-2, hud)

	if showDebug {
		s.DrawText(ox, oy+fieldH+1, fmt.Sprintf("WX:%d SX:%d CX:%d Y:%d", snap.WorldX, snap.ScreenX, snap.CameraX, snap.Y))
	}

	switch {
	case snap.Won:
		drawBanner(s, ox, oy, fieldW, fieldH, "YOU WIN!", "press r to play again")
	case snap.Paused:
		drawBanner(s, ox, oy, fieldW, fieldH, "PAUSED", "press p to resume")
	}
}

// drawCells renders the grid cells inside the viewport. Cells straddling
// the viewport edge are clipped by the screen buffer.
func drawCells(s *core.Screen, snap game.Snapshot, ox, oy, fieldW int) {
	cell := snap.CellSize
	firstCol := snap.CameraX / cell
	lastCol := (snap.CameraX + snap.ScreenW - 1) / cell

	cw := cell / scaleX // cell width in characters
	ch := cell / scaleY // cell height in characters

	for row := range snap.Cells {
		for col := firstCol; col <= lastCol && col < len(snap.Cells[row]); col++ {
			cx := ox + (col*cell-snap.CameraX)/scaleX
			cy := oy + (row*cell)/scaleY

			switch snap.Cells[row][col] {
			case game.CellSolid:
				for dy := 0; dy < ch; dy++ {
					for dx := 0; dx < cw; dx++ {
						if cx+dx >= ox && cx+dx < ox+fieldW {
							s.Set(cx+dx, cy+dy, runeSolid)
						}
					}
				}
			case game.CellPickup:
				// Centered dot pair instead of a full block
				for dx := cw/2 - 1; dx <= cw/2; dx++ {
					if cx+dx >= ox && cx+dx < ox+fieldW {
						s.Set(cx+dx, cy+ch/2, runePickup)
					}
				}
			}
		}
	}
}

func drawPlayer(s *core.Screen, snap game.Snapshot, ox, oy int) {
	x0 := ox + snap.ScreenX/scaleX
	x1 := ox + (snap.ScreenX+snap.CharW-1)/scaleX
	y0 := oy + snap.Y/scaleY
	y1 := oy + (snap.Y+snap.CharH-1)/scaleY

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, runePlayer)
		}
	}
}

func drawBanner(s *core.Screen, ox, oy, fieldW, fieldH int, title, hint string) {
	y := oy + fieldH/2 - 1
	box := core.NewRect(ox+fieldW/2-12, y-1, 24, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(y, title)
	s.DrawTextCentered(y+1, hint)
}

// runeStyles maps playfield runes to lipgloss styles.
var runeStyles = map[rune]lipgloss.Style{
	runeSolid:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	runePickup: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	runePlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	runeGround: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

var defaultStyle = lipgloss.NewStyle()

func styleFor(r rune) lipgloss.Style {
	if st, ok := runeStyles[r]; ok {
		return st
	}
	return defaultStyle
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.Get(x, y)
			style := styleFor(first)

			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if !sameStyle(r, first) {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func sameStyle(a, b rune) bool {
	_, sa := runeStyles[a]
	_, sb := runeStyles[b]
	if !sa && !sb {
		return true
	}
	return a == b
}
