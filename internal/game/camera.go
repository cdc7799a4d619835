package game

import (
	"github.com/drpaneas/panis/internal/config"
	"github.com/drpaneas/panis/internal/core"
)

// View holds the three horizontal coordinates the camera keeps consistent:
// world_x == camera_x + screen_x after every update.
type View struct {
	WorldX  int // Canonical position in world space
	ScreenX int // Position inside the viewport
	CameraX int // Scroll offset mapping world space onto the viewport
}

// Camera encodes the scroll/move decision of a side-scroller: the character
// walks until mid-screen, then the world scrolls underneath while the
// character holds position. All state goes in and comes out through View;
// the camera itself is immutable.
type Camera struct {
	worldW    int
	screenW   int
	charW     int
	threshold int
}

// NewCamera builds a camera for the given world geometry.
func NewCamera(w config.WorldConfig) Camera {
	return Camera{
		worldW:    w.Width(),
		screenW:   w.ScreenWidth,
		charW:     w.CharWidth,
		threshold: w.ScrollThreshold(),
	}
}

// Advance moves the view delta pixels toward increasing world x when right
// is true, decreasing otherwise. When the camera clamps at either end, the
// overflow is pushed onto screen x so world_x == camera_x + screen_x holds.
func (c Camera) Advance(v View, delta int, right bool) View {
	maxCamera := c.worldW - c.screenW

	if right {
		if v.ScreenX >= c.threshold && v.CameraX < maxCamera {
			// Scroll the world
			v.CameraX += delta
			v.WorldX += delta
			if v.CameraX > maxCamera {
				overflow := v.CameraX - maxCamera
				v.CameraX = maxCamera
				v.ScreenX += overflow
			}
		} else {
			// Move the character on screen
			v.ScreenX += delta
			v.WorldX += delta
			if v.ScreenX > c.screenW-c.charW {
				v.ScreenX = c.screenW - c.charW
			}
		}
	} else {
		if v.ScreenX <= c.threshold && v.CameraX > 0 {
			v.CameraX -= delta
			v.WorldX -= delta
			if v.CameraX < 0 {
				overflow := -v.CameraX
				v.CameraX = 0
				v.ScreenX -= overflow
			}
		} else {
			v.ScreenX -= delta
			v.WorldX -= delta
			if v.ScreenX < 0 {
				v.ScreenX = 0
			}
		}
	}

	// Final safety bound on the canonical coordinate.
	v.WorldX = core.Clamp(v.WorldX, 0, c.worldW-c.charW)
	return v
}
