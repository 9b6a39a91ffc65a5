package engine

import "math"

// Camera maps a larger logical world onto the fixed display window. The
// position is kept in float coordinates so the eased follow is smooth;
// it is truncated to whole pixels only when converting to screen space,
// which avoids sub-pixel jitter on a 1-bit display.
type Camera struct {
	X, Y             float64 // current viewport origin in world units
	TargetX, TargetY float64
	Speed            float64 // follow speed in world units per second
}

// NewCamera creates a camera at the origin with the given follow speed.
// A speed of 0 snaps to the target immediately.
func NewCamera(speed float64) *Camera {
	return &Camera{Speed: speed}
}

// SetTarget sets the desired viewport origin. Callers typically center on
// a tracked entity: target = entity position minus half the viewport.
func (c *Camera) SetTarget(wx, wy float64) {
	c.TargetX = wx
	c.TargetY = wy
}

// JumpTo moves the camera instantly, also resetting the target. Scene
// transitions use this together with DirtyTracker.ForceFull.
func (c *Camera) JumpTo(wx, wy float64) {
	c.X, c.Y = wx, wy
	c.TargetX, c.TargetY = wx, wy
}

// Update eases the origin toward the target at Speed units per second,
// stopping exactly on the target once within reach. No overshoot.
func (c *Camera) Update(dt float64) {
	if c.Speed <= 0 || dt <= 0 {
		c.X, c.Y = c.TargetX, c.TargetY
		return
	}
	dx := c.TargetX - c.X
	dy := c.TargetY - c.Y
	dist := math.Hypot(dx, dy)
	step := c.Speed * dt
	if dist <= step || dist == 0 {
		c.X, c.Y = c.TargetX, c.TargetY
		return
	}
	c.X += dx / dist * step
	c.Y += dy / dist * step
}

// ClampToWorld keeps the viewport inside the world: the origin stays in
// [0, world-viewport] per axis. Worlds smaller than the viewport clamp to
// zero. Both the position and the target are clamped so the easing never
// pulls the camera back out of bounds. Idempotent.
func (c *Camera) ClampToWorld(worldW, worldH, viewW, viewH float64) {
	maxX := math.Max(0, worldW-viewW)
	maxY := math.Max(0, worldH-viewH)
	c.X = clampF(c.X, 0, maxX)
	c.Y = clampF(c.Y, 0, maxY)
	c.TargetX = clampF(c.TargetX, 0, maxX)
	c.TargetY = clampF(c.TargetY, 0, maxY)
}

// WorldToScreen converts a world point to screen pixels, truncating the
// camera origin to whole pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (int, int) {
	return int(wx) - int(c.X), int(wy) - int(c.Y)
}

// IsVisible reports whether a world point, expanded by margin (a sprite
// radius, typically), falls inside the viewport. Used to cull off-screen
// entities before drawing.
func (c *Camera) IsVisible(wx, wy, margin float64, viewW, viewH int) bool {
	sx := wx - c.X
	sy := wy - c.Y
	return sx+margin >= 0 && sx-margin < float64(viewW) &&
		sy+margin >= 0 && sy-margin < float64(viewH)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
