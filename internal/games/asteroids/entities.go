package asteroids

import "math"

// World size: the whole screen is one torus.
const (
	worldW = 128
	worldH = 64
)

// Ship is the player vessel in toroidal world coordinates.
type Ship struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Alive  bool
}

// Bullet is a short-lived projectile.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
}

// Rock is an asteroid. Size 0 is big, 1 medium, 2 small; bigger rocks
// split into two of the next size when hit.
type Rock struct {
	X, Y   float64
	VX, VY float64
	Size   int
}

// Radius returns the rock's collision radius.
func (r *Rock) Radius() float64 {
	return float64(rockRadius[r.Size])
}

// wrapF folds a coordinate into [0, size).
func wrapF(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// torusDist returns the shortest distance between two points on the
// screen torus, where going off one edge re-enters at the other.
func torusDist(x1, y1, x2, y2 float64) float64 {
	dx := math.Abs(x1 - x2)
	dy := math.Abs(y1 - y2)
	if dx > worldW/2 {
		dx = worldW - dx
	}
	if dy > worldH/2 {
		dy = worldH - dy
	}
	return math.Hypot(dx, dy)
}
