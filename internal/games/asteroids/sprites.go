package asteroids

import (
	"math"

	"merlinpad/internal/engine"
)

// Sprite frame sizes. Every frame in an atlas is the same size, so the
// rock atlas uses the largest rock's box and centers the smaller ones.
const (
	shipSize = 12
	rockSize = 2*rockBigR + 2
)

// Rock radii per size class, pixels.
const (
	rockBigR    = 8
	rockMediumR = 5
	rockSmallR  = 3
)

var rockRadius = [3]int{rockBigR, rockMediumR, rockSmallR}

// buildShipAtlas rasterizes the ship triangle at n rotation steps. Frame
// i covers angle i/n of a full turn; drawing is then a copy instead of a
// per-frame vector rasterization.
func buildShipAtlas(n int) *engine.Atlas {
	if n < 4 {
		n = 4
	}
	return engine.BuildAtlas(n, shipSize, shipSize, func(i int, f *engine.Framebuffer) {
		a := 2 * math.Pi * float64(i) / float64(n)
		drawShip(f, shipSize/2, shipSize/2, a)
	})
}

// drawShip draws the ship outline pointing along angle a (0 = right).
func drawShip(f *engine.Framebuffer, cx, cy int, a float64) {
	const nose, wing = 5.0, 4.0
	px := func(r, da float64) (int, int) {
		return cx + int(math.Round(r*math.Cos(a+da))),
			cy + int(math.Round(r*math.Sin(a+da)))
	}
	nx, ny := px(nose, 0)
	lx, ly := px(wing, 2.5)
	rx, ry := px(wing, -2.5)
	f.Line(nx, ny, lx, ly, engine.FG)
	f.Line(nx, ny, rx, ry, engine.FG)
	f.Line(lx, ly, rx, ry, engine.FG)
}

// buildRockAtlas rasterizes the three rock size classes as lumpy
// polygon outlines, one frame per class.
func buildRockAtlas() *engine.Atlas {
	return engine.BuildAtlas(len(rockRadius), rockSize, rockSize, func(i int, f *engine.Framebuffer) {
		drawRock(f, rockSize/2, rockSize/2, float64(rockRadius[i]))
	})
}

// drawRock draws an 8-vertex outline with a deterministic wobble so the
// rocks read as asteroids rather than circles.
func drawRock(f *engine.Framebuffer, cx, cy int, r float64) {
	const verts = 8
	wobble := [verts]float64{1.0, 0.78, 0.95, 0.82, 1.0, 0.85, 0.92, 0.75}
	var xs, ys [verts]int
	for i := 0; i < verts; i++ {
		a := 2 * math.Pi * float64(i) / verts
		xs[i] = cx + int(math.Round(r*wobble[i]*math.Cos(a)))
		ys[i] = cy + int(math.Round(r*wobble[i]*math.Sin(a)))
	}
	for i := 0; i < verts; i++ {
		j := (i + 1) % verts
		f.Line(xs[i], ys[i], xs[j], ys[j], engine.FG)
	}
}
