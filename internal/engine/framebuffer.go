// Package engine implements the shared rendering, timing, input and LED
// core for the merlinpad games: a 1-bit framebuffer with clipped drawing
// primitives, dirty-region tracking, sprite atlases, a scrolling camera,
// a cooperative tick clock, a key/encoder dispatcher and a smoothed LED
// feedback engine. Game packages build their state machines on top of it;
// the engine itself knows nothing about terminals or hardware.
package engine

// Color is a 1-bit pixel value. Anything non-zero renders as foreground.
type Color uint8

// Pixel values used throughout the games.
const (
	BG Color = 0
	FG Color = 1
)

// Display geometry of the target device.
const (
	ScreenW = 128
	ScreenH = 64
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rects. The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Framebuffer is a W×H 1-bit pixel buffer. All drawing operations clip
// silently to the buffer bounds: out-of-range or degenerate geometry is a
// no-op, never a panic. Game logic is allowed to hand in rough bounding
// boxes (erasing an old sprite position, camera edge overshoot) without
// checking them first.
//
// Small framebuffers double as sprite frames for Atlas.
type Framebuffer struct {
	width  int
	height int
	pix    []Color // row-major, one byte per pixel
}

// NewFramebuffer allocates a cleared buffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Bounds returns the full-buffer rect.
func (f *Framebuffer) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: f.width, H: f.height}
}

// Clear fills the whole buffer with c.
func (f *Framebuffer) Clear(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// SetPixel writes one pixel. Out-of-bounds coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Pixel reads one pixel. Out-of-bounds coordinates read as BG.
func (f *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return BG
	}
	return f.pix[y*f.width+x]
}

// FillRect fills the intersection of the rect with the buffer. Negative
// width/height or fully off-screen rects are no-ops.
func (f *Framebuffer) FillRect(x, y, w, h int, c Color) {
	r := NewRect(x, y, w, h).Intersect(f.Bounds())
	if r.Empty() {
		return
	}
	for yy := r.Y; yy < r.Bottom(); yy++ {
		row := f.pix[yy*f.width : yy*f.width+f.width]
		for xx := r.X; xx < r.Right(); xx++ {
			row[xx] = c
		}
	}
}

// HLine draws a horizontal line from x0 to x1 inclusive at row y.
// The endpoints may be given in either order.
func (f *Framebuffer) HLine(x0, x1, y int, c Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	f.FillRect(x0, y, x1-x0+1, 1, c)
}

// VLine draws a vertical line from y0 to y1 inclusive at column x.
// The endpoints may be given in either order.
func (f *Framebuffer) VLine(x, y0, y1 int, c Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	f.FillRect(x, y0, 1, y1-y0+1, c)
}

// Line draws an arbitrary line segment with Bresenham stepping. Used for
// vector fallbacks and for rasterizing atlas frames at setup time.
func (f *Framebuffer) Line(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		f.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// RectOutline draws the one-pixel border of a rect.
func (f *Framebuffer) RectOutline(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	f.HLine(x, x+w-1, y, c)
	f.HLine(x, x+w-1, y+h-1, c)
	f.VLine(x, y, y+h-1, c)
	f.VLine(x+w-1, y, y+h-1, c)
}

// Snapshot returns a copy of the raw pixel data, row-major. Display
// drivers take this instead of aliasing the live buffer.
func (f *Framebuffer) Snapshot() []Color {
	out := make([]Color, len(f.pix))
	copy(out, f.pix)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
