package engine

// Atlas holds N precomputed sprite frames of identical size. Frames are
// rasterized once at setup (rotated ship outlines, tile styles, glyphs)
// and blitted by copy afterwards, which is much cheaper than redrawing
// the vector shape every frame.
type Atlas struct {
	frames []*Framebuffer
	w, h   int
}

// BuildAtlas rasterizes n frames of size w×h. The generator is invoked
// once per frame with a cleared frame-sized buffer to draw into.
func BuildAtlas(n, w, h int, gen func(i int, frame *Framebuffer)) *Atlas {
	if n < 1 || w < 1 || h < 1 || gen == nil {
		return nil
	}
	a := &Atlas{frames: make([]*Framebuffer, n), w: w, h: h}
	for i := 0; i < n; i++ {
		f := NewFramebuffer(w, h)
		gen(i, f)
		a.frames[i] = f
	}
	return a
}

// Frames returns the number of frames in the atlas.
func (a *Atlas) Frames() int {
	return len(a.frames)
}

// FrameSize returns the width and height of every frame.
func (a *Atlas) FrameSize() (int, int) {
	return a.w, a.h
}

// Blit copies one frame onto dst with its top-left corner at (x, y).
// Pixels equal to skip are treated as transparent. The destination is
// clipped to dst; the touched region (possibly empty) is returned so the
// caller can feed it to a DirtyTracker.
func (a *Atlas) Blit(dst *Framebuffer, frame, x, y int, skip Color) Rect {
	if a == nil || frame < 0 || frame >= len(a.frames) {
		return Rect{}
	}
	src := a.frames[frame]
	dirty := NewRect(x, y, a.w, a.h).Intersect(dst.Bounds())
	if dirty.Empty() {
		return dirty
	}
	for yy := dirty.Y; yy < dirty.Bottom(); yy++ {
		for xx := dirty.X; xx < dirty.Right(); xx++ {
			c := src.Pixel(xx-x, yy-y)
			if c == skip {
				continue
			}
			dst.SetPixel(xx, yy, c)
		}
	}
	return dirty
}

// BlitWrapped blits a frame into a toroidal world of size worldW×worldH.
// A sprite straddling an edge is also drawn at the neighbouring torus
// copies (up to 8 extra positions) so it appears on both sides at once.
// Only offsets whose destination actually overlaps the buffer are drawn.
// The touched regions are returned for dirty tracking.
func (a *Atlas) BlitWrapped(dst *Framebuffer, frame, x, y int, skip Color, worldW, worldH int) []Rect {
	if a == nil || worldW < 1 || worldH < 1 {
		return nil
	}
	var rects []Rect
	for _, dy := range [3]int{0, -worldH, worldH} {
		for _, dx := range [3]int{0, -worldW, worldW} {
			if !NewRect(x+dx, y+dy, a.w, a.h).Intersects(dst.Bounds()) {
				continue
			}
			if r := a.Blit(dst, frame, x+dx, y+dy, skip); !r.Empty() {
				rects = append(rects, r)
			}
		}
	}
	return rects
}
