package engine

// DirtyTracker accumulates changed screen regions for one frame and keeps
// the previous frame's regions around so callers can erase before they
// redraw. Overlapping rects are kept as-is: repainting a pixel twice is
// cheaper than merging rectangles at this scale.
type DirtyTracker struct {
	bounds Rect
	cur    []Rect
	prev   []Rect
	full   bool
}

// NewDirtyTracker creates a tracker clipping to the given buffer bounds.
// The first EndFrame after creation reports a full redraw.
func NewDirtyTracker(bounds Rect) *DirtyTracker {
	return &DirtyTracker{bounds: bounds, full: true}
}

// BeginFrame drops the current frame's accumulated rects.
func (d *DirtyTracker) BeginFrame() {
	d.cur = d.cur[:0]
}

// Mark adds a changed region. The rect is clamped to the tracker bounds;
// rects that end up empty are dropped.
func (d *DirtyTracker) Mark(r Rect) {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return
	}
	d.cur = append(d.cur, r)
}

// PrevRects returns the previous frame's marked regions without copying:
// the set a renderer paints with background before drawing the new frame.
// While a full redraw is pending it is the whole buffer.
func (d *DirtyTracker) PrevRects() []Rect {
	if d.full {
		return []Rect{d.bounds}
	}
	return d.prev
}

// ForceFull marks the entire buffer dirty. Scene transitions, camera jumps
// and pause/resume use this instead of enumerating every change.
func (d *DirtyTracker) ForceFull() {
	d.full = true
}

// EndFrame returns the regions to erase (last frame's marks) and the
// regions to redraw (this frame's marks), then rotates current into
// previous. In full-redraw mode both lists are the whole buffer and the
// incremental accounting is bypassed.
func (d *DirtyTracker) EndFrame() (erase, redraw []Rect) {
	if d.full {
		d.full = false
		// This frame's marks still become the erase set for the next
		// frame: a forced redraw does not change where sprites are.
		d.prev = append(d.prev[:0], d.cur...)
		d.cur = d.cur[:0]
		whole := []Rect{d.bounds}
		return whole, whole
	}

	erase = append([]Rect(nil), d.prev...)
	redraw = append([]Rect(nil), d.cur...)
	d.prev, d.cur = d.cur, d.prev[:0]
	return erase, redraw
}
