package engine

import "testing"

func screenBounds() Rect {
	return NewRect(0, 0, ScreenW, ScreenH)
}

// coverage paints a rect list into a boolean grid for pixel-set comparison.
func coverage(rects []Rect) map[[2]int]bool {
	set := make(map[[2]int]bool)
	for _, r := range rects {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func TestDirtyRoundTrip(t *testing.T) {
	d := NewDirtyTracker(screenBounds())
	d.EndFrame() // drain the initial full-redraw state

	marked := []Rect{
		NewRect(3, 4, 5, 6),
		NewRect(100, 50, 60, 60), // clips to 28x14
		NewRect(-5, -5, 8, 8),    // clips to 3x3
	}
	d.BeginFrame()
	for _, r := range marked {
		d.Mark(r)
	}
	_, redraw := d.EndFrame()

	want := coverage([]Rect{
		NewRect(3, 4, 5, 6),
		NewRect(100, 50, 28, 14),
		NewRect(0, 0, 3, 3),
	})
	got := coverage(redraw)
	if len(got) != len(want) {
		t.Fatalf("redraw covers %d pixels, want %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("pixel %v missing from redraw set", p)
		}
	}

	// The next frame erases exactly what was drawn.
	d.BeginFrame()
	erase, _ := d.EndFrame()
	if len(coverage(erase)) != len(want) {
		t.Error("erase list should match previous frame's redraw")
	}
}

func TestDirtyDropsDegenerateRects(t *testing.T) {
	d := NewDirtyTracker(screenBounds())
	d.EndFrame()

	d.BeginFrame()
	d.Mark(NewRect(5, 5, 0, 10))
	d.Mark(NewRect(5, 5, 10, -3))
	d.Mark(NewRect(1000, 1000, 5, 5))
	_, redraw := d.EndFrame()
	if len(redraw) != 0 {
		t.Errorf("degenerate marks produced %d rects", len(redraw))
	}
}

func TestForceFullOverridesMarks(t *testing.T) {
	d := NewDirtyTracker(screenBounds())
	d.EndFrame()

	d.BeginFrame()
	d.Mark(NewRect(1, 1, 2, 2))
	d.ForceFull()
	erase, redraw := d.EndFrame()

	if len(redraw) != 1 || redraw[0] != screenBounds() {
		t.Fatalf("force full redraw = %+v, want full screen", redraw)
	}
	if len(erase) != 1 || erase[0] != screenBounds() {
		t.Fatalf("force full erase = %+v, want full screen", erase)
	}

	// The marks from the full frame still become the next erase set.
	d.BeginFrame()
	erase, _ = d.EndFrame()
	if len(erase) != 1 || erase[0] != NewRect(1, 1, 2, 2) {
		t.Errorf("post-full erase = %+v", erase)
	}
}

func TestFirstFrameIsFull(t *testing.T) {
	d := NewDirtyTracker(screenBounds())
	_, redraw := d.EndFrame()
	if len(redraw) != 1 || redraw[0] != screenBounds() {
		t.Errorf("first frame redraw = %+v, want full screen", redraw)
	}
}
