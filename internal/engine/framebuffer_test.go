package engine

import "testing"

func TestFillRectClipsEverything(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       Rect // expected visible region after clip
	}{
		{"fully inside", 2, 3, 4, 5, NewRect(2, 3, 4, 5)},
		{"negative origin", -3, -3, 6, 6, NewRect(0, 0, 3, 3)},
		{"past right edge", 126, 0, 10, 2, NewRect(126, 0, 2, 2)},
		{"past bottom edge", 0, 62, 2, 10, NewRect(0, 62, 2, 2)},
		{"fully off screen", 500, 500, 10, 10, Rect{}},
		{"far negative", -1000, -1000, 10, 10, Rect{}},
		{"zero width", 5, 5, 0, 10, Rect{}},
		{"negative width", 5, 5, -4, 4, Rect{}},
		{"negative height", 5, 5, 4, -4, Rect{}},
		{"covers whole screen", -10, -10, 1000, 1000, NewRect(0, 0, ScreenW, ScreenH)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(ScreenW, ScreenH)
			fb.FillRect(tc.x, tc.y, tc.w, tc.h, FG)

			for y := 0; y < ScreenH; y++ {
				for x := 0; x < ScreenW; x++ {
					want := BG
					if tc.want.Contains(x, y) {
						want = FG
					}
					if fb.Pixel(x, y) != want {
						t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, fb.Pixel(x, y), want)
					}
				}
			}
		})
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	// None of these may panic or write anything.
	fb.SetPixel(-1, 0, FG)
	fb.SetPixel(0, -1, FG)
	fb.SetPixel(8, 0, FG)
	fb.SetPixel(0, 8, FG)
	fb.SetPixel(1 << 30, 1 << 30, FG)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if fb.Pixel(x, y) != BG {
				t.Fatalf("unexpected pixel at (%d,%d)", x, y)
			}
		}
	}
	if fb.Pixel(-1, -1) != BG {
		t.Error("out-of-bounds read should be BG")
	}
}

func TestHLineVLineSwappedEndpoints(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.HLine(10, 4, 2, FG)
	fb.VLine(3, 12, 6, FG)

	for x := 4; x <= 10; x++ {
		if fb.Pixel(x, 2) != FG {
			t.Errorf("HLine missing pixel at x=%d", x)
		}
	}
	for y := 6; y <= 12; y++ {
		if fb.Pixel(3, y) != FG {
			t.Errorf("VLine missing pixel at y=%d", y)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	fb.Line(1, 1, 20, 9, FG)
	if fb.Pixel(1, 1) != FG || fb.Pixel(20, 9) != FG {
		t.Error("line must include both endpoints")
	}

	// Off-screen segments clip instead of panicking.
	fb.Line(-50, -50, 100, 100, FG)
	if fb.Pixel(10, 10) != FG {
		t.Error("diagonal through origin should cross (10,10)")
	}
}

func TestClearAndSnapshot(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(FG)
	snap := fb.Snapshot()
	if len(snap) != 16 {
		t.Fatalf("snapshot length = %d, want 16", len(snap))
	}
	for i, c := range snap {
		if c != FG {
			t.Fatalf("snapshot[%d] = %d, want FG", i, c)
		}
	}

	// Snapshot is a copy, not an alias.
	fb.Clear(BG)
	if snap[0] != FG {
		t.Error("snapshot must not alias the live buffer")
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersect(b)
	if got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersect = %+v", got)
	}
	if !a.Intersect(NewRect(20, 20, 5, 5)).Empty() {
		t.Error("disjoint rects must intersect to empty")
	}
}
