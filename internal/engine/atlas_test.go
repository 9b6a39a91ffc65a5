package engine

import "testing"

// solidAtlas builds a single fully-lit frame of the given size.
func solidAtlas(w, h int) *Atlas {
	return BuildAtlas(1, w, h, func(i int, frame *Framebuffer) {
		frame.Clear(FG)
	})
}

func TestBuildAtlasInvokesGenerator(t *testing.T) {
	var calls []int
	a := BuildAtlas(4, 8, 8, func(i int, frame *Framebuffer) {
		calls = append(calls, i)
		frame.SetPixel(i, 0, FG)
	})
	if a.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", a.Frames())
	}
	if len(calls) != 4 || calls[0] != 0 || calls[3] != 3 {
		t.Fatalf("generator calls = %v", calls)
	}

	fb := NewFramebuffer(16, 16)
	a.Blit(fb, 2, 0, 0, BG)
	if fb.Pixel(2, 0) != FG {
		t.Error("frame 2 should light pixel (2,0)")
	}
	if fb.Pixel(1, 0) != BG {
		t.Error("skip color pixels must stay transparent")
	}
}

func TestBlitClipsAndReportsDirty(t *testing.T) {
	a := solidAtlas(6, 6)
	fb := NewFramebuffer(ScreenW, ScreenH)

	r := a.Blit(fb, 0, -2, -2, BG)
	if r != NewRect(0, 0, 4, 4) {
		t.Errorf("clipped dirty rect = %+v", r)
	}
	if fb.Pixel(3, 3) != FG || fb.Pixel(4, 4) != BG {
		t.Error("clipped blit painted wrong pixels")
	}

	if !a.Blit(fb, 0, 500, 500, BG).Empty() {
		t.Error("fully off-screen blit should report empty rect")
	}
}

func TestBlitInvalidFrame(t *testing.T) {
	a := solidAtlas(4, 4)
	fb := NewFramebuffer(8, 8)
	if !a.Blit(fb, -1, 0, 0, BG).Empty() {
		t.Error("negative frame index must be a no-op")
	}
	if !a.Blit(fb, 7, 0, 0, BG).Empty() {
		t.Error("out-of-range frame index must be a no-op")
	}
}

func TestBlitWrappedAcrossRightEdge(t *testing.T) {
	// Sprite of width 6 placed at x = world-2: two pixels remain on the
	// right edge, four reappear on the left.
	a := solidAtlas(6, 6)
	fb := NewFramebuffer(ScreenW, ScreenH)

	rects := a.BlitWrapped(fb, 0, ScreenW-2, 10, BG, ScreenW, ScreenH)
	if len(rects) != 2 {
		t.Fatalf("wrap blit emitted %d rects, want 2", len(rects))
	}
	if fb.Pixel(ScreenW-1, 12) != FG {
		t.Error("pixels missing at the right edge")
	}
	if fb.Pixel(0, 12) != FG || fb.Pixel(3, 12) != FG {
		t.Error("pixels missing at the wrapped left edge")
	}
	if fb.Pixel(4, 12) != BG {
		t.Error("wrap copy extends too far")
	}
}

func TestBlitWrappedCorner(t *testing.T) {
	a := solidAtlas(6, 6)
	fb := NewFramebuffer(ScreenW, ScreenH)

	// Straddling both axes: four visible copies.
	rects := a.BlitWrapped(fb, 0, ScreenW-3, ScreenH-3, BG, ScreenW, ScreenH)
	if len(rects) != 4 {
		t.Fatalf("corner wrap emitted %d rects, want 4", len(rects))
	}
	for _, p := range [][2]int{{ScreenW - 1, ScreenH - 1}, {0, 0}, {ScreenW - 1, 0}, {0, ScreenH - 1}} {
		if fb.Pixel(p[0], p[1]) != FG {
			t.Errorf("corner pixel (%d,%d) missing", p[0], p[1])
		}
	}
}

func TestBlitWrappedInterior(t *testing.T) {
	a := solidAtlas(6, 6)
	fb := NewFramebuffer(ScreenW, ScreenH)

	rects := a.BlitWrapped(fb, 0, 40, 20, BG, ScreenW, ScreenH)
	if len(rects) != 1 {
		t.Errorf("interior sprite emitted %d rects, want 1", len(rects))
	}
}
