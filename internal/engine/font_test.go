package engine

import "testing"

func TestDrawTextTouchesOnlyReturnedRect(t *testing.T) {
	fb := NewFramebuffer(ScreenW, ScreenH)
	r := fb.DrawText(10, 20, "SCORE 42", FG)

	if r.Empty() {
		t.Fatal("expected non-empty rect")
	}
	for y := 0; y < ScreenH; y++ {
		for x := 0; x < ScreenW; x++ {
			if fb.Pixel(x, y) == FG && !r.Contains(x, y) {
				t.Fatalf("pixel (%d,%d) set outside reported rect %+v", x, y, r)
			}
		}
	}
}

func TestDrawTextWidthMatchesTextWidth(t *testing.T) {
	s := "READY"
	want := TextWidth(s)
	if got := len(s)*AdvanceW - 1; want != got {
		t.Fatalf("TextWidth(%q) = %d, want %d", s, want, got)
	}
}

func TestDrawTextClipsAtEdges(t *testing.T) {
	fb := NewFramebuffer(ScreenW, ScreenH)
	// Off-screen and partially visible text must not panic and must stay
	// inside the buffer.
	fb.DrawText(-50, -50, "GAME OVER", FG)
	fb.DrawText(ScreenW-4, ScreenH-2, "GAME OVER", FG)
	r := fb.DrawText(ScreenW-4, 0, "HI", FG)
	if r.Right() > ScreenW {
		t.Fatalf("clipped rect extends past buffer: %+v", r)
	}
}

func TestDrawTextFoldsLowercase(t *testing.T) {
	a := NewFramebuffer(32, 8)
	b := NewFramebuffer(32, 8)
	a.DrawText(0, 0, "go", FG)
	b.DrawText(0, 0, "GO", FG)
	sa, sb := a.Snapshot(), b.Snapshot()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatal("lowercase did not render like uppercase")
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	fb := NewFramebuffer(ScreenW, ScreenH)
	r := fb.DrawTextCentered(30, "OK", FG)
	wantX := (ScreenW - TextWidth("OK")) / 2
	if r.X != wantX {
		t.Fatalf("centered X = %d, want %d", r.X, wantX)
	}
}

func TestUnknownRuneRendersBlank(t *testing.T) {
	fb := NewFramebuffer(32, 8)
	fb.DrawText(0, 0, "é", FG)
	for _, c := range fb.Snapshot() {
		if c != BG {
			t.Fatal("unknown rune painted pixels")
		}
	}
}
