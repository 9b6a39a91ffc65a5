package tui

import (
	"strings"
	"testing"

	"merlinpad/internal/engine"
)

func TestRenderFramePacksTwoRowsPerLine(t *testing.T) {
	fb := engine.NewFramebuffer(4, 4)
	fb.SetPixel(0, 0, engine.FG) // top half only
	fb.SetPixel(1, 1, engine.FG) // bottom half only
	fb.SetPixel(2, 0, engine.FG)
	fb.SetPixel(2, 1, engine.FG) // full block

	out := RenderFrame(fb)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines for a 4-row frame, want 2", len(lines))
	}
	for _, glyph := range []string{"▀", "▄", "█"} {
		if !strings.Contains(lines[0], glyph) {
			t.Errorf("first line missing %q: %q", glyph, lines[0])
		}
	}
	if strings.ContainsAny(lines[1], "▀▄█") {
		t.Errorf("second line should be blank pixels: %q", lines[1])
	}
}

func TestRenderFrameNilIsEmpty(t *testing.T) {
	if out := RenderFrame(nil); out != "" {
		t.Errorf("RenderFrame(nil) = %q, want empty", out)
	}
}

func TestRenderLedsShowsLitPads(t *testing.T) {
	var leds [engine.LedCount]engine.RGB
	leds[4] = engine.RGB{R: 255}

	out := RenderLeds(leds)
	if n := strings.Count(out, "●"); n != 1 {
		t.Errorf("lit pad count = %d, want 1", n)
	}
	if n := strings.Count(out, "·"); n != engine.LedCount-1 {
		t.Errorf("off pad count = %d, want %d", n, engine.LedCount-1)
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("row count = %d, want 4", n)
	}
}
