package tui

import (
	"testing"

	"merlinpad/internal/engine"
)

func TestSimulatorShowBarrier(t *testing.T) {
	sim := NewSimulator()
	red := engine.RGB{R: 200}

	sim.Set(3, red)
	if sim.Leds()[3] != (engine.RGB{}) {
		t.Fatal("Set leaked to the visible pads before Show")
	}

	if err := sim.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if sim.Leds()[3] != red {
		t.Fatalf("pad 3 = %v after Show, want %v", sim.Leds()[3], red)
	}
}

func TestSimulatorContextIsComplete(t *testing.T) {
	sim := NewSimulator()
	ctx := sim.Context(nil, nil)
	if ctx.Display == nil || ctx.Pixels == nil || ctx.Speaker == nil {
		t.Fatal("simulator context left hardware nil")
	}

	fb := engine.NewFramebuffer(engine.ScreenW, engine.ScreenH)
	fb.SetPixel(1, 1, engine.FG)
	ctx.Refresh(fb, nil)
	if sim.Frame() == nil || sim.Frame().Pixel(1, 1) != engine.FG {
		t.Fatal("Refresh did not hand the frame to the simulator")
	}
}
