package tui

import (
	"github.com/charmbracelet/log"

	"merlinpad/internal/device"
	"merlinpad/internal/engine"
	"merlinpad/internal/settings"
)

// Simulator is the terminal stand-in for the keypad hardware: it
// receives framebuffer refreshes and LED writes from the engine and
// holds the latest state for the view to render. All calls happen on
// the Bubble Tea update loop, so no locking is needed.
type Simulator struct {
	frame *engine.Framebuffer
	leds  [engine.LedCount]engine.RGB
	shown [engine.LedCount]engine.RGB
}

// NewSimulator creates an empty simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Refresh implements device.Display. The terminal repaints the whole
// frame every View, so the dirty rects are accepted and ignored.
func (s *Simulator) Refresh(fb *engine.Framebuffer, _ []engine.Rect) {
	s.frame = fb
}

// Set implements engine.PixelSink.
func (s *Simulator) Set(i int, c engine.RGB) {
	if i < 0 || i >= engine.LedCount {
		return
	}
	s.leds[i] = c
}

// Show implements engine.PixelSink: the write-then-flush barrier.
func (s *Simulator) Show() error {
	s.shown = s.leds
	return nil
}

// Leds returns the colors as of the last Show.
func (s *Simulator) Leds() [engine.LedCount]engine.RGB {
	return s.shown
}

// Frame returns the latest framebuffer, or nil before the first refresh.
func (s *Simulator) Frame() *engine.Framebuffer {
	return s.frame
}

// Context assembles a device context around the simulator.
func (s *Simulator) Context(store *settings.Store, logger *log.Logger) *device.Context {
	return &device.Context{
		Display:  s,
		Pixels:   s,
		Speaker:  device.NullSpeaker{},
		Settings: store,
		Log:      logger,
	}
}
