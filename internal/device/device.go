// Package device defines the hardware boundary of the arcade: the display,
// the per-key LED strip and the speaker the original keypad carries. The
// terminal simulator in platform/tui implements these for interactive play;
// the null drivers serve tests and headless use. Every driver call is
// fire-and-forget: a missing or failing peripheral must never stall a game.
package device

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"merlinpad/internal/engine"
	"merlinpad/internal/settings"
)

// Display receives the framebuffer plus the regions that changed this
// frame. Implementations may redraw only those regions or ignore the hint
// and repaint everything; the call must not block on the physical refresh.
type Display interface {
	Refresh(fb *engine.Framebuffer, rects []engine.Rect)
}

// Speaker plays a fixed-frequency beep. Implementations are allowed to be
// silent no-ops; games must not change behavior based on audibility.
type Speaker interface {
	PlayTone(freq float64, d time.Duration) error
}

// Context is the application context handed to every game constructor:
// one instance per run, built at startup, replacing the hardware
// singletons of the original launcher. Settings may be nil (read-only
// filesystem, headless tests); games treat persistence as best-effort.
type Context struct {
	Display  Display
	Pixels   engine.PixelSink
	Speaker  Speaker
	Settings *settings.Store
	Log      *log.Logger
}

// PlayTone beeps through the context speaker, tolerating a nil or broken
// one. Games call this instead of touching Speaker directly.
func (c *Context) PlayTone(freq float64, d time.Duration) {
	if c == nil || c.Speaker == nil {
		return
	}
	_ = c.Speaker.PlayTone(freq, d)
}

// Refresh forwards to the display if one is attached.
func (c *Context) Refresh(fb *engine.Framebuffer, rects []engine.Rect) {
	if c == nil || c.Display == nil {
		return
	}
	c.Display.Refresh(fb, rects)
}

// Logger returns the context logger, or a discarding default.
func (c *Context) Logger() *log.Logger {
	if c == nil || c.Log == nil {
		return log.New(io.Discard)
	}
	return c.Log
}

// NullDisplay drops every frame. Headless/test driver.
type NullDisplay struct{}

// Refresh implements Display.
func (NullDisplay) Refresh(*engine.Framebuffer, []engine.Rect) {}

// NullPixels absorbs LED writes. Headless/test driver.
type NullPixels struct{}

// Set implements engine.PixelSink.
func (NullPixels) Set(int, engine.RGB) {}

// Show implements engine.PixelSink.
func (NullPixels) Show() error { return nil }

// NullSpeaker is silent. Headless/test driver.
type NullSpeaker struct{}

// PlayTone implements Speaker.
func (NullSpeaker) PlayTone(float64, time.Duration) error { return nil }

// NullContext builds a context with null drivers and no persistence.
// Game tests run their full lifecycle against this.
func NullContext() *Context {
	return &Context{
		Display: NullDisplay{},
		Pixels:  NullPixels{},
		Speaker: NullSpeaker{},
	}
}
