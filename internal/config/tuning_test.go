package config

import (
	"testing"

	"merlinpad/internal/engine"
)

func TestNewDispatcherAppliesThresholds(t *testing.T) {
	c := DefaultEngineConfig()
	c.Input.LongPressS = 1.2
	c.Input.DoublePressS = 0.5

	d := c.NewDispatcher()
	if d.LongPress != 1.2 {
		t.Errorf("LongPress = %v, want 1.2", d.LongPress)
	}
	if d.DoublePress != 0.5 {
		t.Errorf("DoublePress = %v, want 0.5", d.DoublePress)
	}
}

func TestNewDispatcherKeepsDefaultsForZeroValues(t *testing.T) {
	var c EngineConfig

	d := c.NewDispatcher()
	if d.LongPress != engine.DefaultLongPress {
		t.Errorf("LongPress = %v, want default %v", d.LongPress, engine.DefaultLongPress)
	}
	if d.DoublePress != engine.DefaultDoublePress {
		t.Errorf("DoublePress = %v, want default %v", d.DoublePress, engine.DefaultDoublePress)
	}
}

func TestNewLedEngineAppliesTuning(t *testing.T) {
	c := DefaultEngineConfig()
	c.Leds.CrossfadeS = 0.1
	c.Leds.RateLimitHz = 60
	c.Leds.Brightness = 0.5

	e := c.NewLedEngine()
	if e.Crossfade != 0.1 {
		t.Errorf("Crossfade = %v, want 0.1", e.Crossfade)
	}
	if e.RateHz != 60 {
		t.Errorf("RateHz = %v, want 60", e.RateHz)
	}
	if e.Brightness != 0.5 {
		t.Errorf("Brightness = %v, want 0.5", e.Brightness)
	}
}

func TestNewLedEngineRejectsOutOfRangeBrightness(t *testing.T) {
	c := DefaultEngineConfig()
	c.Leds.Brightness = 1.5

	e := c.NewLedEngine()
	if e.Brightness != 1 {
		t.Errorf("Brightness = %v, want 1", e.Brightness)
	}
}
