package config

import "merlinpad/internal/engine"

// NewDispatcher builds an input dispatcher with this config's
// classification thresholds. Non-positive values keep the engine
// defaults.
func (c EngineConfig) NewDispatcher() *engine.Dispatcher {
	d := engine.NewDispatcher()
	if c.Input.LongPressS > 0 {
		d.LongPress = c.Input.LongPressS
	}
	if c.Input.DoublePressS > 0 {
		d.DoublePress = c.Input.DoublePressS
	}
	return d
}

// NewLedEngine builds an LED engine with this config's crossfade, rate
// limit and brightness. Non-positive values keep the engine defaults.
func (c EngineConfig) NewLedEngine() *engine.LedEngine {
	e := engine.NewLedEngine()
	if c.Leds.CrossfadeS > 0 {
		e.Crossfade = c.Leds.CrossfadeS
	}
	if c.Leds.RateLimitHz > 0 {
		e.RateHz = c.Leds.RateLimitHz
	}
	if c.Leds.Brightness > 0 && c.Leds.Brightness <= 1 {
		e.Brightness = c.Leds.Brightness
	}
	return e
}
