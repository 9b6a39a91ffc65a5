package engine

import "time"

// Frame delta limits. A dt outside (0, maxFrameDt] means the clock went
// backwards or the loop stalled (debugger pause, blocking animation); in
// either case the games get one default frame rather than a physics jump.
const (
	maxFrameDt     = 0.5
	defaultFrameDt = 1.0 / 30.0
)

// Clock turns the host loop's call cadence into clamped frame deltas.
// It is a pure timing utility: one instance per game, ticked once per
// host loop iteration.
type Clock struct {
	epoch time.Time
	last  float64
	valid bool
}

// NewClock creates a clock. The first Tick returns the default frame time.
func NewClock() *Clock {
	return &Clock{epoch: time.Now()}
}

// Now returns seconds since the clock was created, from the monotonic
// clock. All engine timestamps (input, LED throttling) use this scale.
func (c *Clock) Now() float64 {
	return time.Since(c.epoch).Seconds()
}

// Tick returns the elapsed time since the previous Tick, clamped.
func (c *Clock) Tick() float64 {
	return c.TickAt(c.Now())
}

// TickAt is Tick with an explicit timestamp, for tests and for hosts that
// already sampled the clock this iteration. The result is always in
// (0, maxFrameDt]; out-of-range deltas collapse to the default frame time.
func (c *Clock) TickAt(now float64) float64 {
	dt := now - c.last
	c.last = now
	if !c.valid {
		c.valid = true
		return defaultFrameDt
	}
	if dt <= 0 || dt > maxFrameDt {
		return defaultFrameDt
	}
	return dt
}
