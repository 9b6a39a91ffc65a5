package engine

import "math"

// LedCount is the number of addressable pads on the device, one per key.
const LedCount = 12

// LED engine defaults.
const (
	DefaultCrossfade = 0.25 // seconds for a target change to settle
	DefaultLedRateHz = 30.0 // max physical flush rate
)

// RGB is one LED color.
type RGB struct {
	R, G, B uint8
}

// Scale returns the color dimmed by k in [0, 1].
func (c RGB) Scale(k float64) RGB {
	k = clampF(k, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}

// Hex returns the color packed as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexRGB unpacks a 0xRRGGBB value.
func HexRGB(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Breathe is the standard idle/attention brightness curve: a cosine
// oscillation between floor and ceiling driven by an accumulated phase.
// Every game in the collection uses this instead of a hand-rolled pulse.
func Breathe(floor, ceiling, phase float64) float64 {
	return floor + (ceiling-floor)*(0.5+0.5*math.Cos(phase))
}

// EaseCos maps linear progress t in [0, 1] onto the smooth cosine ramp
// used for LED crossfades. Monotonic, no overshoot.
func EaseCos(t float64) float64 {
	t = clampF(t, 0, 1)
	return 0.5 - 0.5*math.Cos(t*math.Pi)
}

// fcolor is a color in float space, used while easing.
type fcolor struct {
	r, g, b float64
}

func toF(c RGB) fcolor {
	return fcolor{float64(c.R), float64(c.G), float64(c.B)}
}

func (c fcolor) rgb() RGB {
	return RGB{
		R: uint8(clampF(c.r, 0, 255) + 0.5),
		G: uint8(clampF(c.g, 0, 255) + 0.5),
		B: uint8(clampF(c.b, 0, 255) + 0.5),
	}
}

func lerp(a, b fcolor, t float64) fcolor {
	return fcolor{
		r: a.r + (b.r-a.r)*t,
		g: a.g + (b.g-a.g)*t,
		b: a.b + (b.b-a.b)*t,
	}
}

// ledSlot is the per-pad easing state. A slot always fades from `from`
// toward `goal`; retargeting mid-fade restarts the fade from the current
// visible color so there is never a jump.
type ledSlot struct {
	target    RGB // steady state requested by the game
	from      fcolor
	goal      fcolor
	t         float64 // elapsed fade time
	transient bool
	revertAt  float64 // transient expiry deadline, Clock.Now scale
}

// PixelSink is the LED driver boundary: write-then-flush semantics, no
// pixel visible until Show. A failing or absent driver is tolerated; the
// engine keeps its state regardless.
type PixelSink interface {
	Set(i int, c RGB)
	Show() error
}

// LedEngine owns the 12-slot color buffer. Games declare steady-state
// colors with SetTarget and short flashes with SetTransient; the engine
// crossfades every change over Crossfade seconds and pushes to hardware
// only when something changed and the rate-limit window has elapsed.
// Abrupt jumps and bus saturation are both treated as defects here.
type LedEngine struct {
	Crossfade  float64
	RateHz     float64
	Brightness float64 // global output scale in (0, 1], applied at flush

	slots     [LedCount]ledSlot
	now       float64 // advanced by Tick, used for transient deadlines
	lastFlush float64
	flushed   [LedCount]RGB
	everSent  bool
}

// NewLedEngine creates an engine with default crossfade and rate limit.
func NewLedEngine() *LedEngine {
	e := &LedEngine{
		Crossfade:  DefaultCrossfade,
		RateHz:     DefaultLedRateHz,
		Brightness: 1,
		lastFlush:  math.Inf(-1),
	}
	return e
}

// SetTarget sets the steady-state color of one slot. Out-of-range
// indices are ignored. The visible color eases over; an active transient
// keeps showing until it expires, then reverts to the new target.
func (e *LedEngine) SetTarget(i int, c RGB) {
	if i < 0 || i >= LedCount {
		return
	}
	s := &e.slots[i]
	s.target = c
	if s.transient {
		return
	}
	e.retarget(s, c)
}

// SetAll sets the same steady-state color on every slot.
func (e *LedEngine) SetAll(c RGB) {
	for i := 0; i < LedCount; i++ {
		e.SetTarget(i, c)
	}
}

// SetTransient overlays a temporary color that reverts automatically
// after duration seconds. The caller never has to remember to clear it.
func (e *LedEngine) SetTransient(i int, c RGB, duration float64) {
	if i < 0 || i >= LedCount || duration <= 0 {
		return
	}
	s := &e.slots[i]
	s.transient = true
	s.revertAt = e.now + duration
	e.retarget(s, c)
}

// retarget restarts the slot's fade from its current visible color.
func (e *LedEngine) retarget(s *ledSlot, c RGB) {
	s.from = e.visible(s)
	s.goal = toF(c)
	s.t = 0
}

// visible computes a slot's current eased color in float space.
func (e *LedEngine) visible(s *ledSlot) fcolor {
	if e.Crossfade <= 0 || s.t >= e.Crossfade {
		return s.goal
	}
	return lerp(s.from, s.goal, EaseCos(s.t/e.Crossfade))
}

// Tick advances all in-progress crossfades and expires transients.
func (e *LedEngine) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	e.now += dt
	for i := range e.slots {
		s := &e.slots[i]
		s.t += dt
		if s.transient && e.now >= s.revertAt {
			s.transient = false
			e.retarget(s, s.target)
		}
	}
}

// Color returns the currently visible color of a slot.
func (e *LedEngine) Color(i int) RGB {
	if i < 0 || i >= LedCount {
		return RGB{}
	}
	return e.visible(&e.slots[i]).rgb()
}

// Flush writes the rendered colors to the sink, but only if at least one
// slot differs from the last flush AND 1/RateHz seconds have passed since
// then. Both gates protect the slow LED bus. Returns whether a physical
// write happened. A nil sink updates the change-detection state only.
func (e *LedEngine) Flush(sink PixelSink, now float64) bool {
	if e.RateHz > 0 && now-e.lastFlush < 1.0/e.RateHz {
		return false
	}

	scale := e.Brightness
	if scale <= 0 || scale > 1 {
		scale = 1
	}

	var rendered [LedCount]RGB
	changed := !e.everSent
	for i := range e.slots {
		rendered[i] = e.visible(&e.slots[i]).rgb().Scale(scale)
		if rendered[i] != e.flushed[i] {
			changed = true
		}
	}
	if !changed {
		return false
	}

	e.flushed = rendered
	e.everSent = true
	e.lastFlush = now
	if sink != nil {
		for i, c := range rendered {
			sink.Set(i, c)
		}
		// A broken strip only loses the physical side effect.
		_ = sink.Show()
	}
	return true
}

// Off fades every slot to black and clears transients. Cleanup path.
func (e *LedEngine) Off() {
	for i := range e.slots {
		s := &e.slots[i]
		s.transient = false
		s.target = RGB{}
		e.retarget(s, RGB{})
	}
}
