package engine

// Input classification thresholds, overridable per dispatcher.
const (
	DefaultLongPress   = 1.0  // seconds a key must stay down to long-press
	DefaultDoublePress = 0.35 // max gap between down events for a double-tap
)

// EventKind identifies what the dispatcher decoded.
type EventKind int

const (
	// Raw level-triggered events, always delivered.
	EventDown EventKind = iota
	EventUp

	// Classified events, delivered only for keys with Classify enabled.
	// Tap, LongPress and DoubleTap are mutually exclusive outcomes of
	// the same physical press.
	EventTap
	EventLongPress
	EventDoubleTap

	// EventEncoder carries the encoder delta in Delta.
	EventEncoder
)

// Event is one decoded input occurrence.
type Event struct {
	Kind  EventKind
	Key   int
	Delta int
	Time  float64
}

// keyState is the per-key disambiguation state. Keys are independent:
// two physically simultaneous presses classify separately.
type keyState struct {
	classify   bool
	down       bool
	downAt     float64
	longFired  bool
	eatRelease bool // release consumed by a double-tap

	tapPending bool
	tapDownAt  float64
}

// Dispatcher turns raw key down/up samples and encoder positions into
// semantic events. Raw down/up events are always emitted; the tap /
// long-press / double-tap classification is opt-in per key so that games
// which only need level-triggered input pay nothing for it.
//
// Events accumulate internally; the game drains them once per tick with
// Poll, which also fires time-based classifications (a long-press fires
// at the threshold crossing, not on release).
type Dispatcher struct {
	LongPress   float64
	DoublePress float64

	keys   map[int]*keyState
	events []Event
}

// NewDispatcher creates a dispatcher with the default thresholds.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		LongPress:   DefaultLongPress,
		DoublePress: DefaultDoublePress,
		keys:        make(map[int]*keyState),
	}
}

// Classify enables tap/long-press/double-tap decoding for a key.
func (d *Dispatcher) Classify(key int) {
	d.state(key).classify = true
}

func (d *Dispatcher) state(key int) *keyState {
	s, ok := d.keys[key]
	if !ok {
		s = &keyState{}
		d.keys[key] = s
	}
	return s
}

func (d *Dispatcher) emit(kind EventKind, key int, now float64) {
	d.events = append(d.events, Event{Kind: kind, Key: key, Time: now})
}

// Key feeds one raw key transition with its timestamp (Clock.Now scale).
func (d *Dispatcher) Key(key int, pressed bool, now float64) {
	s := d.state(key)
	if pressed {
		d.emit(EventDown, key, now)
		if s.down {
			return // repeated down without an up; keep original press time
		}
		s.down = true
		s.downAt = now
		s.longFired = false
		s.eatRelease = false
		if s.classify && s.tapPending && now-s.tapDownAt > d.DoublePress {
			// A stale tap candidate from before this press: flush it as
			// a tap now so it is not lost under the new press state.
			s.tapPending = false
			d.emit(EventTap, key, now)
		}
		if s.classify && s.tapPending && now-s.tapDownAt <= d.DoublePress {
			// Second down inside the window: one double-tap instead of
			// two taps. The pending tap and this press are both consumed.
			s.tapPending = false
			s.eatRelease = true
			s.longFired = true // the consumed press cannot also long-press
			d.emit(EventDoubleTap, key, now)
		}
		return
	}

	d.emit(EventUp, key, now)
	if !s.down {
		return
	}
	s.down = false
	if !s.classify || s.longFired || s.eatRelease {
		// A long-press never produces a trailing tap on release.
		return
	}
	if now-s.downAt < d.LongPress {
		s.tapPending = true
		s.tapDownAt = s.downAt
	}
}

// Encoder feeds an encoder position change as a delta.
func (d *Dispatcher) Encoder(delta int, now float64) {
	if delta == 0 {
		return
	}
	d.events = append(d.events, Event{Kind: EventEncoder, Delta: delta, Time: now})
}

// Poll fires any time-based classifications that are due and returns all
// accumulated events. The returned slice is valid until the next Poll.
func (d *Dispatcher) Poll(now float64) []Event {
	for key, s := range d.keys {
		if !s.classify {
			continue
		}
		if s.down && !s.longFired && now-s.downAt >= d.LongPress {
			s.longFired = true
			d.emit(EventLongPress, key, s.downAt+d.LongPress)
		}
		if s.tapPending && now-s.tapDownAt > d.DoublePress {
			s.tapPending = false
			d.emit(EventTap, key, now)
		}
	}
	out := d.events
	d.events = d.events[:0]
	return out
}

// Reset drops all per-key state and pending events. Games call this on
// scene transitions so a press started in one phase cannot classify in
// the next.
func (d *Dispatcher) Reset() {
	d.keys = make(map[int]*keyState)
	d.events = d.events[:0]
}
