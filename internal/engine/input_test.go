package engine

import "testing"

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestRawEventsAlwaysDelivered(t *testing.T) {
	d := NewDispatcher()
	d.Key(3, true, 0.0)
	d.Key(3, false, 0.1)
	ev := d.Poll(0.2)

	if countKind(ev, EventDown) != 1 || countKind(ev, EventUp) != 1 {
		t.Fatalf("raw events missing: %+v", ev)
	}
	// Key 3 is not classified: no tap ever fires.
	ev = d.Poll(5.0)
	if len(ev) != 0 {
		t.Errorf("unclassified key produced %+v", ev)
	}
}

func TestTapFiresAfterDoubleWindow(t *testing.T) {
	d := NewDispatcher()
	d.Classify(7)

	d.Key(7, true, 1.0)
	d.Key(7, false, 1.2)

	// Inside the double-press window: no tap yet.
	if ev := d.Poll(1.3); countKind(ev, EventTap) != 0 {
		t.Fatal("tap fired before the double-press window elapsed")
	}
	// Window elapsed, exactly one tap.
	ev := d.Poll(1.4)
	if countKind(ev, EventTap) != 1 {
		t.Fatalf("want one tap, got %+v", ev)
	}
	if ev := d.Poll(5.0); countKind(ev, EventTap) != 0 {
		t.Error("tap fired twice")
	}
}

func TestLongPressFiresAtThresholdNotRelease(t *testing.T) {
	d := NewDispatcher()
	d.Classify(11)

	d.Key(11, true, 0.0)
	if ev := d.Poll(0.9); countKind(ev, EventLongPress) != 0 {
		t.Fatal("long-press fired early")
	}

	// Threshold crossed while still held.
	ev := d.Poll(1.05)
	if countKind(ev, EventLongPress) != 1 {
		t.Fatalf("want one long-press, got %+v", ev)
	}
	// The reported time is the threshold crossing, not the poll time.
	for _, e := range ev {
		if e.Kind == EventLongPress && e.Time != DefaultLongPress {
			t.Errorf("long-press time = %g, want %g", e.Time, DefaultLongPress)
		}
	}

	// Release after a long-press: raw up only, no trailing tap. Ever.
	d.Key(11, false, 1.2)
	ev = d.Poll(1.2)
	if countKind(ev, EventUp) != 1 || countKind(ev, EventTap) != 0 {
		t.Fatalf("release after long-press produced %+v", ev)
	}
	if ev := d.Poll(10.0); countKind(ev, EventTap) != 0 {
		t.Error("late tap after long-press")
	}
}

func TestDoubleTapConsumesBothTaps(t *testing.T) {
	d := NewDispatcher()
	d.Classify(4)

	d.Key(4, true, 0.0)
	d.Key(4, false, 0.1)
	d.Key(4, true, 0.25) // second down inside the window
	d.Key(4, false, 0.35)

	ev := d.Poll(0.4)
	if countKind(ev, EventDoubleTap) != 1 {
		t.Fatalf("want one double-tap, got %+v", ev)
	}
	if countKind(ev, EventTap) != 0 {
		t.Fatal("double-tap must suppress single taps")
	}
	if ev := d.Poll(10.0); countKind(ev, EventTap)+countKind(ev, EventDoubleTap) != 0 {
		t.Error("stray classified events after double-tap")
	}
}

func TestSlowSecondPressIsTwoTaps(t *testing.T) {
	d := NewDispatcher()
	d.Classify(4)

	d.Key(4, true, 0.0)
	d.Key(4, false, 0.1)
	d.Key(4, true, 0.6) // outside the 0.35s window
	d.Key(4, false, 0.7)

	ev := d.Poll(2.0)
	if countKind(ev, EventTap) != 2 || countKind(ev, EventDoubleTap) != 0 {
		t.Fatalf("want two taps, got %+v", ev)
	}
}

func TestSimultaneousKeysClassifyIndependently(t *testing.T) {
	d := NewDispatcher()
	d.Classify(1)
	d.Classify(2)

	d.Key(1, true, 0.0)
	d.Key(2, true, 0.0)
	d.Key(2, false, 0.1) // key 2 taps while key 1 is still held
	ev := d.Poll(1.5)

	if countKind(ev, EventLongPress) != 1 {
		t.Fatalf("key 1 should long-press: %+v", ev)
	}
	if countKind(ev, EventTap) != 1 {
		t.Fatalf("key 2 should tap: %+v", ev)
	}
	for _, e := range ev {
		if e.Kind == EventLongPress && e.Key != 1 {
			t.Error("long-press attributed to the wrong key")
		}
		if e.Kind == EventTap && e.Key != 2 {
			t.Error("tap attributed to the wrong key")
		}
	}
}

func TestEncoderDeltas(t *testing.T) {
	d := NewDispatcher()
	d.Encoder(2, 0.0)
	d.Encoder(0, 0.1) // zero deltas are dropped
	d.Encoder(-1, 0.2)

	ev := d.Poll(0.3)
	if countKind(ev, EventEncoder) != 2 {
		t.Fatalf("want 2 encoder events, got %+v", ev)
	}
	if ev[0].Delta != 2 || ev[1].Delta != -1 {
		t.Errorf("encoder deltas = %d,%d", ev[0].Delta, ev[1].Delta)
	}
}

func TestResetDropsPendingState(t *testing.T) {
	d := NewDispatcher()
	d.Classify(5)
	d.Key(5, true, 0.0)
	d.Key(5, false, 0.1)
	d.Reset()

	if ev := d.Poll(5.0); len(ev) != 0 {
		t.Errorf("events survived Reset: %+v", ev)
	}
}
