package touch

import (
	"testing"

	"github.com/nextcore/pulse/pkg/ui"
)

const adcMax = 1023

// frameAt builds a clean frame whose ratio metrics come out at the
// given normalized position. firm selects a pressure-plate pair that
// passes (or fails) the resistance gate.
func frameAt(nx, ny float64, firm bool) Frame {
	xMid := uint16(nx * adcMax)
	yMid := uint16(ny * adcMax)

	f := Frame{
		Touched: true,
		X:       Sense{XP: adcMax, XN: 0, YP: xMid, YN: xMid},
		Y:       Sense{YN: adcMax, YP: 0, XP: yMid, XN: yMid},
	}
	if firm {
		// z2/z1 == 1 yields a resistance estimate of zero.
		f.Pressure = Sense{YP: adcMax, XN: 0, XP: 512, YN: 512}
	} else {
		// Tiny z1 against large z2 blows the estimate past any
		// threshold: a grazing or noise contact.
		f.Pressure = Sense{YP: adcMax, XN: 0, XP: 16, YN: 1008}
	}
	return f
}

func untouched() Frame {
	return Frame{Touched: false}
}

func collect(m *Manager) *[]ui.TouchEvent {
	events := &[]ui.TouchEvent{}
	m.OnEvent = func(ev ui.TouchEvent) {
		*events = append(*events, ev)
	}
	return events
}

func TestUntouchedFramesEmitNothing(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	for i := 0; i < 10; i++ {
		m.Feed(untouched())
	}
	if m.State() != NoTouch {
		t.Errorf("State() = %v, want NoTouch", m.State())
	}
	if len(*events) != 0 {
		t.Errorf("emitted %d events, want 0", len(*events))
	}
}

func TestStableGestureLifecycle(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	// Stable firm contact: Start must fire exactly once, on the frame
	// that fills the settling window.
	for i := 0; i < SettleWindow; i++ {
		m.Feed(frameAt(0.5, 0.5, true))
	}
	if len(*events) != 1 || (*events)[0].Phase != ui.TouchStart {
		t.Fatalf("after settling window: events = %v, want single Start", *events)
	}
	if m.State() != TouchDetected {
		t.Fatalf("State() = %v, want TouchDetected", m.State())
	}

	// x = 240*(0.5-0.07)/0.87, y = 320*(0.96-0.5)/0.92, computed in
	// truncating 52.12 fixed point.
	start := (*events)[0].Point
	if start.X != 118 || start.Y != 160 {
		t.Errorf("Start point = %v, want {118 160}", start)
	}

	// Continued valid frames each emit Move.
	m.Feed(frameAt(0.5, 0.5, true))
	m.Feed(frameAt(0.5, 0.5, true))
	if len(*events) != 3 {
		t.Fatalf("after two more frames: %d events, want 3", len(*events))
	}
	for _, ev := range (*events)[1:] {
		if ev.Phase != ui.TouchMove {
			t.Errorf("continuation event = %v, want Move", ev.Phase)
		}
	}

	// First no-contact frame emits exactly one End at the last point.
	m.Feed(untouched())
	if len(*events) != 4 {
		t.Fatalf("after release: %d events, want 4", len(*events))
	}
	end := (*events)[3]
	if end.Phase != ui.TouchEnd {
		t.Errorf("release event = %v, want End", end.Phase)
	}
	if end.Point != start {
		t.Errorf("End point = %v, want last known point %v", end.Point, start)
	}
	if m.State() != NoTouch {
		t.Errorf("State() after End = %v, want NoTouch", m.State())
	}

	// No further events after the gesture is over.
	m.Feed(untouched())
	if len(*events) != 4 {
		t.Errorf("idle frame emitted an event: %d total, want 4", len(*events))
	}
}

func TestUnstablePointNeverStarts(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	// Contact bouncing across the panel: the settling spread never
	// closes, so no Start may fire.
	for i := 0; i < 12; i++ {
		if i%2 == 0 {
			m.Feed(frameAt(0.2, 0.2, true))
		} else {
			m.Feed(frameAt(0.8, 0.8, true))
		}
	}
	if len(*events) != 0 {
		t.Errorf("unstable contact emitted %d events, want 0", len(*events))
	}
	if m.State() != NoTouch {
		t.Errorf("State() = %v, want NoTouch", m.State())
	}
}

func TestSoftPressureIsSuppressed(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	for i := 0; i < 8; i++ {
		m.Feed(frameAt(0.5, 0.5, false))
	}
	if len(*events) != 0 {
		t.Errorf("soft contact emitted %d events, want 0", len(*events))
	}
}

func TestSoftPressureEndsGesture(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	for i := 0; i < SettleWindow; i++ {
		m.Feed(frameAt(0.5, 0.5, true))
	}
	// Contact stays but pressure collapses: gesture must end.
	m.Feed(frameAt(0.5, 0.5, false))

	if len(*events) != 2 {
		t.Fatalf("%d events, want Start then End", len(*events))
	}
	if (*events)[1].Phase != ui.TouchEnd {
		t.Errorf("second event = %v, want End", (*events)[1].Phase)
	}
	if m.State() != NoTouch {
		t.Errorf("State() = %v, want NoTouch", m.State())
	}
}

func TestFilterResetBetweenGestures(t *testing.T) {
	m := NewManager(DefaultCalibration())
	events := collect(m)

	for i := 0; i < SettleWindow; i++ {
		m.Feed(frameAt(0.2, 0.2, true))
	}
	m.Feed(untouched())
	*events = nil

	// A second gesture elsewhere must settle afresh: the first frames
	// after reset cannot reuse the previous window.
	m.Feed(frameAt(0.8, 0.8, true))
	if len(*events) != 0 {
		t.Fatalf("Start fired before the new window settled")
	}
	for i := 1; i < SettleWindow; i++ {
		m.Feed(frameAt(0.8, 0.8, true))
	}
	if len(*events) != 1 || (*events)[0].Phase != ui.TouchStart {
		t.Fatalf("second gesture events = %v, want single Start", *events)
	}
}
