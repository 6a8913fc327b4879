package ui

import "testing"

// testWidget is a scriptable tree node for delivery scenarios.
type testWidget struct {
	name     string
	rect     Rect
	hidden   bool
	parent   Widget
	children []*testWidget

	consumeTouch   bool
	consumeKey     bool
	consumeEncoder bool

	touches  []TouchEvent
	keys     []KeyEvent
	encoders []EncoderEvent
}

func (w *testWidget) OnTouch(ev TouchEvent) bool {
	w.touches = append(w.touches, ev)
	return w.consumeTouch
}

func (w *testWidget) OnKey(ev KeyEvent) bool {
	w.keys = append(w.keys, ev)
	return w.consumeKey
}

func (w *testWidget) OnEncoder(ev EncoderEvent) bool {
	w.encoders = append(w.encoders, ev)
	return w.consumeEncoder
}

func (w *testWidget) Children() []Widget {
	out := make([]Widget, len(w.children))
	for i, c := range w.children {
		out[i] = c
	}
	return out
}

func (w *testWidget) Parent() Widget   { return w.parent }
func (w *testWidget) Hidden() bool     { return w.hidden }
func (w *testWidget) ScreenRect() Rect { return w.rect }

func (w *testWidget) addChild(c *testWidget) *testWidget {
	c.parent = w
	w.children = append(w.children, c)
	return c
}

func at(x, y int) TouchEvent {
	return TouchEvent{Phase: TouchStart, Point: Point{X: x, Y: y}}
}

func TestHitTestTopmostSiblingWins(t *testing.T) {
	root := &testWidget{name: "root", rect: Rect{0, 0, 240, 320}}
	// Overlapping siblings: "top" is added last, so it paints last and
	// must be matched first.
	bottom := root.addChild(&testWidget{name: "bottom", rect: Rect{10, 10, 100, 100}, consumeTouch: true})
	top := root.addChild(&testWidget{name: "top", rect: Rect{50, 50, 100, 100}, consumeTouch: true})

	hit := HitTest(root, at(60, 60))
	if hit != top {
		t.Fatalf("HitTest over overlap = %v, want the later-drawn sibling", hit)
	}
	if len(bottom.touches) != 0 {
		t.Errorf("obscured sibling received %d touch events, want 0", len(bottom.touches))
	}
}

func TestHitTestSkipsHiddenSubtree(t *testing.T) {
	root := &testWidget{name: "root", rect: Rect{0, 0, 240, 320}}
	hiddenBranch := root.addChild(&testWidget{name: "hidden", rect: Rect{0, 0, 240, 320}, hidden: true})
	inner := hiddenBranch.addChild(&testWidget{name: "inner", rect: Rect{0, 0, 240, 320}, consumeTouch: true})
	visible := root.addChild(&testWidget{name: "visible", rect: Rect{0, 0, 50, 50}, consumeTouch: true})

	if hit := HitTest(root, at(20, 20)); hit != visible {
		t.Fatalf("HitTest = %v, want the visible sibling", hit)
	}
	if len(inner.touches) != 0 {
		t.Errorf("widget inside hidden subtree received %d events, want 0", len(inner.touches))
	}
}

func TestHitTestNonConsumingWidgetPassedOver(t *testing.T) {
	root := &testWidget{name: "root", rect: Rect{0, 0, 240, 320}, consumeTouch: true}
	decoration := root.addChild(&testWidget{name: "decoration", rect: Rect{0, 0, 240, 320}})

	if hit := HitTest(root, at(5, 5)); hit != root {
		t.Fatalf("HitTest = %v, want root after decoration declined", hit)
	}
	if len(decoration.touches) != 1 {
		t.Errorf("decoration offered %d events, want 1", len(decoration.touches))
	}
}

func TestCaptureGesture(t *testing.T) {
	root := &testWidget{name: "root", rect: Rect{0, 0, 240, 320}}
	button := root.addChild(&testWidget{name: "button", rect: Rect{0, 0, 100, 100}, consumeTouch: true})
	other := root.addChild(&testWidget{name: "other", rect: Rect{100, 0, 100, 100}, consumeTouch: true})

	var cap Capture
	cap.Deliver(root, TouchEvent{Phase: TouchStart, Point: Point{50, 50}})
	if cap.Widget() != button {
		t.Fatalf("captured %v, want button", cap.Widget())
	}

	// Move drifts over the sibling: still delivered to the capture.
	cap.Deliver(root, TouchEvent{Phase: TouchMove, Point: Point{150, 50}})
	cap.Deliver(root, TouchEvent{Phase: TouchEnd, Point: Point{150, 50}})

	if len(button.touches) != 3 {
		t.Fatalf("captured widget got %d events, want Start+Move+End", len(button.touches))
	}
	if len(other.touches) != 0 {
		t.Errorf("sibling got %d events during capture, want 0", len(other.touches))
	}

	// A new Start re-captures; nothing carries across gestures.
	cap.Deliver(root, TouchEvent{Phase: TouchStart, Point: Point{150, 50}})
	if cap.Widget() != other {
		t.Fatalf("second gesture captured %v, want other", cap.Widget())
	}
}

func TestCaptureMissesAreDropped(t *testing.T) {
	root := &testWidget{name: "root", rect: Rect{0, 0, 100, 100}}
	button := root.addChild(&testWidget{name: "button", rect: Rect{0, 0, 50, 50}, consumeTouch: true})

	var cap Capture
	cap.Deliver(root, TouchEvent{Phase: TouchStart, Point: Point{90, 90}})
	if cap.Widget() != nil {
		t.Fatalf("captured %v over empty space, want nil", cap.Widget())
	}

	// Move/End with no capture are no-ops.
	cap.Deliver(root, TouchEvent{Phase: TouchMove, Point: Point{10, 10}})
	cap.Deliver(root, TouchEvent{Phase: TouchEnd, Point: Point{10, 10}})
	if len(button.touches) != 0 {
		t.Errorf("uncaptured widget got %d events, want 0", len(button.touches))
	}
}

func TestBubbleKeyStopsAtConsumer(t *testing.T) {
	root := &testWidget{name: "root", consumeKey: true}
	mid := root.addChild(&testWidget{name: "mid", consumeKey: true})
	leaf := mid.addChild(&testWidget{name: "leaf"})

	if !BubbleKey(leaf, KeySelect) {
		t.Fatal("BubbleKey = false, want consumed")
	}
	if len(leaf.keys) != 1 || len(mid.keys) != 1 {
		t.Errorf("walk visited leaf=%d mid=%d times, want 1 and 1", len(leaf.keys), len(mid.keys))
	}
	if len(root.keys) != 0 {
		t.Errorf("event forwarded past consuming ancestor: root got %d", len(root.keys))
	}
}

func TestBubbleKeyUnconsumed(t *testing.T) {
	root := &testWidget{name: "root"}
	leaf := root.addChild(&testWidget{name: "leaf"})

	if BubbleKey(leaf, KeyUp) {
		t.Fatal("BubbleKey = true with no consumer, want false")
	}
	if BubbleKey(nil, KeyUp) {
		t.Fatal("BubbleKey from nil focus = true, want false")
	}
	if len(root.keys) != 1 {
		t.Errorf("root offered %d events, want 1", len(root.keys))
	}
}

func TestBubbleEncoder(t *testing.T) {
	root := &testWidget{name: "root", consumeEncoder: true}
	leaf := root.addChild(&testWidget{name: "leaf"})

	BubbleEncoder(leaf, EncoderEvent(2))
	if len(leaf.encoders) != 1 || len(root.encoders) != 1 {
		t.Errorf("walk visited leaf=%d root=%d times, want 1 and 1", len(leaf.encoders), len(root.encoders))
	}

	// Unwanted deltas are simply dropped.
	BubbleEncoder(nil, EncoderEvent(-1))
}
