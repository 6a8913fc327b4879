package ui

// HitTest finds the widget that consumes a touch event, descending
// children before testing the node's own rectangle. Visiting children
// first inverts paint order, so the most recently drawn (visually
// topmost) widget is matched first. Hidden subtrees are skipped
// entirely. Returns nil when no visible widget contains the point and
// consumes the event.
func HitTest(w Widget, ev TouchEvent) Widget {
	if w == nil || w.Hidden() {
		return nil
	}
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := HitTest(children[i], ev); hit != nil {
			return hit
		}
	}
	if w.ScreenRect().Contains(ev.Point) && w.OnTouch(ev) {
		return w
	}
	return nil
}

// Capture binds all events of one touch gesture to the widget that
// accepted its Start point. A Start event re-captures from scratch;
// Move and End events go directly to the captured widget without
// re-hit-testing, and a gesture with no capture is dropped. No capture
// carries across gestures.
type Capture struct {
	widget Widget
}

// Deliver routes a classified touch event into the tree rooted at
// root, maintaining the gesture capture.
func (c *Capture) Deliver(root Widget, ev TouchEvent) {
	if ev.Phase == TouchStart {
		c.widget = HitTest(root, ev)
		return
	}
	if c.widget != nil {
		c.widget.OnTouch(ev)
	}
}

// Widget returns the currently captured widget, or nil.
func (c *Capture) Widget() Widget {
	return c.widget
}
