// Package focus provides the default focus manager consumed by the
// event dispatcher: a query for the current focus widget and a linear
// navigation update applied when key bubbling leaves an event
// unconsumed.
package focus

import "github.com/nextcore/pulse/pkg/ui"

// Focusable marks widgets that can hold focus. Widgets that do not
// implement it (or report false) are skipped during traversal.
type Focusable interface {
	CanFocus() bool
}

// Manager tracks the currently focused widget and implements the
// consumed ui.FocusManager contract. Mutated only from the single
// dispatcher context; no locking needed.
type Manager struct {
	current ui.Widget

	// OnFocusChange, if set, observes focus transitions.
	OnFocusChange func(from, to ui.Widget)
}

// NewManager returns a manager with no focus.
func NewManager() *Manager {
	return &Manager{}
}

// FocusWidget returns the currently focused widget, or nil.
func (m *Manager) FocusWidget() ui.Widget {
	return m.current
}

// SetFocus moves focus to w directly (e.g. when a screen is shown).
// Passing nil clears focus.
func (m *Manager) SetFocus(w ui.Widget) {
	if w == m.current {
		return
	}
	prev := m.current
	m.current = w
	if m.OnFocusChange != nil {
		m.OnFocusChange(prev, w)
	}
}

// Update applies default linear navigation for an unconsumed key
// event: Down/Right move to the next focusable widget in tree order,
// Up/Left to the previous, both wrapping around. Other keys leave
// focus unchanged. With no focusable widgets the call is a no-op.
func (m *Manager) Update(root ui.Widget, ev ui.KeyEvent) {
	delta := linearDelta(ev)
	if delta == 0 {
		return
	}

	candidates := collectFocusable(root, nil)
	count := len(candidates)
	if count == 0 {
		return
	}

	currentIndex := -1
	for i, w := range candidates {
		if w == m.current {
			currentIndex = i
			break
		}
	}
	if currentIndex < 0 {
		// Nothing focused (or focus left the tree): take the first
		// candidate in traversal direction.
		if delta > 0 {
			m.SetFocus(candidates[0])
		} else {
			m.SetFocus(candidates[count-1])
		}
		return
	}

	m.SetFocus(candidates[wrapIndex(currentIndex+delta, count)])
}

// linearDelta maps a navigation key to a traversal step.
func linearDelta(ev ui.KeyEvent) int {
	switch ev {
	case ui.KeyUp, ui.KeyLeft:
		return -1
	case ui.KeyDown, ui.KeyRight:
		return 1
	default:
		return 0
	}
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// collectFocusable gathers focusable widgets depth-first in tree
// order, skipping hidden subtrees.
func collectFocusable(w ui.Widget, out []ui.Widget) []ui.Widget {
	if w == nil || w.Hidden() {
		return out
	}
	if f, ok := w.(Focusable); ok && f.CanFocus() {
		out = append(out, w)
	}
	for _, child := range w.Children() {
		out = collectFocusable(child, out)
	}
	return out
}
