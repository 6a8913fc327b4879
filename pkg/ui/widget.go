package ui

// Widget is the consumed contract for nodes of the widget tree. The
// tree owns its children root-to-leaf; Parent is a non-owning
// back-reference used only for upward traversal and must never create
// an ownership cycle.
type Widget interface {
	// OnTouch handles a pointer event. Returns true if consumed.
	OnTouch(TouchEvent) bool
	// OnKey handles a key event. Returns true if consumed.
	OnKey(KeyEvent) bool
	// OnEncoder handles an encoder delta. Returns true if consumed.
	OnEncoder(EncoderEvent) bool

	// Children returns the owned child widgets in paint order: the
	// last child is drawn last and is therefore visually topmost.
	Children() []Widget
	// Parent returns the non-owning parent reference, or nil at root.
	Parent() Widget
	// Hidden reports whether the widget and its whole subtree are
	// excluded from hit-testing.
	Hidden() bool
	// ScreenRect returns the widget's rectangle in device pixels.
	ScreenRect() Rect
}

// FocusManager is the consumed contract of the focus collaborator: a
// query for the current focus widget and the default navigation update
// applied when key bubbling leaves an event unconsumed.
type FocusManager interface {
	// FocusWidget returns the currently focused widget, or nil.
	FocusWidget() Widget
	// Update applies default focus navigation for an unconsumed key.
	Update(root Widget, ev KeyEvent)
}

// Painter is the consumed repaint entry point, invoked once per frame
// sync after interested handlers have been notified.
type Painter interface {
	PaintWidgetTree(root Widget)
}
