package ui

// BubbleKey walks upward from the given widget through its ancestors,
// offering the key event to each until one consumes it or the root is
// exhausted. Returns true if some widget consumed the event; a false
// return is the caller's signal to apply default focus navigation.
func BubbleKey(from Widget, ev KeyEvent) bool {
	target := from
	for target != nil && !target.OnKey(ev) {
		target = target.Parent()
	}
	return target != nil
}

// BubbleEncoder performs the same upward walk for an encoder delta.
// There is no fallback: a delta that no widget wants is dropped.
func BubbleEncoder(from Widget, ev EncoderEvent) {
	target := from
	for target != nil && !target.OnEncoder(ev) {
		target = target.Parent()
	}
}
