// Package dispatch implements the top-level event run loop: a
// cooperative wait on an event mask, a fixed-priority drain of the
// pending sources, and the display-sleep power policy that suspends
// non-essential input while the panel is dark.
package dispatch

import "sync"

// EventMask is a bitset of pending input/message sources. The
// dispatcher wakes when any bit is set.
type EventMask uint32

// Event mask bits, one per source. Drain priority is the declaration
// order below, independent of arrival order.
const (
	// EvtApplication signals coprocessor traffic in the application
	// queue.
	EvtApplication EventMask = 1 << iota
	// EvtLocal signals same-core traffic in the local queue.
	EvtLocal
	// EvtRTCTick fires once per second from the real-time clock.
	EvtRTCTick
	// EvtSwitches signals key switch line activity.
	EvtSwitches
	// EvtFrameSync fires on the display frame sync interval.
	EvtFrameSync
	// EvtEncoder signals rotary encoder movement.
	EvtEncoder
	// EvtTouch signals a fresh touch-panel sampling frame.
	EvtTouch

	// evtWake forces a wait to return with no visible source bits,
	// used by RequestStop so the loop observes the stop flag.
	evtWake
)

// Flags is the dispatcher's wait condition: an event mask that any
// context may signal and a single consumer blocks on. The Go analog of
// an RTOS event-flag wait: Signal never blocks, while Wait parks the
// consumer until at least one bit is pending, then returns and clears
// the accumulated mask atomically.
type Flags struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending EventMask
}

// NewFlags returns an empty flag set.
func NewFlags() *Flags {
	f := &Flags{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Signal posts event bits and wakes the waiter. Safe from any
// goroutine, including the interrupt bridge. A zero mask is a no-op.
func (f *Flags) Signal(mask EventMask) {
	if mask == 0 {
		return
	}
	f.mu.Lock()
	f.pending |= mask
	f.mu.Unlock()
	f.cond.Signal()
}

// Wait blocks until at least one bit is pending, then returns the
// union of everything signaled since the previous wait and clears it.
func (f *Flags) Wait() EventMask {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.pending == 0 {
		f.cond.Wait()
	}
	mask := f.pending
	f.pending = 0
	return mask
}

// Pending returns the currently accumulated mask without consuming it.
func (f *Flags) Pending() EventMask {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}
