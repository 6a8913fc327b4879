// Package irq contains the minimal interrupt-context code that turns
// the cross-core notification signal into dispatcher event bits.
//
// The bridge runs a fixed, small set of checkers under a brief
// critical section, accumulates their event bits, posts them to the
// dispatcher's wait condition, and clears the hardware notification
// flag. It is O(1)-bounded and allocation-free, and it never invokes
// user handlers; classification and delivery happen later, in the
// dispatcher's own context.
package irq

import (
	"sync"

	"github.com/nextcore/pulse/pkg/coproc"
	"github.com/nextcore/pulse/pkg/dispatch"
	"github.com/nextcore/pulse/pkg/mqueue"
)

// Checker inspects newly arrived data from interrupt context and
// reports the event bits to post. Implementations must be bounded and
// must not allocate or block.
type Checker interface {
	CheckISR() dispatch.EventMask
}

// Bridge fans the cross-core notification out to its checkers.
type Bridge struct {
	// cs stands in for the scheduler's critical section: held only for
	// the duration of the checker sweep.
	cs       sync.Mutex
	flags    *dispatch.Flags
	notifier coproc.Notifier
	checkers []Checker
}

// NewBridge builds a bridge over a fixed checker set. The set cannot
// change after construction; interrupt-context work stays bounded by
// its length.
func NewBridge(flags *dispatch.Flags, notifier coproc.Notifier, checkers ...Checker) *Bridge {
	return &Bridge{
		flags:    flags,
		notifier: notifier,
		checkers: checkers,
	}
}

// OnNotify services one cross-core notification. Called from the
// interrupt handler on receipt of the signal.
func (b *Bridge) OnNotify() {
	var mask dispatch.EventMask

	b.cs.Lock()
	for _, c := range b.checkers {
		mask |= c.CheckISR()
	}
	b.cs.Unlock()

	b.flags.Signal(mask)
	if b.notifier != nil {
		b.notifier.Clear()
	}
}

// QueueChecker posts a fixed event bit while a queue holds messages.
type QueueChecker struct {
	queue *mqueue.Queue
	mask  dispatch.EventMask
}

// NewQueueChecker returns a checker for q posting mask.
func NewQueueChecker(q *mqueue.Queue, mask dispatch.EventMask) *QueueChecker {
	return &QueueChecker{queue: q, mask: mask}
}

// CheckISR reports the queue's bit when traffic is pending.
func (c *QueueChecker) CheckISR() dispatch.EventMask {
	if c.queue.Len() > 0 {
		return c.mask
	}
	return 0
}
