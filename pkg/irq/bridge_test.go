package irq

import (
	"testing"

	"github.com/nextcore/pulse/pkg/coproc"
	"github.com/nextcore/pulse/pkg/dispatch"
	"github.com/nextcore/pulse/pkg/message"
	"github.com/nextcore/pulse/pkg/mqueue"
)

type fixedChecker struct {
	mask  dispatch.EventMask
	calls int
}

func (c *fixedChecker) CheckISR() dispatch.EventMask {
	c.calls++
	return c.mask
}

func TestOnNotifyFansOutAndPostsUnion(t *testing.T) {
	flags := dispatch.NewFlags()
	notifier := &coproc.MemNotifier{}
	a := &fixedChecker{mask: dispatch.EvtApplication}
	b := &fixedChecker{mask: 0}
	c := &fixedChecker{mask: dispatch.EvtTouch}

	bridge := NewBridge(flags, notifier, a, b, c)
	bridge.OnNotify()

	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Errorf("checker calls = %d/%d/%d, want one sweep each", a.calls, b.calls, c.calls)
	}
	if got := flags.Pending(); got != dispatch.EvtApplication|dispatch.EvtTouch {
		t.Errorf("Pending() = %b, want union of checker masks", got)
	}
	if notifier.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", notifier.Clears())
	}
}

func TestOnNotifyWithNothingPendingPostsNothing(t *testing.T) {
	flags := dispatch.NewFlags()
	notifier := &coproc.MemNotifier{}
	bridge := NewBridge(flags, notifier, &fixedChecker{mask: 0})

	bridge.OnNotify()

	if got := flags.Pending(); got != 0 {
		t.Errorf("Pending() = %b, want 0", got)
	}
	// The notification flag is still acknowledged even when no work
	// was found; otherwise the line stays asserted.
	if notifier.Clears() != 1 {
		t.Errorf("Clears() = %d, want 1", notifier.Clears())
	}
}

func TestQueueCheckerTracksOccupancy(t *testing.T) {
	var q mqueue.Queue
	q.Init(4)
	checker := NewQueueChecker(&q, dispatch.EvtLocal)

	if got := checker.CheckISR(); got != 0 {
		t.Errorf("empty queue CheckISR() = %b, want 0", got)
	}

	q.Push(message.Shutdown{})
	if got := checker.CheckISR(); got != dispatch.EvtLocal {
		t.Errorf("occupied queue CheckISR() = %b, want EvtLocal", got)
	}

	q.Pop()
	if got := checker.CheckISR(); got != 0 {
		t.Errorf("drained queue CheckISR() = %b, want 0", got)
	}
}

func TestBridgeOverSharedRegion(t *testing.T) {
	flags := dispatch.NewFlags()
	region := &mqueue.SharedRegion{}
	mqueue.InitSharedRegion(region)

	bridge := NewBridge(flags, nil,
		NewQueueChecker(&region.Application, dispatch.EvtApplication),
		NewQueueChecker(&region.Local, dispatch.EvtLocal),
	)

	region.Application.Push(message.RTCTickSecond{})
	bridge.OnNotify()

	if got := flags.Pending(); got != dispatch.EvtApplication {
		t.Errorf("Pending() = %b, want only the occupied queue's bit", got)
	}
}
