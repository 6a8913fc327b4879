// Package mqueue provides the fixed-capacity, lock-protected message
// queues that carry typed messages between the two processor cores.
//
// A queue never exposes references into its storage beyond its own API:
// producers push, consumers pop or drain, and both sides go through a
// short-lived exclusive section. Push never blocks; when the ring is
// full the message is rejected and the producer is told so. Rejection
// is advisory at this layer; callers do not retry.
package mqueue

import (
	"sync"

	"github.com/nextcore/pulse/pkg/message"
)

// Queue is a bounded FIFO of messages shared between execution
// contexts. The zero value is unusable; construct with NewQueue or in
// place with Init.
type Queue struct {
	mu    sync.Mutex
	buf   []message.Message
	head  int
	count int
}

// NewQueue returns a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	q := &Queue{}
	q.Init(capacity)
	return q
}

// Init constructs the queue in place with the given capacity. Used at
// startup to build the shared-region queues before either side touches
// them. Capacity must be positive.
func (q *Queue) Init(capacity int) {
	if capacity <= 0 {
		panic("pulse: MsgQCap: queue capacity must be positive")
	}
	q.mu.Lock()
	q.buf = make([]message.Message, capacity)
	q.head = 0
	q.count = 0
	q.mu.Unlock()
}

// Push appends a message. Returns false if the queue is full; the
// message is dropped and the producer may treat the rejection as
// advisory.
func (q *Queue) Push(msg message.Message) bool {
	if msg == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.count)%len(q.buf)] = msg
	q.count++
	return true
}

// Pop removes and returns the oldest message, or nil if empty.
func (q *Queue) Pop() message.Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count == 0 {
		return nil
	}
	msg := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return msg
}

// Drain pops queued messages in FIFO order and hands each to fn. The
// visit count is latched at entry, so a drain is bounded by Cap even
// when fn (or a concurrent producer) enqueues during the drain; such
// messages wait for the next cycle.
func (q *Queue) Drain(fn func(message.Message)) {
	for limit := q.Len(); limit > 0; limit-- {
		msg := q.Pop()
		if msg == nil {
			return
		}
		fn(msg)
	}
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}
