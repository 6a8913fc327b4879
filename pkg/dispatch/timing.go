package dispatch

import (
	"sync"
	"time"
)

// CycleTimingBuffer is a ring buffer of wait-to-dispatch cycle
// durations, sampled once per wake-up for the periodic stats log.
type CycleTimingBuffer struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	capacity int
	count    int
}

// NewCycleTimingBuffer creates a buffer with the given capacity.
func NewCycleTimingBuffer(capacity int) *CycleTimingBuffer {
	if capacity <= 0 {
		capacity = 60
	}
	return &CycleTimingBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records one cycle duration.
func (b *CycleTimingBuffer) Add(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = d
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Count returns the number of recorded samples.
func (b *CycleTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Stats returns the average and worst cycle duration over the window.
func (b *CycleTimingBuffer) Stats() (avg, max time.Duration) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, s := range b.samples[:b.count] {
		sum += s
		if s > max {
			max = s
		}
	}
	return sum / time.Duration(b.count), max
}
