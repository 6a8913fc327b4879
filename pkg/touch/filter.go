package touch

// Settling parameters. A point is treated as deliberate input only
// after SettleWindow consecutive valid samples whose peak-to-peak
// spread stays within SettleTolerancePx on both axes. Start-event
// latency is therefore bounded at SettleWindow sampling ticks.
const (
	SettleWindow      = 4
	SettleTolerancePx = 4
)

// Filter is a windowed moving average over device pixel coordinates
// for one axis. Reset on loss of contact so stale averages never leak
// into the next gesture.
type Filter struct {
	window [SettleWindow]int
	next   int
	count  int
	sum    int
}

// Feed adds one sample to the window.
func (f *Filter) Feed(v int) {
	if f.count == SettleWindow {
		f.sum -= f.window[f.next]
	} else {
		f.count++
	}
	f.window[f.next] = v
	f.sum += v
	f.next = (f.next + 1) % SettleWindow
}

// Value returns the current windowed average, or 0 before any sample.
func (f *Filter) Value() int {
	if f.count == 0 {
		return 0
	}
	return f.sum / f.count
}

// Stable reports whether the window is full and its peak-to-peak
// spread is within the settling tolerance.
func (f *Filter) Stable() bool {
	if f.count < SettleWindow {
		return false
	}
	lo, hi := f.window[0], f.window[0]
	for _, v := range f.window[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi-lo <= SettleTolerancePx
}

// Reset clears the window.
func (f *Filter) Reset() {
	*f = Filter{}
}
