// Package hal declares the hardware sampling interfaces the event
// core consumes. Target-specific code registers concrete drivers;
// core logic only ever talks to these interfaces, never to registers.
package hal

import (
	"math/bits"

	"github.com/nextcore/pulse/pkg/touch"
)

// SwitchCount is the number of hardware key switch lines.
const SwitchCount = 5

// Switches is the sampled state of the key switch lines, one bit per
// line in ui.KeyEvent order.
type Switches uint8

// Any reports whether any switch line is active.
func (s Switches) Any() bool {
	return s != 0
}

// Test reports whether switch line i is active.
func (s Switches) Test(i int) bool {
	if i < 0 || i >= SwitchCount {
		return false
	}
	return s&(1<<i) != 0
}

// Count returns the number of active switch lines.
func (s Switches) Count() int {
	return bits.OnesCount8(uint8(s))
}

// Controls samples the user input hardware. Implementations must be
// non-blocking: each call returns the latest latched state.
type Controls interface {
	// SwitchesState returns the currently active switch lines.
	SwitchesState() Switches
	// EncoderPosition returns the absolute rotary encoder counter.
	// The counter wraps; consumers must difference it with unsigned
	// arithmetic.
	EncoderPosition() uint32
	// TouchFrame returns the latest touch-panel sampling frame.
	TouchFrame() touch.Frame
}

// Display controls panel power and backlight for the sleep policy.
type Display interface {
	Sleep()
	Wake()
	Backlight(on bool)
}
