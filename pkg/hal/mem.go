package hal

import (
	"sync"

	"github.com/nextcore/pulse/pkg/touch"
)

// MemControls is an in-memory Controls implementation for host-side
// simulation and tests. Producers set state from any goroutine; the
// dispatcher samples it from its own.
type MemControls struct {
	mu       sync.Mutex
	switches Switches
	encoder  uint32
	frame    touch.Frame
}

// NewMemControls returns controls with all-idle state.
func NewMemControls() *MemControls {
	return &MemControls{}
}

func (c *MemControls) SwitchesState() Switches {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switches
}

func (c *MemControls) EncoderPosition() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.encoder
}

func (c *MemControls) TouchFrame() touch.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// SetSwitches latches the switch line state.
func (c *MemControls) SetSwitches(s Switches) {
	c.mu.Lock()
	c.switches = s
	c.mu.Unlock()
}

// SetEncoder sets the absolute encoder counter.
func (c *MemControls) SetEncoder(pos uint32) {
	c.mu.Lock()
	c.encoder = pos
	c.mu.Unlock()
}

// SetTouchFrame latches the most recent touch frame.
func (c *MemControls) SetTouchFrame(f touch.Frame) {
	c.mu.Lock()
	c.frame = f
	c.mu.Unlock()
}

// MemDisplay is an in-memory Display that records power state.
type MemDisplay struct {
	mu        sync.Mutex
	asleep    bool
	backlight bool
}

// NewMemDisplay returns an awake display with backlight on.
func NewMemDisplay() *MemDisplay {
	return &MemDisplay{backlight: true}
}

func (d *MemDisplay) Sleep() {
	d.mu.Lock()
	d.asleep = true
	d.mu.Unlock()
}

func (d *MemDisplay) Wake() {
	d.mu.Lock()
	d.asleep = false
	d.mu.Unlock()
}

func (d *MemDisplay) Backlight(on bool) {
	d.mu.Lock()
	d.backlight = on
	d.mu.Unlock()
}

// Asleep reports whether the panel is in its low-power state.
func (d *MemDisplay) Asleep() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.asleep
}

// BacklightOn reports the backlight state.
func (d *MemDisplay) BacklightOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.backlight
}
