package dispatch

import (
	"sync/atomic"
	"time"

	"github.com/nextcore/pulse/pkg/coproc"
	"github.com/nextcore/pulse/pkg/fault"
	"github.com/nextcore/pulse/pkg/hal"
	"github.com/nextcore/pulse/pkg/message"
	"github.com/nextcore/pulse/pkg/mqueue"
	"github.com/nextcore/pulse/pkg/touch"
	"github.com/nextcore/pulse/pkg/ui"
)

// statsInterval is the number of RTC ticks between cycle timing
// reports.
const statsInterval = 60

// Config wires the dispatcher's collaborators. Registry, Region,
// Controls, Display, Focus and Root are required; the rest default to
// no-ops.
type Config struct {
	Registry *message.Registry
	Region   *mqueue.SharedRegion
	Controls hal.Controls
	Display  hal.Display
	Focus    ui.FocusManager
	Root     ui.Widget

	// Touch is the classifier fed from Controls.TouchFrame. Its event
	// callback is taken over by the dispatcher. Optional: without it
	// EvtTouch is ignored.
	Touch *touch.Manager
	// Painter repaints the widget tree on frame sync. Optional.
	Painter ui.Painter
	// Notifier gates cross-core notifications around the run state.
	// Optional.
	Notifier coproc.Notifier
	// OnRTCTick runs once per second before the tick message is
	// dispatched; storage-media presence polling hangs off it.
	OnRTCTick func()
	// OnStats receives the cycle timing summary every statsInterval
	// seconds. Optional.
	OnStats func(avg, max time.Duration)
}

// Dispatcher is the top-level cooperative run loop. One instance runs
// on the application core; all widget-tree, focus and classifier state
// is mutated only from its goroutine.
//
// Each cycle blocks on the event mask, then drains pending sources in
// fixed priority order: application queue, local queue, RTC tick, key
// switches, then (only while the display is awake) frame sync, encoder
// and touch. Stop is cooperative and terminal: the in-flight cycle
// completes, and a stopped dispatcher never runs again.
type Dispatcher struct {
	cfg   Config
	flags *Flags

	stopped atomic.Bool

	displaySleep bool
	encoderLast  uint32
	capture      ui.Capture
	tickCount    int
	timing       *CycleTimingBuffer
}

// New validates the configuration and returns a dispatcher. Missing
// required collaborators are programming errors and halt immediately.
func New(cfg Config) *Dispatcher {
	switch {
	case cfg.Registry == nil:
		fault.Fatal("DispNoReg")
	case cfg.Region == nil:
		fault.Fatal("DispNoQueues")
	case cfg.Controls == nil:
		fault.Fatal("DispNoCtl")
	case cfg.Display == nil:
		fault.Fatal("DispNoDisp")
	case cfg.Focus == nil:
		fault.Fatal("DispNoFocus")
	case cfg.Root == nil:
		fault.Fatal("DispNoRoot")
	}

	d := &Dispatcher{
		cfg:         cfg,
		flags:       NewFlags(),
		encoderLast: cfg.Controls.EncoderPosition(),
		timing:      NewCycleTimingBuffer(statsInterval),
	}
	if cfg.Touch != nil {
		cfg.Touch.OnEvent = d.onTouchEvent
	}
	return d
}

// Flags returns the dispatcher's wait condition for producers and the
// interrupt bridge to signal.
func (d *Dispatcher) Flags() *Flags {
	return d.flags
}

// Run executes wait/dispatch cycles until RequestStop. Cross-core
// notifications are enabled only while the loop is consuming. The
// stopped state is terminal: after RequestStop, even one issued before
// Run, the loop never starts or resumes.
func (d *Dispatcher) Run() {
	if d.stopped.Load() {
		return
	}
	if d.cfg.Notifier != nil {
		d.cfg.Notifier.Enable()
	}

	for !d.stopped.Load() {
		events := d.flags.Wait()
		start := time.Now()
		d.dispatch(events)
		d.timing.Add(time.Since(start))
	}

	if d.cfg.Notifier != nil {
		d.cfg.Notifier.Disable()
	}
}

// RequestStop asks the loop to exit after its current cycle. Safe from
// any goroutine and from message handlers. One-way: there is no
// restart.
func (d *Dispatcher) RequestStop() {
	d.stopped.Store(true)
	d.flags.Signal(evtWake)
}

// DisplaySleep reports whether the display sleep policy is active.
func (d *Dispatcher) DisplaySleep() bool {
	return d.displaySleep
}

// SetDisplaySleep enters or leaves the display low-power state,
// driving panel power and backlight. While asleep, frame sync, encoder
// and touch sources are suppressed and any switch press only wakes the
// display. Must be called from the dispatcher context (a message
// handler or the loop itself).
func (d *Dispatcher) SetDisplaySleep(sleep bool) {
	if sleep {
		d.cfg.Display.Backlight(false)
		d.cfg.Display.Sleep()
	} else {
		d.cfg.Display.Wake()
		d.cfg.Display.Backlight(true)
	}
	d.displaySleep = sleep
}

// dispatch drains pending sources in fixed priority order. Each source
// is guarded by its own bit so a cycle only touches what was signaled.
func (d *Dispatcher) dispatch(events EventMask) {
	if events&EvtApplication != 0 {
		d.cfg.Region.Application.Drain(d.cfg.Registry.Dispatch)
	}

	if events&EvtLocal != 0 {
		d.cfg.Region.Local.Drain(d.cfg.Registry.Dispatch)
	}

	if events&EvtRTCTick != 0 {
		d.handleRTCTick()
	}

	if events&EvtSwitches != 0 {
		d.handleSwitches()
	}

	// Power policy: while the display sleeps, redraw and pointer input
	// would produce work that is discarded anyway, so those sources
	// are suppressed rather than serviced.
	if !d.displaySleep {
		if events&EvtFrameSync != 0 {
			d.handleFrameSync()
		}

		if events&EvtEncoder != 0 {
			d.handleEncoder()
		}

		if events&EvtTouch != 0 && d.cfg.Touch != nil {
			d.cfg.Touch.Feed(d.cfg.Controls.TouchFrame())
		}
	}
}

func (d *Dispatcher) handleRTCTick() {
	if d.cfg.OnRTCTick != nil {
		d.cfg.OnRTCTick()
	}
	d.cfg.Registry.Dispatch(message.RTCTickSecond{})

	d.tickCount++
	if d.cfg.OnStats != nil && d.tickCount%statsInterval == 0 {
		avg, max := d.timing.Stats()
		d.cfg.OnStats(avg, max)
	}
}

func (d *Dispatcher) handleFrameSync() {
	d.cfg.Registry.Dispatch(message.DisplayFrameSync{})
	if d.cfg.Painter != nil {
		d.cfg.Painter.PaintWidgetTree(d.cfg.Root)
	}
}

func (d *Dispatcher) handleSwitches() {
	state := d.cfg.Controls.SwitchesState()

	if d.displaySleep {
		// Swallow the press; it only wakes the display.
		if state.Any() {
			d.SetDisplaySleep(false)
		}
		return
	}

	for i := 0; i < hal.SwitchCount; i++ {
		if !state.Test(i) {
			continue
		}
		ev := ui.KeyEvent(i)
		if !ui.BubbleKey(d.cfg.Focus.FocusWidget(), ev) {
			d.cfg.Focus.Update(d.cfg.Root, ev)
		}
	}
}

func (d *Dispatcher) handleEncoder() {
	// Wrap-safe: unsigned subtraction reinterpreted as signed turns a
	// counter wrap into the small step it really was.
	now := d.cfg.Controls.EncoderPosition()
	delta := int32(now - d.encoderLast)
	d.encoderLast = now
	ui.BubbleEncoder(d.cfg.Focus.FocusWidget(), ui.EncoderEvent(delta))
}

func (d *Dispatcher) onTouchEvent(ev ui.TouchEvent) {
	d.capture.Deliver(d.cfg.Root, ev)
}
