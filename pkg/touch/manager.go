package touch

import (
	"golang.org/x/image/math/fixed"

	"github.com/nextcore/pulse/pkg/ui"
)

// State is the classifier state. Transitions happen only on frame
// feed; there are no timers beyond the smoothing filters' own memory.
type State int

const (
	// NoTouch means no settled contact is in progress.
	NoTouch State = iota
	// TouchDetected means a gesture is in progress: a Start event has
	// been emitted and Move events follow while contact stays valid.
	TouchDetected
)

// Manager classifies raw touch frames into pointer events.
//
// OnEvent is invoked synchronously from Feed with each classified
// event; the manager does no queuing of its own. All methods must be
// called from the single dispatcher context.
type Manager struct {
	// OnEvent receives classified pointer events. Nil disables output.
	OnEvent func(ui.TouchEvent)

	cal        Calibration
	xLow       fixed.Int52_12
	xSpan      fixed.Int52_12
	yHigh      fixed.Int52_12
	ySpan      fixed.Int52_12
	rThreshold fixed.Int52_12

	filterX Filter
	filterY Filter

	state State
	last  ui.Point
}

// NewManager returns a classifier for the given panel calibration.
func NewManager(cal Calibration) *Manager {
	return &Manager{
		cal:        cal,
		xLow:       fixFromFloat(cal.XLow),
		xSpan:      fixFromFloat(cal.XHigh - cal.XLow),
		yHigh:      fixFromFloat(cal.YHigh),
		ySpan:      fixFromFloat(cal.YHigh - cal.YLow),
		rThreshold: fixFromFloat(cal.RTouchThreshold),
	}
}

// State returns the current classifier state.
func (m *Manager) State() State {
	return m.state
}

// Feed runs one frame through the classification pipeline.
func (m *Manager) Feed(f Frame) {
	pressureValid := false

	if f.Touched {
		metrics := CalculateMetrics(f)
		// Firm-enough contact gate: high resistance estimates are
		// noise artifacts, not deliberate presses.
		pressureValid = metrics.R < m.rThreshold
		if pressureValid {
			m.filterX.Feed(m.mapX(metrics.X))
			m.filterY.Feed(m.mapY(metrics.Y))
			m.last = ui.Point{X: m.filterX.Value(), Y: m.filterY.Value()}
		}
	} else {
		// No contact: clear the averages so a stale point never leaks
		// into the next gesture.
		m.filterX.Reset()
		m.filterY.Reset()
	}

	switch m.state {
	case NoTouch:
		if f.Touched && pressureValid && m.pointStable() {
			m.state = TouchDetected
			m.emit(ui.TouchStart)
		}

	case TouchDetected:
		if f.Touched && pressureValid {
			m.emit(ui.TouchMove)
		} else {
			m.state = NoTouch
			m.emit(ui.TouchEnd)
		}

	default:
		m.state = NoTouch
	}
}

func (m *Manager) pointStable() bool {
	return m.filterX.Stable() && m.filterY.Stable()
}

func (m *Manager) emit(phase ui.TouchPhase) {
	if m.OnEvent != nil {
		m.OnEvent(ui.TouchEvent{Phase: phase, Point: m.last})
	}
}

// mapX converts a normalized X metric into a device pixel column.
func (m *Manager) mapX(norm fixed.Int52_12) int {
	px := fixRound(fixFromInt(m.cal.WidthPixels).Mul(fixDiv(norm-m.xLow, m.xSpan)))
	return clamp(px, 0, m.cal.WidthPixels-1)
}

// mapY converts a normalized Y metric into a device pixel row. The
// panel's Y axis is inverted relative to screen rows.
func (m *Manager) mapY(norm fixed.Int52_12) int {
	px := fixRound(fixFromInt(m.cal.HeightPixels).Mul(fixDiv(m.yHigh-norm, m.ySpan)))
	return clamp(px, 0, m.cal.HeightPixels-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
