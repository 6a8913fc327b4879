// Package touch converts raw four-wire resistive touch-panel samples
// into calibrated, debounced pointer events.
//
// Each sampling tick produces a [Frame] of ADC readings. Feeding frames
// into a [Manager] runs the classification pipeline: the four-wire
// ratio metrics, a pressure validity gate, per-axis smoothing filters
// with a settling criterion, and a two-state machine that emits
// Start/Move/End events through a single synchronous callback.
//
// The metric computation runs in 52.12 fixed point; the application
// core has no hardware floating point, and the ratio method needs only
// a few fractional bits of precision.
package touch

// Sense holds the four ADC readings of one measurement phase. Which
// lines are driven and which are sensed depends on the phase; the
// metric computation knows the role of each reading per axis.
type Sense struct {
	XP, XN, YP, YN uint16
}

// Frame is a snapshot of one touch-panel sampling tick: the three
// measurement phases plus the raw panel-contact flag. Frames are
// consumed once and never retained.
type Frame struct {
	X        Sense
	Y        Sense
	Pressure Sense
	Touched  bool
}
