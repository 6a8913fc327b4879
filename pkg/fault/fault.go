// Package fault provides structured diagnostics for the pulse event core.
//
// Failures at this layer fall into two camps: programming errors, which
// halt immediately via [Fatal] with a short diagnostic tag, and advisory
// conditions (a rejected enqueue, an incompatible coprocessor image),
// which are reported through a [Handler] and otherwise absorbed as
// normal control flow.
package fault

import (
	"fmt"
	"time"
)

// Kind identifies the category of a fault.
type Kind int

const (
	// KindUnknown indicates a fault of unknown type.
	KindUnknown Kind = iota
	// KindQueue indicates a message queue fault (e.g. rejected enqueue).
	KindQueue
	// KindHandshake indicates a coprocessor version handshake failure.
	KindHandshake
)

func (k Kind) String() string {
	switch k {
	case KindQueue:
		return "queue"
	case KindHandshake:
		return "handshake"
	default:
		return "unknown"
	}
}

// Fault represents a structured advisory fault in the event core.
type Fault struct {
	// Op is the operation that failed (e.g. "dispatch.handleEncoder").
	Op string
	// Kind categorizes the fault.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the fault occurred.
	Timestamp time.Time
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s [%s]: %v", f.Op, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Fatal halts the system on a programming error. The tag is a short
// diagnostic identifier (e.g. "MsgDblReg") meant to survive even on
// targets where only a few characters of panic context are visible.
// Intentionally unrecoverable: these indicate integration bugs that
// must be fixed at build time.
func Fatal(tag string) {
	panic("pulse: " + tag)
}

// Fatalf is Fatal with formatted detail appended after the tag.
func Fatalf(tag, format string, args ...any) {
	panic("pulse: " + tag + ": " + fmt.Sprintf(format, args...))
}
