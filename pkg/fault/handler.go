package fault

import (
	"sync/atomic"
	"time"
)

// Handler receives advisory faults reported by the event core.
type Handler interface {
	// HandleFault is called when an advisory fault occurs. It must not
	// block; the dispatcher reports faults from its single-threaded
	// cycle and from nowhere else.
	HandleFault(f *Fault)
}

// currentHandler holds the installed Handler. Stored atomically so the
// simulator can swap handlers while the dispatcher is running.
var currentHandler atomic.Value // stores Handler

func init() {
	SetHandler(&LogHandler{})
}

// SetHandler installs the process-wide fault handler. Passing nil
// restores the default stderr logger.
func SetHandler(h Handler) {
	if h == nil {
		h = &LogHandler{}
	}
	currentHandler.Store(&handlerBox{h})
}

// handlerBox keeps the stored concrete type stable for atomic.Value.
type handlerBox struct{ h Handler }

// Report delivers a fault to the installed handler.
func Report(f *Fault) {
	if f == nil {
		return
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now()
	}
	if box, ok := currentHandler.Load().(*handlerBox); ok && box.h != nil {
		box.h.HandleFault(f)
	}
}

// Reportf constructs and reports a fault in one call.
func Reportf(op string, kind Kind, err error) {
	Report(&Fault{Op: op, Kind: kind, Err: err, Timestamp: time.Now()})
}
