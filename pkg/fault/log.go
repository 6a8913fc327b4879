package fault

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs faults to stderr.
type LogHandler struct {
	// Verbose enables timestamps in the output.
	Verbose bool
}

// HandleFault logs a fault to stderr.
func (h *LogHandler) HandleFault(f *Fault) {
	if f == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[pulse fault] %s %s [%s]: %v\n",
			f.Timestamp.Format("15:04:05.000"), f.Op, f.Kind, f.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[pulse fault] %s: %v\n", f.Op, f.Err)
}
