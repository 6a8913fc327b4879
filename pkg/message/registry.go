package message

import (
	"sync"

	"github.com/nextcore/pulse/pkg/fault"
)

// Handler receives a message synchronously during queue drain. The
// message is only valid for the duration of the call.
type Handler func(Message)

// Registry maps each message identifier to at most one handler.
//
// Registering over an occupied slot is a fatal programming error: two
// components claiming the same message type is always an integration
// bug, never a valid override, and is surfaced immediately rather than
// masked by a silent overwrite.
type Registry struct {
	mu    sync.Mutex
	slots [MaxID]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry is the process-wide registry that both cores' queues
// drain into. Initialized once here; reachable via Default.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register binds a handler to an identifier. It halts with tag
// MsgDblReg if the slot is already occupied.
func (r *Registry) Register(id ID, h Handler) {
	if id >= MaxID {
		fault.Fatalf("MsgBadID", "register id %d out of range", id)
	}
	if h == nil {
		fault.Fatalf("MsgNilFn", "register id %d with nil handler", id)
	}
	r.mu.Lock()
	occupied := r.slots[id] != nil
	if !occupied {
		r.slots[id] = h
	}
	r.mu.Unlock()
	if occupied {
		fault.Fatalf("MsgDblReg", "message id %d already registered", id)
	}
}

// Unregister clears the slot for an identifier. Idempotent.
func (r *Registry) Unregister(id ID) {
	if id >= MaxID {
		return
	}
	r.mu.Lock()
	r.slots[id] = nil
	r.mu.Unlock()
}

// Dispatch invokes the registered handler for the message, if any.
// An out-of-range identifier or an empty slot is a silent no-op:
// producers and consumers evolve independently, so an unhandled
// message type is not an error.
func (r *Registry) Dispatch(msg Message) {
	if msg == nil {
		return
	}
	id := msg.MessageID()
	if id >= MaxID {
		return
	}
	r.mu.Lock()
	h := r.slots[id]
	r.mu.Unlock()
	if h != nil {
		h(msg)
	}
}
