package message

// Registration is a scoped handler binding: creating it registers the
// handler, closing it unregisters unconditionally. Components hold one
// per consumed message type for their own lifetime, releasing it on
// every exit path (typically via defer), so a component can never leak
// a registration past its scope.
type Registration struct {
	registry *Registry
	id       ID
	closed   bool
}

// NewRegistration registers h for id on the default registry and
// returns the owning handle.
func NewRegistration(id ID, h Handler) *Registration {
	return NewRegistrationOn(Default(), id, h)
}

// NewRegistrationOn registers h for id on a specific registry.
func NewRegistrationOn(r *Registry, id ID, h Handler) *Registration {
	r.Register(id, h)
	return &Registration{registry: r, id: id}
}

// Close unregisters the handler. Safe to call more than once.
func (reg *Registration) Close() {
	if reg == nil || reg.closed {
		return
	}
	reg.closed = true
	reg.registry.Unregister(reg.id)
}
