package mqueue

// Queue capacities per scope. The cross-core channel is the widest;
// the short-lived local scope the narrowest. Fixed at build time to
// match the shared-memory layout both cores compile against.
const (
	CoprocQueueCap      = 12
	ApplicationQueueCap = 11
	LocalQueueCap       = 8
)

// SharedRegion is the statically known shared-memory layout holding
// the three message queues:
//
//   - Coproc: messages from this core to the coprocessor,
//   - Application: coprocessor traffic drained by the dispatcher,
//   - Local: same-core messages with a shorter lifetime scope.
//
// Both cores agree on this layout; the queues are constructed in place
// by InitSharedRegion before either side enqueues or dequeues.
type SharedRegion struct {
	Coproc      Queue
	Application Queue
	Local       Queue
}

// InitSharedRegion constructs the region's queues in place. Must run
// exactly once at startup, before any producer or consumer runs.
func InitSharedRegion(r *SharedRegion) {
	r.Coproc.Init(CoprocQueueCap)
	r.Application.Init(ApplicationQueueCap)
	r.Local.Init(LocalQueueCap)
}
