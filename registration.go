package typedemit

import "sync/atomic"

// Registration represents an active listener registration. It is the
// identity handle for removal: Go functions are not comparable, so the
// bus tracks listeners by registration, not by function reference.
type Registration struct {
	id      string
	event   string
	handler Handler
	once    bool
	bus     *Bus

	cancelled atomic.Bool
	fired     atomic.Bool
}

// ID returns the unique registration identifier.
func (r *Registration) ID() string {
	return r.id
}

// Event returns the event identifier the listener is registered under.
func (r *Registration) Event() string {
	return r.event
}

// IsActive returns true if the registration has not been removed.
func (r *Registration) IsActive() bool {
	return !r.cancelled.Load()
}

// Off removes the registration from its bus. It returns true the
// first time it removes anything and false on every later call, so it
// is safe to call more than once. Equivalent to bus.Off(r).
func (r *Registration) Off() bool {
	return r.bus.Off(r)
}

// cancel marks the registration as removed.
func (r *Registration) cancel() {
	r.cancelled.Store(true)
}

// claim reserves a one-time registration for delivery. Only the first
// caller wins; concurrent emissions that snapshotted the same
// registration lose the race and skip it.
func (r *Registration) claim() bool {
	return r.fired.CompareAndSwap(false, true)
}
