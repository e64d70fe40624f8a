package typedemit

import "context"

// Emitter is the minimal structural contract of the bus. Consumers
// that only need "something with this shape" can depend on Emitter
// instead of the concrete Bus.
type Emitter interface {
	// On registers a listener for an event and returns its handle.
	On(event string, h Handler) (*Registration, error)

	// Once registers a one-time listener for an event.
	Once(event string, h Handler) (*Registration, error)

	// Off removes a registration. Returns true if anything was removed.
	Off(r *Registration) bool

	// Emit synchronously fans a payload out in registration order.
	Emit(ctx context.Context, event string, payload any) error

	// EmitAsync fans out concurrently and returns per-listener
	// outcomes in registration order.
	EmitAsync(ctx context.Context, event string, payload any) []Outcome

	// ListenerCount returns the number of listeners for an event.
	ListenerCount(event string) int

	// HasListeners returns true if the event has at least one listener.
	HasListeners(event string) bool

	// Clear removes every listener for an event.
	Clear(event string)

	// Reset discards the entire registry.
	Reset()
}

var _ Emitter = (*Bus)(nil)
