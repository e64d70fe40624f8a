package typedemit

import "context"

// Handler is the interface for event listeners.
type Handler interface {
	// Handle processes a payload and returns an optional result value.
	// The payload is type-erased; handlers should type-assert. The
	// returned value is surfaced in the Outcome produced by EmitAsync.
	Handle(ctx context.Context, payload any) (any, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, payload any) (any, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, payload any) (any, error) {
	return f(ctx, payload)
}

// PanicHandler is called when EmitAsync captures a listener panic.
// It receives the event identifier, the emitted payload, the panic
// value, and the stack trace. Emit never invokes it - synchronous
// panics propagate to the caller by contract.
type PanicHandler func(event string, payload any, panicValue any, stack []byte)

// DefaultPanicHandler is a no-op panic handler. Captured panics are
// already reported through the Outcome; observers opt in via
// WithPanicHandler.
func DefaultPanicHandler(event string, payload any, panicValue any, stack []byte) {
}

// Stats contains bus statistics.
type Stats struct {
	// EventsEmitted is the total number of emissions that found at
	// least one listener.
	EventsEmitted uint64

	// EventsDelivered is the total number of successful listener
	// invocations.
	EventsDelivered uint64

	// HandlersExecuted is the total number of listener invocations,
	// successful or not.
	HandlersExecuted uint64

	// ListenerErrors is the number of listeners that returned errors.
	ListenerErrors uint64

	// ListenerPanics is the number of panics captured by EmitAsync.
	ListenerPanics uint64

	// ActiveListeners is the current number of registrations.
	ActiveListeners int
}
