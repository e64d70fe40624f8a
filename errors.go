package typedemit

import "errors"

// Sentinel errors for the bus.
var (
	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrInvalidEvent is returned when an event identifier is empty.
	ErrInvalidEvent = errors.New("invalid event identifier")

	// ErrListenerPanic is matched by errors.Is against captured panics.
	ErrListenerPanic = errors.New("listener panicked")
)

// ListenerError wraps an error returned by a listener during Emit
// with the event and registration it came from.
type ListenerError struct {
	// Event is the identifier the listener was registered under.
	Event string

	// RegistrationID is the ID of the registration whose listener failed.
	RegistrationID string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return "listener error for registration " + e.RegistrationID + " on event " + e.Event + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic value captured during EmitAsync.
type PanicError struct {
	// Event is the identifier the listener was registered under.
	Event string

	// RegistrationID is the ID of the registration whose listener panicked.
	RegistrationID string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "listener panic for registration " + e.RegistrationID + " on event " + e.Event
}

// Is allows errors.Is to match PanicError with ErrListenerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrListenerPanic
}
