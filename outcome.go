package typedemit

import "time"

// Outcome represents the settled result of one listener invocation
// during EmitAsync. EmitAsync produces exactly one Outcome per
// registration in the emission snapshot, in registration order.
type Outcome struct {
	// Value is the value returned by the listener on success.
	Value any

	// Err is the error returned by the listener, or a *PanicError
	// when the listener panicked.
	Err error

	// Panicked is true if the listener panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Skipped is true if the listener was not executed (context
	// already cancelled, or a one-time registration claimed by a
	// concurrent emission).
	Skipped bool

	// Duration is how long the listener took to settle.
	Duration time.Duration
}

// OK returns true if the listener settled successfully.
func (o Outcome) OK() bool {
	return o.Err == nil && !o.Panicked && !o.Skipped
}

// IsError returns true if the listener returned an error (not a panic).
func (o Outcome) IsError() bool {
	return o.Err != nil && !o.Panicked
}

// IsPanic returns true if the listener panicked.
func (o Outcome) IsPanic() bool {
	return o.Panicked
}
