package typedemit

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Bus is an in-process publish/subscribe bus. Event identifiers are
// independent channels: each maps to an ordered list of listener
// registrations with no coupling between identifiers.
//
// All methods are safe for concurrent use.
type Bus struct {
	registry *registry
	config   busConfig

	// Stats
	eventsEmitted    atomic.Uint64
	eventsDelivered  atomic.Uint64
	handlersExecuted atomic.Uint64
	listenerErrors   atomic.Uint64
	listenerPanics   atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) *Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Bus{
		registry: newRegistry(),
		config:   config,
	}
}

// On registers a listener for an event. The listener is appended
// after any existing registrations; emission invokes listeners in
// registration order. Registering the same function twice produces
// two independent registrations.
func (b *Bus) On(event string, h Handler) (*Registration, error) {
	return b.register(event, h, false)
}

// OnFunc is a convenience method for registering a function listener.
func (b *Bus) OnFunc(event string, fn HandlerFunc) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.On(event, fn)
}

// Once registers a listener that is invoked at most once. The
// registration is removed from the registry before its first
// invocation is delegated, so a listener that re-emits its own event
// does not see itself still registered, and removal holds even when
// the listener fails. The returned registration can be removed with
// Off before the one-time firing occurs.
func (b *Bus) Once(event string, h Handler) (*Registration, error) {
	return b.register(event, h, true)
}

// OnceFunc is a convenience method for registering a one-time
// function listener.
func (b *Bus) OnceFunc(event string, fn HandlerFunc) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Once(event, fn)
}

// register creates and stores a registration.
func (b *Bus) register(event string, h Handler, once bool) (*Registration, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if event == "" {
		return nil, ErrInvalidEvent
	}

	reg := &Registration{
		id:      uuid.NewString(),
		event:   event,
		handler: h,
		once:    once,
		bus:     b,
	}
	b.registry.add(reg)

	return reg, nil
}

// Off removes a registration. It returns true if the registration was
// still registered and false when it was already removed, never
// registered on this bus, or nil - removing a non-member is a normal,
// reportable no-op, not an error.
func (b *Bus) Off(r *Registration) bool {
	if r == nil {
		return false
	}
	return b.registry.remove(r.id)
}

// Emit synchronously fans a payload out to the event's listeners.
// Listeners run in registration order in the caller's goroutine. The
// first listener error aborts delivery to the remaining listeners and
// is returned wrapped in a *ListenerError. A listener panic
// propagates to the caller - Emit does not recover. Zero listeners is
// not an error.
//
// Emission operates on a snapshot taken at the start of the call:
// listeners added or removed during delivery affect only future
// emissions.
func (b *Bus) Emit(ctx context.Context, event string, payload any) error {
	snap := b.registry.snapshot(event)
	if len(snap) == 0 {
		return nil
	}

	b.eventsEmitted.Add(1)

	for _, reg := range snap {
		// Stop delivering once the caller's context is gone.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if reg.once {
			if !reg.claim() {
				continue
			}
			// Removal precedes delegation.
			b.registry.remove(reg.id)
		}

		b.handlersExecuted.Add(1)

		if _, err := reg.handler.Handle(ctx, payload); err != nil {
			b.listenerErrors.Add(1)
			return &ListenerError{
				Event:          event,
				RegistrationID: reg.id,
				Err:            err,
			}
		}

		b.eventsDelivered.Add(1)
	}

	return nil
}

// EmitAsync fans a payload out to the event's listeners concurrently
// and waits for every one of them to settle. It returns one Outcome
// per snapshotted registration, in registration order regardless of
// completion order. Listener errors and panics are captured into the
// outcomes; EmitAsync itself never fails. With zero listeners it
// returns an empty slice.
//
// There is no timeout: a listener that never returns blocks the call
// indefinitely. Listeners should respect ctx if the caller needs a
// bound.
func (b *Bus) EmitAsync(ctx context.Context, event string, payload any) []Outcome {
	snap := b.registry.snapshot(event)
	outcomes := make([]Outcome, len(snap))
	if len(snap) == 0 {
		return outcomes
	}

	b.eventsEmitted.Add(1)

	var wg sync.WaitGroup
	for i, reg := range snap {
		wg.Add(1)
		go func(i int, reg *Registration) {
			defer wg.Done()
			outcomes[i] = b.invoke(ctx, reg, payload)
		}(i, reg)
	}
	wg.Wait()

	return outcomes
}

// invoke runs one listener with panic recovery and timing.
func (b *Bus) invoke(ctx context.Context, reg *Registration, payload any) (out Outcome) {
	// Check context before starting
	select {
	case <-ctx.Done():
		return Outcome{Err: ctx.Err(), Skipped: true}
	default:
	}

	if reg.once {
		// A concurrent emission that snapshotted the same one-time
		// registration may have claimed it first.
		if !reg.claim() {
			return Outcome{Skipped: true}
		}
		// Removal precedes delegation.
		b.registry.remove(reg.id)
	}

	start := time.Now()
	b.handlersExecuted.Add(1)

	defer func() {
		out.Duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			out.Value = nil
			out.Err = &PanicError{
				Event:          reg.event,
				RegistrationID: reg.id,
				Value:          r,
				Stack:          string(stack),
			}
			out.Panicked = true
			out.PanicValue = r
			out.PanicStack = stack

			b.listenerPanics.Add(1)

			// Protect the panic handler call - don't let it crash the process
			if b.config.panicHandler != nil {
				func() {
					defer func() { _ = recover() }()
					b.config.panicHandler(reg.event, payload, r, stack)
				}()
			}
		}
	}()

	value, err := reg.handler.Handle(ctx, payload)
	if err != nil {
		b.listenerErrors.Add(1)
		out.Err = err
		return out
	}

	b.eventsDelivered.Add(1)
	out.Value = value
	return out
}

// ListenerCount returns the number of listeners registered for an
// event, or 0 for an unknown identifier.
func (b *Bus) ListenerCount(event string) int {
	return b.registry.count(event)
}

// HasListeners returns true if the event has at least one listener.
func (b *Bus) HasListeners(event string) bool {
	return b.registry.count(event) > 0
}

// Clear removes every listener for an event in one step. Unknown
// identifiers are a no-op.
func (b *Bus) Clear(event string) {
	b.registry.clear(event)
}

// Reset discards the entire registry, leaving the bus as if freshly
// constructed.
func (b *Bus) Reset() {
	b.registry.reset()
}

// Events returns the identifiers that currently have listeners.
// Order is unspecified.
func (b *Bus) Events() []string {
	return b.registry.names()
}

// Stats returns current bus statistics.
// Counters are read without a mutex, so values may be slightly
// inconsistent while emissions are in flight.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsEmitted:    b.eventsEmitted.Load(),
		EventsDelivered:  b.eventsDelivered.Load(),
		HandlersExecuted: b.handlersExecuted.Load(),
		ListenerErrors:   b.listenerErrors.Load(),
		ListenerPanics:   b.listenerPanics.Load(),
		ActiveListeners:  b.registry.size(),
	}
}
