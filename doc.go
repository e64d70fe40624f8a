// Package typedemit provides a minimal, strongly-typed in-process
// publish/subscribe bus.
//
// The bus maps event identifiers to ordered lists of listener
// registrations and offers two emission paths with deliberately
// different failure contracts:
//
//   - Emit: synchronous fan-out in the caller's goroutine. Listeners
//     run in registration order; the first listener error aborts
//     delivery to the remaining listeners and is returned to the
//     caller. A listener panic propagates - Emit does not recover.
//   - EmitAsync: concurrent fan-out. Every snapshotted listener runs
//     in its own goroutine; EmitAsync waits for all of them to settle
//     and returns one Outcome per listener, in registration order.
//     Listener errors and panics are captured into the outcomes and
//     never fail the call itself.
//
// # Snapshot Semantics
//
// Each emission operates on a snapshot of the listener list taken when
// the emission starts. Listeners added or removed while an emission is
// in flight affect only future emissions, never the current one. This
// makes registry mutation from inside a listener safe by construction.
//
// # Listener Identity
//
// Go functions are not comparable, so removal is handle-based rather
// than reference-based: On and Once return a *Registration whose Off
// method removes exactly that registration. Registering the same
// function twice produces two independent registrations.
//
// # Basic Usage
//
//	bus := typedemit.NewBus()
//
//	reg, err := bus.OnFunc("user.created", func(ctx context.Context, payload any) (any, error) {
//	    fmt.Println("created:", payload)
//	    return nil, nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reg.Off()
//
//	if err := bus.Emit(context.Background(), "user.created", "u-123"); err != nil {
//	    log.Printf("listener failed: %v", err)
//	}
//
// # Typed Keys
//
// Key[P] binds an event identifier to its payload type at compile
// time, so registration and emission are checked against a fixed
// schema instead of arbitrary strings:
//
//	var UserCreated = typedemit.NewKey[User]("user.created")
//
//	typedemit.On(bus, UserCreated, func(ctx context.Context, u User) error {
//	    return store.Index(ctx, u)
//	})
//
//	typedemit.Emit(ctx, bus, UserCreated, User{ID: "u-123"})
//
// Events without a payload use the Void type:
//
//	var Flushed = typedemit.NewKey[typedemit.Void]("cache.flushed")
//
// # One-Time Listeners
//
// Once registers a listener that is removed from the registry before
// its first invocation is delegated. Removal happens first so that a
// listener which re-emits its own event does not see itself still
// registered, and so that removal holds even when the listener fails.
//
// # Concurrency
//
// All bus methods are safe for concurrent use. The registry is guarded
// by a mutex; emission never holds it while listeners run. EmitAsync
// has no timeout or cancellation of its own - it waits for every
// listener to settle, so a listener that ignores its context can block
// the returned completion indefinitely.
package typedemit
