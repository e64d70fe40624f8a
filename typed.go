package typedemit

import "context"

// Key binds an event identifier to its payload type. Registration and
// emission through a Key are checked at compile time against the
// key's payload type, so event schemas live in the type system
// instead of in stringly-typed call sites.
//
// Define keys as package-level variables:
//
//	var UserCreated = typedemit.NewKey[User]("user.created")
type Key[P any] struct {
	name string
}

// NewKey creates a typed event key.
func NewKey[P any](name string) Key[P] {
	return Key[P]{name: name}
}

// Name returns the underlying event identifier.
func (k Key[P]) Name() string {
	return k.name
}

// String returns the underlying event identifier.
func (k Key[P]) String() string {
	return k.name
}

// Void is the payload type for events that carry no data.
type Void struct{}

// On registers a typed listener for a key.
func On[P any](b *Bus, key Key[P], fn func(ctx context.Context, payload P) error) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.On(key.name, typedHandler(fn))
}

// OnValue registers a typed listener whose return value is surfaced
// in the Outcome produced by EmitAsync.
func OnValue[P, R any](b *Bus, key Key[P], fn func(ctx context.Context, payload P) (R, error)) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.On(key.name, typedValueHandler(fn))
}

// Once registers a typed one-time listener for a key.
func Once[P any](b *Bus, key Key[P], fn func(ctx context.Context, payload P) error) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Once(key.name, typedHandler(fn))
}

// OnceValue registers a typed one-time listener whose return value is
// surfaced in the Outcome produced by EmitAsync.
func OnceValue[P, R any](b *Bus, key Key[P], fn func(ctx context.Context, payload P) (R, error)) (*Registration, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Once(key.name, typedValueHandler(fn))
}

// Emit synchronously emits a typed payload for a key.
func Emit[P any](ctx context.Context, b *Bus, key Key[P], payload P) error {
	return b.Emit(ctx, key.name, payload)
}

// EmitAsync concurrently emits a typed payload for a key and waits
// for every listener to settle.
func EmitAsync[P any](ctx context.Context, b *Bus, key Key[P], payload P) []Outcome {
	return b.EmitAsync(ctx, key.name, payload)
}

// ListenerCount returns the number of listeners for a key.
func ListenerCount[P any](b *Bus, key Key[P]) int {
	return b.ListenerCount(key.name)
}

// HasListeners returns true if the key has at least one listener.
func HasListeners[P any](b *Bus, key Key[P]) bool {
	return b.HasListeners(key.name)
}

// Clear removes every listener for a key.
func Clear[P any](b *Bus, key Key[P]) {
	b.Clear(key.name)
}

// typedHandler adapts a typed listener to the erased Handler.
func typedHandler[P any](fn func(context.Context, P) error) Handler {
	return HandlerFunc(func(ctx context.Context, payload any) (any, error) {
		p, ok := payload.(P)
		if !ok {
			// Payload type mismatch - skip silently
			return nil, nil
		}
		return nil, fn(ctx, p)
	})
}

// typedValueHandler adapts a value-returning typed listener to the
// erased Handler.
func typedValueHandler[P, R any](fn func(context.Context, P) (R, error)) Handler {
	return HandlerFunc(func(ctx context.Context, payload any) (any, error) {
		p, ok := payload.(P)
		if !ok {
			// Payload type mismatch - skip silently
			return nil, nil
		}
		value, err := fn(ctx, p)
		if err != nil {
			return nil, err
		}
		return value, nil
	})
}
