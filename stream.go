package typedemit

import (
	"context"
	"sync"
)

// Stream subscribes to a key and delivers emitted payloads on a
// channel until ctx is cancelled. It is a consumer-side convenience
// for reactive code that prefers ranging over a channel to
// registering callbacks.
//
// The channel is closed after the subscription is removed. Delivery
// is non-blocking: when the buffer is full, the payload is dropped
// rather than stalling the emitter. Size the buffer for the
// consumer's expected lag.
func Stream[P any](ctx context.Context, b *Bus, key Key[P], buffer int) (<-chan P, error) {
	if buffer < 0 {
		buffer = 0
	}

	ch := make(chan P, buffer)

	// Emissions snapshot the registry, so the listener can still fire
	// after Off. The closed flag keeps those stragglers off the
	// closed channel.
	var mu sync.Mutex
	closed := false

	reg, err := On(b, key, func(_ context.Context, payload P) error {
		mu.Lock()
		defer mu.Unlock()

		if closed {
			return nil
		}

		select {
		case ch <- payload:
		default:
			// Buffer full - drop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		reg.Off()

		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch, nil
}
