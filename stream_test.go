package typedemit

import (
	"context"
	"testing"
	"time"
)

func TestStream_DeliversPayloads(t *testing.T) {
	bus := NewBus()
	key := NewKey[int]("counter.tick")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Stream(ctx, bus, key, 4)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	Emit(context.Background(), bus, key, 1)
	Emit(context.Background(), bus, key, 2)

	for _, want := range []int{1, 2} {
		select {
		case got := <-ch:
			if got != want {
				t.Errorf("expected %d, got %d", want, got)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for payload")
		}
	}
}

func TestStream_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	key := NewKey[int]("counter.tick")

	ctx, cancel := context.WithCancel(context.Background())

	ch, err := Stream(ctx, bus, key, 1)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}
	if ListenerCount(bus, key) != 1 {
		t.Fatal("expected stream to register a listener")
	}

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected channel to be closed without a payload")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	// The subscription is gone, so emissions go nowhere.
	deadline := time.After(time.Second)
	for ListenerCount(bus, key) != 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for stream to unsubscribe")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestStream_DropsWhenBufferFull(t *testing.T) {
	bus := NewBus()
	key := NewKey[int]("counter.tick")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Stream(ctx, bus, key, 1)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	// Nobody is receiving: the first payload fills the buffer, the
	// rest are dropped instead of blocking the emitter.
	for i := 1; i <= 5; i++ {
		if err := Emit(context.Background(), bus, key, i); err != nil {
			t.Fatalf("Emit() failed: %v", err)
		}
	}

	select {
	case got := <-ch:
		if got != 1 {
			t.Errorf("expected buffered payload 1, got %d", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for buffered payload")
	}

	select {
	case got := <-ch:
		t.Errorf("expected overflow payloads to be dropped, received %d", got)
	default:
	}
}
