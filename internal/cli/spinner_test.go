package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() != true {
		t.Error("Cancelled() should be true after Stop")
	}
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.Start()

	cancel()

	// The animation goroutine should exit on its own once the parent
	// context is cancelled.
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner goroutine did not exit after context cancellation")
	}

	if !s.Cancelled() {
		t.Error("Cancelled() should be true after parent cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	s.Stop()
	s.Stop() // must not panic or block
}

func TestSpinnerStopBeforeTick(t *testing.T) {
	// Stopping immediately, before the first frame renders, must not hang.
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()
	s.Stop()
}
