package eventloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = l.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return l, cancel
}

func TestInvokeWaitExecutes(t *testing.T) {
	l, _ := startLoop(t)

	ran := false
	if err := l.InvokeWait(func() { ran = true }); err != nil {
		t.Fatalf("InvokeWait: %v", err)
	}
	if !ran {
		t.Errorf("closure did not run before InvokeWait returned")
	}
}

func TestFIFOOrdering(t *testing.T) {
	l, _ := startLoop(t)

	const n = 100
	var got []int
	for i := 0; i < n; i++ {
		i := i
		if err := l.Invoke(func() { got = append(got, i) }); err != nil {
			t.Fatalf("Invoke(%d): %v", i, err)
		}
	}
	// A final InvokeWait flushes everything queued before it.
	if err := l.InvokeWait(func() {}); err != nil {
		t.Fatalf("InvokeWait: %v", err)
	}

	if len(got) != n {
		t.Fatalf("ran %d closures, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("closure order broken at index %d: got %d", i, v)
		}
	}
}

func TestStoppedLoopReturnsErrStopped(t *testing.T) {
	l, cancel := startLoop(t)
	cancel()

	// Give the loop a moment to observe cancellation.
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := l.Invoke(func() {})
		if errors.Is(err, ErrStopped) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Invoke never returned ErrStopped after cancel")
		}
		time.Sleep(time.Millisecond)
	}

	if err := l.InvokeWait(func() {}); !errors.Is(err, ErrStopped) {
		t.Errorf("InvokeWait after stop = %v, want ErrStopped", err)
	}
}

func TestInvokeWaitUnblocksOnStop(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())

	block := make(chan struct{})
	done := make(chan struct{})
	go func() { _ = l.Run(ctx) }()

	// Occupy the loop so the next InvokeWait sits in the queue.
	_ = l.Invoke(func() { <-block })

	go func() {
		err := l.InvokeWait(func() {})
		if !errors.Is(err, ErrStopped) && err != nil {
			t.Errorf("InvokeWait = %v, want nil or ErrStopped", err)
		}
		close(done)
	}()

	cancel()
	close(block)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("InvokeWait still blocked after loop stopped")
	}
}
