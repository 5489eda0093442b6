// Package eventloop provides the hand-off queue through which every
// UI-affecting call is marshaled onto the single goroutine that owns the
// native windows. Window objects are confined to the thread that created
// them; mutating one from an API-handler goroutine without going through a
// Dispatcher is undefined behavior.
package eventloop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned when the loop is no longer accepting or executing
// work (its context was cancelled before the hand-off completed).
var ErrStopped = errors.New("eventloop: stopped")

// Dispatcher hands closures to the UI goroutine. Closures submitted by a
// single caller execute in submission order (FIFO). Invoke returns once the
// closure is queued; InvokeWait returns once it has run.
type Dispatcher interface {
	Invoke(fn func()) error
	InvokeWait(fn func()) error
}

type job struct {
	fn   func()
	done chan struct{}
}

// Loop is a channel-backed Dispatcher for headless modes and tests. The
// embedding process calls Run on the goroutine that owns the windows
// (locking it to its OS thread when a real toolkit is behind it).
type Loop struct {
	jobs     chan job
	stopped  chan struct{}
	stopOnce sync.Once
}

func New() *Loop {
	return &Loop{
		jobs:    make(chan job, 64),
		stopped: make(chan struct{}),
	}
}

// Run drains the queue until ctx is cancelled. Jobs already queued when the
// context ends are not executed; their waiters get ErrStopped rather than
// blocking forever.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j := <-l.jobs:
			j.fn()
			if j.done != nil {
				close(j.done)
			}
		}
	}
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() { close(l.stopped) })
}

// Invoke queues fn without waiting for it to run.
func (l *Loop) Invoke(fn func()) error {
	select {
	case <-l.stopped:
		return ErrStopped
	default:
	}
	select {
	case l.jobs <- job{fn: fn}:
		return nil
	case <-l.stopped:
		return ErrStopped
	}
}

// InvokeWait queues fn and blocks until it has executed on the loop
// goroutine, or until the loop stops.
func (l *Loop) InvokeWait(fn func()) error {
	done := make(chan struct{})
	select {
	case l.jobs <- job{fn: fn, done: done}:
	case <-l.stopped:
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-l.stopped:
		// The job may still be sitting in the queue; it will never run.
		select {
		case <-done:
			return nil
		default:
		}
		return ErrStopped
	}
}
