package ui

import (
	"context"
	"sync"
)

// MainLoop owns the display. Dispatched functions run one at a time, in
// dispatch order, on the goroutine that called Run.
type MainLoop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped bool
}

func NewMainLoop() *MainLoop {
	return &MainLoop{
		wake: make(chan struct{}, 1),
	}
}

// Dispatch queues fn without blocking. It reports false once the loop has
// stopped, in which case fn never runs.
func (l *MainLoop) Dispatch(fn func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// DispatchSync runs fn on the loop and waits for it to return.
func (l *MainLoop) DispatchSync(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if !l.Dispatch(func() {
		defer close(done)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until ctx is done. Once ctx is done Dispatch is
// refused, and work it accepted before that still runs before Run returns.
func (l *MainLoop) Run(ctx context.Context) {
	for {
		l.mu.Lock()
		if ctx.Err() != nil {
			l.stopped = true
		}
		stopped := l.stopped
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}

		if stopped {
			return
		}

		select {
		case <-ctx.Done():
		case <-l.wake:
		}
	}
}
