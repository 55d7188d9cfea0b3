package sync

import (
	"context"
	"sync"
	"time"

	"github.com/iudanet/gophcollab/internal/cursor"
)

var _ cursor.Scheduler = (*Loop)(nil)

// Loop is a single-threaded task queue. Every reconciliation step, network
// message and timer callback is posted here and runs to completion before the
// next one starts.
type Loop struct {
	wake  chan struct{}
	queue []func()
	mu    sync.Mutex
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues task. It never blocks and may be called from any goroutine,
// including from a running task.
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc posts f to the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, f func()) cursor.Timer {
	return time.AfterFunc(d, func() { l.Post(f) })
}

// Run executes tasks in order until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.mu.Lock()
		tasks := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, task := range tasks {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			task()
		}
		if len(tasks) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
