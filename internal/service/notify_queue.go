package service

import (
	"context"
	"sync"
)

const notifyQueueSize = 256

// notifyQueue runs notification jobs on a single goroutine, in the order
// they were pushed.
type notifyQueue struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan func()
	done   chan struct{}
}

func newNotifyQueue(size int) *notifyQueue {
	q := &notifyQueue{
		jobs: make(chan func(), size),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *notifyQueue) run() {
	defer close(q.done)
	for job := range q.jobs {
		job()
	}
}

// push blocks while the queue is full. It reports false once the queue is
// closed.
func (q *notifyQueue) push(job func()) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}
	q.jobs <- job
	return true
}

// close stops accepting jobs and waits for the queued ones to run.
func (q *notifyQueue) close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
