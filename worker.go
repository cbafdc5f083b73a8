package gfx

import (
	"sync"
	"sync/atomic"
	"time"
)

// Worker runs a function once per interval on its own goroutine until
// stopped. The stop signal is checked cooperatively once per tick, so a
// running invocation is never interrupted mid-call. Worker is ancillary
// plumbing for background polling; the geometry path never uses it.
type Worker struct {
	interval time.Duration
	fn       func()

	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
	stop      chan struct{}
	done      chan struct{}
}

// NewWorker creates a worker that invokes fn once per interval after
// Start is called.
func NewWorker(interval time.Duration, fn func()) *Worker {
	return &Worker{
		interval: interval,
		fn:       fn,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. Subsequent calls are no-ops.
func (w *Worker) Start() {
	w.startOnce.Do(func() {
		w.started.Store(true)
		go w.run()
	})
}

// Join signals the loop to stop and waits for it to exit. It is safe to
// call more than once, and returns immediately if the worker was never
// started.
func (w *Worker) Join() {
	w.stopOnce.Do(func() { close(w.stop) })
	if w.started.Load() {
		<-w.done
	}
}

func (w *Worker) run() {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			if w.fn != nil {
				w.fn()
			}
		}
	}
}
