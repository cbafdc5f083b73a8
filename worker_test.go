package gfx

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWorker_RunsPeriodically(t *testing.T) {
	var ticks atomic.Int64
	w := NewWorker(time.Millisecond, func() { ticks.Add(1) })
	w.Start()

	deadline := time.After(time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("worker ticked %d times within a second, want >= 3", ticks.Load())
		case <-time.After(time.Millisecond):
		}
	}
	w.Join()
}

func TestWorker_JoinStopsTheLoop(t *testing.T) {
	var ticks atomic.Int64
	w := NewWorker(time.Millisecond, func() { ticks.Add(1) })
	w.Start()
	time.Sleep(10 * time.Millisecond)
	w.Join()

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("worker ticked %d times after Join returned", got-after)
	}
}

func TestWorker_JoinWithoutStart(t *testing.T) {
	w := NewWorker(time.Millisecond, func() {})
	done := make(chan struct{})
	go func() {
		w.Join()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Join blocked on a worker that never started")
	}
}

func TestWorker_StartIsIdempotent(t *testing.T) {
	var ticks atomic.Int64
	w := NewWorker(5*time.Millisecond, func() { ticks.Add(1) })
	w.Start()
	w.Start()
	w.Start()
	time.Sleep(12 * time.Millisecond)
	w.Join()
	w.Join()
	if got := ticks.Load(); got > 4 {
		t.Errorf("worker ticked %d times in ~12ms at a 5ms interval; duplicate loops?", got)
	}
}
