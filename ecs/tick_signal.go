package ecs

import (
	"context"
	"sync/atomic"
	"time"
)

// TickSignal is the "tick is due" flag shared between a periodic timer and
// the goroutine that runs the scheduler. It carries no other state.
// Raising an already raised signal is a no-op.
type TickSignal struct {
	due  atomic.Bool
	wake chan struct{}
}

// NewTickSignal creates a lowered signal.
func NewTickSignal() *TickSignal {
	return &TickSignal{
		wake: make(chan struct{}, 1),
	}
}

// Raise marks a tick as due and wakes the consumer. Safe to call from any goroutine.
func (t *TickSignal) Raise() {
	t.due.Store(true)
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Take lowers the signal and reports whether a tick was due.
func (t *TickSignal) Take() bool {
	return t.due.CompareAndSwap(true, false)
}

// Pending reports whether a tick is due without lowering the signal.
func (t *TickSignal) Pending() bool {
	return t.due.Load()
}

// Wake returns a channel that receives after the signal is raised.
func (t *TickSignal) Wake() <-chan struct{} {
	return t.wake
}

// StartTimer raises signal every interval until the context is cancelled.
func StartTimer(ctx context.Context, interval time.Duration, signal *TickSignal) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			signal.Raise()
		}
	}
}
