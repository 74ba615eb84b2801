// Package latency runs simulated slow actions as cancellable tasks.
package latency

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrBusy is returned when an action is already pending for the view.
var ErrBusy = errors.New("action already pending")

// Runner delays actions and allows at most one pending action per view key.
type Runner struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewRunner() *Runner {
	return &Runner{pending: make(map[string]struct{})}
}

// Do waits d and then runs fn. If ctx ends first, fn never runs and the
// context error is returned.
func (r *Runner) Do(ctx context.Context, view string, d time.Duration, fn func() error) error {
	if !r.acquire(view) {
		return ErrBusy
	}
	defer r.release(view)

	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn()
}

// Pending reports whether view has an action in flight.
func (r *Runner) Pending(view string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[view]
	return ok
}

func (r *Runner) acquire(view string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[view]; ok {
		return false
	}
	r.pending[view] = struct{}{}
	return true
}

func (r *Runner) release(view string) {
	r.mu.Lock()
	delete(r.pending, view)
	r.mu.Unlock()
}
