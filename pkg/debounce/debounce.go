package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a callback after a quiet period with no triggers.
// Each new trigger cancels the pending callback and restarts the period, so
// a burst of N triggers results in exactly one invocation carrying the last
// value of the burst.
type Debouncer[T any] struct {
	quiet time.Duration
	fn    func(seq uint64, v T)

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	pending bool
	last    T
}

// New creates a Debouncer firing fn after quiet elapses without triggers.
// Panics on a nil callback or non-positive quiet period to fail fast on
// wiring mistakes.
func New[T any](quiet time.Duration, fn func(seq uint64, v T)) *Debouncer[T] {
	if fn == nil {
		panic("debounce: nil callback")
	}
	if quiet <= 0 {
		panic("debounce: quiet period must be positive")
	}
	return &Debouncer[T]{quiet: quiet, fn: fn}
}

// Trigger records v as the latest value and restarts the quiet period,
// cancelling any previously scheduled callback that has not fired yet.
// Returns the sequence number assigned to this trigger.
func (d *Debouncer[T]) Trigger(v T) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	d.last = v
	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(seq) })

	return seq
}

// fire runs the callback if seq still identifies the newest trigger. A timer
// that lost the Stop race exits here without invoking the callback.
func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.pending = false
	d.mu.Unlock()

	d.fn(seq, v)
}

// Flush invokes a pending callback immediately instead of waiting out the
// quiet period. No-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	seq := d.seq
	pending := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if pending {
		d.fire(seq)
	}
}

// Stop cancels any pending callback. The debouncer stays usable: a later
// Trigger schedules work again.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Seq returns the sequence number of the most recent trigger.
func (d *Debouncer[T]) Seq() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}
