package debounce

import (
	"sync"
	"time"
)

// Disabled is the delay sentinel that turns a Debouncer into a synchronous
// passthrough.
const Disabled time.Duration = -1

// IsDisabled reports whether delay is the disabled sentinel (any negative
// duration).
func IsDisabled(delay time.Duration) bool {
	return delay < 0
}

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	scheduler Scheduler
}

// WithScheduler overrides the timer source. Nil keeps the system scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// Debouncer delays an action until calls stop arriving for the configured
// delay. The zero value is not usable; construct with New.
type Debouncer[T any] struct {
	action    func(T)
	delay     time.Duration
	scheduler Scheduler

	mu      sync.Mutex
	timer   Timer
	seq     uint64
	pending bool
	arg     T
}

// New wraps action. Calls within delay of each other collapse into one run
// using the last argument. A delay of Disabled or zero runs action
// synchronously on every Call.
func New[T any](action func(T), delay time.Duration, opts ...Option) *Debouncer[T] {
	cfg := options{scheduler: SystemScheduler()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Debouncer[T]{
		action:    action,
		delay:     delay,
		scheduler: cfg.scheduler,
	}
}

// Call schedules action(arg), replacing any run that has not fired yet.
func (d *Debouncer[T]) Call(arg T) {
	if d.delay <= 0 {
		d.action(arg)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.arg = arg
	d.pending = true
	d.timer = d.scheduler.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
}

// Cancel drops the pending run, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.clearLocked()
}

// Pending reports whether a run is scheduled and has not fired.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush runs the pending call immediately instead of waiting for its timer.
// It is a no-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	arg := d.arg
	d.clearLocked()
	d.mu.Unlock()

	d.action(arg)
}

// fire runs the action for the call numbered seq unless a later call or a
// Cancel superseded it while the timer callback was in flight.
func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.timer = nil
	d.clearLocked()
	d.mu.Unlock()

	d.action(arg)
}

func (d *Debouncer[T]) clearLocked() {
	var zero T
	d.arg = zero
	d.pending = false
}
