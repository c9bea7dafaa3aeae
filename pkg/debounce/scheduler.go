package debounce

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be stopped before it fires.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc delegates to the underlying function.
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return fn(d, f)
}

// SystemScheduler schedules callbacks on the runtime timer via time.AfterFunc.
// Callbacks run on their own goroutine.
func SystemScheduler() Scheduler {
	return SchedulerFunc(func(d time.Duration, f func()) Timer {
		return time.AfterFunc(d, f)
	})
}

// ManualScheduler is a Scheduler driven by an explicit clock. Nothing fires
// until Advance moves the clock past a timer's deadline, and callbacks run on
// the goroutine calling Advance.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	sched    *ManualScheduler
	deadline time.Duration
	order    int
	fn       func()
	stopped  bool
	fired    bool
}

// NewManualScheduler returns a ManualScheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers f to run once the clock reaches now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{
		sched:    s,
		deadline: s.now + d,
		order:    s.seq,
		fn:       f,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every timer whose deadline is
// reached, in deadline order (registration order on ties).
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now
	var due []*manualTimer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.deadline <= now:
			t.fired = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.timers = remaining
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].deadline == due[j].deadline {
			return due[i].order < due[j].order
		}
		return due[i].deadline < due[j].deadline
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			count++
		}
	}
	return count
}

// Now reports the elapsed time on the manual clock.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
