package validity

import "sync"

// SubmitEvent is the submit notification delivered by the host. Calling
// PreventDefault blocks the native submission.
type SubmitEvent interface {
	PreventDefault()
	DefaultPrevented() bool
}

// BasicSubmitEvent is a SubmitEvent for hosts without their own event type.
type BasicSubmitEvent struct {
	mu        sync.Mutex
	prevented bool
}

// NewSubmitEvent returns a submit event whose default action is allowed.
func NewSubmitEvent() *BasicSubmitEvent {
	return &BasicSubmitEvent{}
}

// PreventDefault blocks native submission.
func (e *BasicSubmitEvent) PreventDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *BasicSubmitEvent) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}
