package report

import (
	"sync"

	"github.com/goliatone/go-validity/pkg/validity"
)

// Collector is a validity.Notifier that keeps every invalid notification it
// receives.
type Collector struct {
	mu     sync.Mutex
	events []Summary
}

// Invalid implements validity.Notifier.
func (c *Collector) Invalid(form validity.FormHandle, event validity.InvalidEvent) {
	summary := FromEvent(form, event)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, summary)
}

// Last returns the most recent summary.
func (c *Collector) Last() (Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) == 0 {
		return Summary{}, false
	}
	return c.events[len(c.events)-1], true
}

// Len reports how many notifications were received.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}
