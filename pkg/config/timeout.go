package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-validity/pkg/debounce"
)

// Timeout is the live validation delay as written in settings. Bare numbers
// are milliseconds, false disables live validation.
type Timeout struct {
	Set   bool
	Value time.Duration
}

// Disabled reports whether live validation is turned off.
func (t Timeout) Disabled() bool {
	return t.Set && debounce.IsDisabled(t.Value)
}

// UnmarshalYAML accepts durations ("250ms"), integers (milliseconds) and
// booleans (false disables, true keeps the default).
func (t *Timeout) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidTimeout, node.Line)
	}
	parsed, err := ParseTimeout(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}

// ParseTimeout parses the textual timeout forms accepted in settings. An
// empty string or "true" leaves the timeout unset.
func ParseTimeout(raw string) (Timeout, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "true":
		return Timeout{}, nil
	case "false", "off", "disabled":
		return Timeout{Set: true, Value: debounce.Disabled}, nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		if ms < 0 {
			return Timeout{}, fmt.Errorf("%w: %q is negative", ErrInvalidTimeout, raw)
		}
		return Timeout{Set: true, Value: time.Duration(ms) * time.Millisecond}, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return Timeout{}, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return Timeout{Set: true, Value: d}, nil
}
