package validity

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-validity/pkg/debounce"
)

// Context binds the engine to one form: its Config, its Registry and the
// collaborators used to reach the host. Create one per form with Apply.
type Context struct {
	mu       sync.Mutex
	form     FormHandle
	collab   Collaborators
	cfg      Config
	registry *Registry
	closed   bool
}

// Apply resolves the configuration, builds the form's registry and returns
// the Context that handles its triggers. Applying twice to the same form
// yields two independent contexts; hosts should apply once per form.
func Apply(form FormHandle, collab Collaborators, options ...Option) (*Context, error) {
	if form == nil {
		return nil, ErrFormRequired
	}
	if collab.Discovery == nil {
		return nil, ErrDiscoveryRequired
	}
	if collab.Layout == nil {
		return nil, ErrLayoutRequired
	}

	cfg := NewConfig(options...)
	if checker, ok := collab.Layout.(SelectorChecker); ok {
		if err := checker.CheckSelector(cfg.ParentSelector); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParentSelector, err)
		}
	}

	c := &Context{
		form:     form,
		collab:   collab,
		cfg:      cfg,
		registry: NewRegistry(),
	}
	c.scan()

	c.cfg.Logger.Debug("validity: form ready",
		"form", form.FormID(),
		"fields", c.registry.Len(),
		"live", c.cfg.LiveValidation(),
		"timeout", c.cfg.Timeout,
	)
	return c, nil
}

// Form returns the bound form handle.
func (c *Context) Form() FormHandle {
	return c.form
}

// Config returns the resolved configuration.
func (c *Context) Config() Config {
	return c.cfg
}

// Fields returns a shallow copy of the registry in creation order.
func (c *Context) Fields() []*Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Fields()
}

// Lookup returns the field control routes to.
func (c *Context) Lookup(control Control) (*Field, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Lookup(control)
}

// Rescan picks up controls added to the form since Apply. Controls already
// registered are left alone. It returns the number of fields added.
func (c *Context) Rescan() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	return c.scan()
}

func (c *Context) scan() int {
	before := c.registry.Len()
	BuildRegistry(c.form, c.collab, c.cfg, c.registry)
	for i := before; i < c.registry.Len(); i++ {
		f := c.registry.At(i)
		f.live = debounce.New(c.validateLive, c.cfg.Timeout, debounce.WithScheduler(c.cfg.Scheduler))
	}
	return c.registry.Len() - before
}

// Input handles a value change on control. When live validation is enabled
// the control's field is validated once input settles for Config.Timeout.
func (c *Context) Input(control Control) {
	if !c.cfg.LiveValidation() {
		return
	}
	f, ok := c.liveField(control)
	if !ok {
		return
	}
	f.live.Call(f)
}

// Change handles a change notification. Only select, radio, checkbox and
// file controls react; text-like controls report edits through Input.
func (c *Context) Change(control Control) {
	if control == nil {
		return
	}
	switch control.Kind() {
	case KindSelect, KindRadio, KindCheckbox, KindFile:
		c.Input(control)
	}
}

// Blur validates the control's field immediately when ValidateOnBlur is set.
func (c *Context) Blur(control Control) {
	if !c.cfg.ValidateOnBlur {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if f, ok := c.registry.Lookup(control); ok {
		ValidateField(f, c.cfg)
	}
}

// Validate runs the control's field now, regardless of trigger settings.
// ok is false when control is not part of the form.
func (c *Context) Validate(control Control) (valid bool, message string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, found := c.registry.Lookup(control)
	if !found {
		return false, "", false
	}
	valid, message = ValidateField(f, c.cfg)
	return valid, message, true
}

// Submit validates every field and decides the fate of the submission. On
// failure it prevents the default action, focuses the first invalid field
// and emits EventInvalid. On success it hands over to OnSubmit when one is
// configured (preventing the default action) and otherwise leaves the event
// untouched. It reports whether native submission proceeds.
func (c *Context) Submit(event SubmitEvent) bool {
	if event == nil {
		event = NewSubmitEvent()
	}

	fields, first, verdict := c.validateAll()

	if first != NoError {
		event.PreventDefault()
		invalid := fields[first]
		if c.collab.Focuser != nil {
			c.collab.Focuser.Focus(invalid.Control)
		}
		c.cfg.Logger.Info("validity: submission blocked",
			"form", c.form.FormID(),
			"field", invalid.Name,
			"message", verdict,
		)
		if c.collab.Notifier != nil {
			c.collab.Notifier.Invalid(c.form, InvalidEvent{
				Name:   EventInvalid,
				Fields: fields,
			})
		}
		return false
	}

	if c.cfg.OnSubmit != nil {
		event.PreventDefault()
		c.cfg.OnSubmit(event, c.form)
		return false
	}
	return !event.DefaultPrevented()
}

// Valid reports whether every field passed its most recent validation.
func (c *Context) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.registry.fields {
		if !f.IsValid() {
			return false
		}
	}
	return true
}

// Teardown cancels pending live validation runs and stops the context from
// reacting to further input and blur triggers.
func (c *Context) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for _, f := range c.registry.fields {
		if f.live != nil {
			f.live.Cancel()
		}
	}
}

// validateAll runs a full pass and captures the first invalid field's
// message before the lock is released.
func (c *Context) validateAll() ([]*Field, int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fields := c.registry.Fields()
	first := ValidateAll(fields, c.cfg)
	if first == NoError {
		return fields, first, ""
	}
	_, message := fields[first].verdict()
	return fields, first, message
}

func (c *Context) liveField(control Control) (*Field, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false
	}
	return c.registry.Lookup(control)
}

func (c *Context) validateLive(f *Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	ValidateField(f, c.cfg)
}
