package validity

import (
	"sync"

	"github.com/goliatone/go-validity/pkg/debounce"
)

// Field is one validated unit: a single control, or a radio/checkbox group
// sharing a name. Its structure is fixed at setup; only the validity state
// changes afterwards, and only through ValidateField.
type Field struct {
	// Control is the control the field was created for.
	Control Control
	// Name is the control's name attribute, possibly empty.
	Name string
	// Members are the controls that together determine the value.
	Members []Control
	// Validators run in order; the first rejection wins.
	Validators []Validator
	// Display and Messages come from the Layout and may be nil.
	Display  DisplayTarget
	Messages MessageTarget

	mu      sync.RWMutex
	valid   bool
	message string
	live    *debounce.Debouncer[*Field]
}

func newField(control Control, members []Control, validators []Validator, display DisplayTarget, messages MessageTarget) *Field {
	return &Field{
		Control:    control,
		Name:       control.Name(),
		Members:    members,
		Validators: validators,
		Display:    display,
		Messages:   messages,
		valid:      true,
	}
}

// IsValid reports the outcome of the last validation run; true before any.
func (f *Field) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid
}

// Message returns the rejection message of the last run, empty when valid.
func (f *Field) Message() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.message
}

func (f *Field) verdict() (bool, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid, f.message
}

func (f *Field) setVerdict(valid bool, message string) {
	f.mu.Lock()
	f.valid = valid
	f.message = message
	f.mu.Unlock()
}

// Grouped reports whether the field is backed by more than one control.
func (f *Field) Grouped() bool {
	return len(f.Members) > 1
}

// Registry is the ordered set of fields belonging to one form, plus the
// control to field index used to route events.
type Registry struct {
	fields []*Field
	index  map[string]*Field
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Field)}
}

// Len reports the number of fields.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// At returns the field at position i in creation order.
func (r *Registry) At(i int) *Field {
	return r.fields[i]
}

// Fields returns a shallow copy of the fields in creation order.
func (r *Registry) Fields() []*Field {
	if r == nil {
		return nil
	}
	return append([]*Field(nil), r.fields...)
}

// Lookup returns the field a control routes to.
func (r *Registry) Lookup(control Control) (*Field, bool) {
	if r == nil || control == nil {
		return nil, false
	}
	f, ok := r.index[control.ID()]
	return f, ok
}

// Has reports whether control is already indexed.
func (r *Registry) Has(control Control) bool {
	_, ok := r.Lookup(control)
	return ok
}

func (r *Registry) add(f *Field) {
	r.fields = append(r.fields, f)
	r.index[f.Control.ID()] = f
}

func (r *Registry) alias(control Control, f *Field) {
	if _, exists := r.index[control.ID()]; exists {
		return
	}
	r.index[control.ID()] = f
}
