package validators

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-validity/pkg/validity"
)

// Registry stores validators by key so hosts can assemble the set they pass
// to validity.WithValidators.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]validity.Validator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[string]validity.Validator),
	}
}

// NewDefaultRegistry creates a registry preloaded with Defaults.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for key, fn := range Defaults() {
		r.validators[key] = fn
	}
	return r
}

// Register adds a validator under key. Duplicate keys return an error.
func (r *Registry) Register(key string, fn validity.Validator) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("validators: key is required")
	}
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("validators: key %q must not contain whitespace", key)
	}
	if fn == nil {
		return fmt.Errorf("validators: validator %q is nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[key]; exists {
		return fmt.Errorf("validators: validator %q already registered", key)
	}
	r.validators[key] = fn
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(key string, fn validity.Validator) {
	if err := r.Register(key, fn); err != nil {
		panic(err)
	}
}

// Replace adds or overwrites the validator under key.
func (r *Registry) Replace(key string, fn validity.Validator) {
	key = strings.TrimSpace(key)
	if key == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[key] = fn
}

// Get retrieves a validator by key.
func (r *Registry) Get(key string) (validity.Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.validators[key]
	if !ok {
		return nil, fmt.Errorf("validators: validator %q not found", key)
	}
	return fn, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.validators[key]
	return ok
}

// List returns the registered keys sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.validators))
	for key := range r.validators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the registry contents.
func (r *Registry) Map() map[string]validity.Validator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]validity.Validator, len(r.validators))
	for key, fn := range r.validators {
		out[key] = fn
	}
	return out
}

// Option returns a validity option registering every validator.
func (r *Registry) Option() validity.Option {
	return validity.WithValidators(r.Map())
}
