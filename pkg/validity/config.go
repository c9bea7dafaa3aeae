package validity

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/goliatone/go-validity/pkg/debounce"
)

// Defaults applied by NewConfig.
const (
	DefaultAttributeName   = "data-validators"
	DefaultRequiredMessage = "This field is required"
	DefaultParentSelector  = "p"
	DefaultErrorClass      = "error"
	DefaultTimeout         = time.Second

	// RequiredKey is the validator key prepended for required controls.
	RequiredKey = "required"
)

// GroupPolicy decides how radio/checkbox groups map to fields.
type GroupPolicy string

const (
	// GroupPerControl builds one Field per control, so a three option radio
	// group yields three fields sharing the same members.
	GroupPerControl GroupPolicy = "per-control"
	// GroupDedupe builds one Field per distinct group; later members of an
	// already captured group are indexed to the existing field.
	GroupDedupe GroupPolicy = "dedupe"
)

// Validator checks a field value. It returns nil to accept the value or an
// error whose text is the user-facing message to reject it. Validators must
// be deterministic and must not modify the control.
type Validator func(value, name string, control Control) error

// Config holds the per-form settings resolved once by Apply.
type Config struct {
	// AttributeName is the control attribute listing validator keys.
	AttributeName string
	// RequiredMessage feeds the synthesised required validator.
	RequiredMessage string
	// ParentSelector is forwarded to the Layout for grouped fields.
	ParentSelector string
	// ErrorClass is toggled on a field's DisplayTarget.
	ErrorClass string
	// Timeout is the live validation debounce delay. debounce.Disabled turns
	// live validation off; zero validates synchronously on every input.
	Timeout time.Duration
	// ValidateOnBlur validates a field immediately when it loses focus.
	ValidateOnBlur bool
	// OnSubmit replaces native submission when the form is valid.
	OnSubmit func(event SubmitEvent, form FormHandle)
	// Validators maps attribute keys to validator functions.
	Validators map[string]Validator
	// GroupPolicy controls field creation for grouped controls.
	GroupPolicy GroupPolicy

	Logger    *slog.Logger
	Scheduler debounce.Scheduler
}

// Option mutates a Config during NewConfig.
type Option func(*Config)

// NewConfig returns the defaults with options applied. The validator map is
// copied, and a required validator built from RequiredMessage is added when
// the caller supplied none.
func NewConfig(options ...Option) Config {
	cfg := Config{
		AttributeName:   DefaultAttributeName,
		RequiredMessage: DefaultRequiredMessage,
		ParentSelector:  DefaultParentSelector,
		ErrorClass:      DefaultErrorClass,
		Timeout:         DefaultTimeout,
		ValidateOnBlur:  true,
		GroupPolicy:     GroupPerControl,
		Validators:      make(map[string]Validator),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = debounce.SystemScheduler()
	}
	if cfg.GroupPolicy == "" {
		cfg.GroupPolicy = GroupPerControl
	}
	if _, ok := cfg.Validators[RequiredKey]; !ok {
		cfg.Validators[RequiredKey] = RequiredValidator(cfg.RequiredMessage)
	}
	return cfg
}

// LiveValidation reports whether input triggers validate at all.
func (c Config) LiveValidation() bool {
	return !debounce.IsDisabled(c.Timeout)
}

// WithAttributeName overrides the validator key attribute.
func WithAttributeName(name string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			c.AttributeName = trimmed
		}
	}
}

// WithRequiredMessage overrides the message of the synthesised required
// validator.
func WithRequiredMessage(message string) Option {
	return func(c *Config) {
		c.RequiredMessage = message
	}
}

// WithParentSelector overrides the container rule used for grouped fields.
func WithParentSelector(selector string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(selector); trimmed != "" {
			c.ParentSelector = trimmed
		}
	}
}

// WithErrorClass overrides the class toggled on invalid containers.
func WithErrorClass(class string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			c.ErrorClass = trimmed
		}
	}
}

// WithTimeout sets the live validation debounce delay.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithoutLiveValidation disables input-triggered validation; only blur and
// submit validate.
func WithoutLiveValidation() Option {
	return WithTimeout(debounce.Disabled)
}

// WithValidateOnBlur toggles validation on focus loss.
func WithValidateOnBlur(enabled bool) Option {
	return func(c *Config) {
		c.ValidateOnBlur = enabled
	}
}

// WithOnSubmit installs the callback invoked instead of native submission
// when every field is valid.
func WithOnSubmit(fn func(event SubmitEvent, form FormHandle)) Option {
	return func(c *Config) {
		c.OnSubmit = fn
	}
}

// WithValidator registers a validator under key. Nil validators are ignored.
func WithValidator(key string, validator Validator) Option {
	return func(c *Config) {
		key = strings.TrimSpace(key)
		if key == "" || validator == nil {
			return
		}
		if c.Validators == nil {
			c.Validators = make(map[string]Validator)
		}
		c.Validators[key] = validator
	}
}

// WithValidators registers every entry of validators.
func WithValidators(validators map[string]Validator) Option {
	return func(c *Config) {
		for key, validator := range validators {
			WithValidator(key, validator)(c)
		}
	}
}

// WithGroupPolicy selects how grouped controls map to fields.
func WithGroupPolicy(policy GroupPolicy) Option {
	return func(c *Config) {
		switch policy {
		case GroupPerControl, GroupDedupe:
			c.GroupPolicy = policy
		}
	}
}

// WithLogger sets the logger used for setup and submit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithScheduler overrides the timer source used by live validation.
func WithScheduler(s debounce.Scheduler) Option {
	return func(c *Config) {
		if s != nil {
			c.Scheduler = s
		}
	}
}

// RequiredValidator rejects empty values with message.
func RequiredValidator(message string) Validator {
	return func(value, _ string, _ Control) error {
		if value == "" {
			return Reject(message)
		}
		return nil
	}
}
