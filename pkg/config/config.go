package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-validity/pkg/form"
	"github.com/goliatone/go-validity/pkg/validators"
	"github.com/goliatone/go-validity/pkg/validity"
)

// Settings mirrors the YAML settings document.
type Settings struct {
	AttributeName     string          `yaml:"attribute_name"`
	RequiredMessage   string          `yaml:"required_message"`
	ParentSelector    string          `yaml:"parent_selector"`
	ErrorClass        string          `yaml:"error_class"`
	Timeout           Timeout         `yaml:"timeout"`
	ValidateOnBlur    *bool           `yaml:"validate_on_blur"`
	GroupPolicy       string          `yaml:"group_policy" validate:"omitempty,oneof=per-control dedupe"`
	BuiltinValidators *bool           `yaml:"builtin_validators"`
	Validators        map[string]Rule `yaml:"validators"`
	LogLevel          string          `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Rule declares one validator. Exactly one of Tag, Pattern or OneOf is set.
type Rule struct {
	Tag     string   `yaml:"tag"`
	Pattern string   `yaml:"pattern"`
	OneOf   []string `yaml:"one_of"`
	Message string   `yaml:"message"`
}

// Env holds the VALIDITY_* overrides. Empty values leave settings alone.
type Env struct {
	AttributeName   string `env:"VALIDITY_ATTRIBUTE_NAME"`
	RequiredMessage string `env:"VALIDITY_REQUIRED_MESSAGE"`
	ParentSelector  string `env:"VALIDITY_PARENT_SELECTOR"`
	ErrorClass      string `env:"VALIDITY_ERROR_CLASS"`
	Timeout         string `env:"VALIDITY_TIMEOUT"`
	ValidateOnBlur  string `env:"VALIDITY_VALIDATE_ON_BLUR"`
	GroupPolicy     string `env:"VALIDITY_GROUP_POLICY"`
	LogLevel        string `env:"VALIDITY_LOG_LEVEL"`
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	envFile     string
	environment map[string]string
}

// WithEnvFile loads path with godotenv before reading the environment. A
// missing file is an error; without this option a .env file in the working
// directory is loaded when present.
func WithEnvFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.envFile = strings.TrimSpace(path)
	}
}

// WithEnvironment reads overrides from env instead of the process
// environment. No .env file is loaded.
func WithEnvironment(env map[string]string) LoadOption {
	return func(o *loadOptions) {
		o.environment = env
	}
}

var structValidator = validator.New()

// Load reads the YAML file at path, when path is not empty, and applies
// environment overrides.
func Load(path string, opts ...LoadOption) (Settings, error) {
	cfg := loadOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var s Settings
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %w", ErrReadFile, err)
		}
		if s, err = Decode(bytes.NewReader(data)); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	overrides, err := readEnv(cfg)
	if err != nil {
		return Settings{}, err
	}
	if err := s.apply(overrides); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Decode parses a YAML settings document. Unknown keys are rejected.
func Decode(r io.Reader) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrDecodeFile, err)
	}
	return s, nil
}

func readEnv(cfg loadOptions) (Env, error) {
	var e Env
	if cfg.environment != nil {
		if err := env.ParseWithOptions(&e, env.Options{Environment: cfg.environment}); err != nil {
			return Env{}, errors.Join(ErrParseEnv, err)
		}
		return e, nil
	}

	if cfg.envFile != "" {
		if err := godotenv.Load(cfg.envFile); err != nil {
			return Env{}, fmt.Errorf("%w: %w", ErrParseEnv, err)
		}
	} else {
		// the default .env is optional
		_ = godotenv.Load()
	}
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Join(ErrParseEnv, err)
	}
	return e, nil
}

func (s *Settings) apply(e Env) error {
	setString(&s.AttributeName, e.AttributeName)
	setString(&s.RequiredMessage, e.RequiredMessage)
	setString(&s.ParentSelector, e.ParentSelector)
	setString(&s.ErrorClass, e.ErrorClass)
	setString(&s.GroupPolicy, e.GroupPolicy)
	setString(&s.LogLevel, e.LogLevel)

	if e.Timeout != "" {
		t, err := ParseTimeout(e.Timeout)
		if err != nil {
			return fmt.Errorf("VALIDITY_TIMEOUT: %w", err)
		}
		s.Timeout = t
	}
	if e.ValidateOnBlur != "" {
		v, err := strconv.ParseBool(e.ValidateOnBlur)
		if err != nil {
			return fmt.Errorf("%w: VALIDITY_VALIDATE_ON_BLUR: %w", ErrParseEnv, err)
		}
		s.ValidateOnBlur = &v
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Validate checks field formats and every validator rule.
func (s Settings) Validate() error {
	if err := structValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if hasSpace(s.AttributeName) {
		return fmt.Errorf("%w: attribute_name %q contains whitespace", ErrInvalidSettings, s.AttributeName)
	}
	if s.ParentSelector != "" {
		if _, err := form.CompileSelector(s.ParentSelector); err != nil {
			return fmt.Errorf("%w: parent_selector: %w", ErrInvalidSettings, err)
		}
	}
	if hasSpace(s.ErrorClass) {
		return fmt.Errorf("%w: error_class %q contains whitespace", ErrInvalidSettings, s.ErrorClass)
	}
	for _, key := range s.ruleKeys() {
		if key == "" || hasSpace(key) {
			return fmt.Errorf("%w: validator key %q must be a single word", ErrInvalidSettings, key)
		}
		if _, err := s.Validators[key].Build(); err != nil {
			return fmt.Errorf("%w: validator %q: %w", ErrInvalidSettings, key, err)
		}
	}
	return nil
}

// Build turns the rule into a validator.
func (r Rule) Build() (validity.Validator, error) {
	set := 0
	if r.Tag != "" {
		set++
	}
	if r.Pattern != "" {
		set++
	}
	if len(r.OneOf) > 0 {
		set++
	}
	if set != 1 {
		return nil, ErrInvalidRule
	}

	switch {
	case r.Tag != "":
		return validators.Tag(r.Tag, r.Message)
	case r.Pattern != "":
		return validators.Pattern(r.Pattern, r.Message)
	default:
		return validators.OneOf(r.OneOf, r.Message), nil
	}
}

// Options converts the settings into validity options. Built-in validators
// are included unless builtin_validators is false; declared rules override
// them by key.
func (s Settings) Options() ([]validity.Option, error) {
	var opts []validity.Option
	if s.AttributeName != "" {
		opts = append(opts, validity.WithAttributeName(s.AttributeName))
	}
	if s.RequiredMessage != "" {
		opts = append(opts, validity.WithRequiredMessage(s.RequiredMessage))
	}
	if s.ParentSelector != "" {
		opts = append(opts, validity.WithParentSelector(s.ParentSelector))
	}
	if s.ErrorClass != "" {
		opts = append(opts, validity.WithErrorClass(s.ErrorClass))
	}
	if s.Timeout.Set {
		opts = append(opts, validity.WithTimeout(s.Timeout.Value))
	}
	if s.ValidateOnBlur != nil {
		opts = append(opts, validity.WithValidateOnBlur(*s.ValidateOnBlur))
	}
	if s.GroupPolicy != "" {
		opts = append(opts, validity.WithGroupPolicy(validity.GroupPolicy(s.GroupPolicy)))
	}

	if s.BuiltinValidators == nil || *s.BuiltinValidators {
		opts = append(opts, validity.WithValidators(validators.Defaults()))
	}
	for _, key := range s.ruleKeys() {
		fn, err := s.Validators[key].Build()
		if err != nil {
			return nil, fmt.Errorf("%w: validator %q: %w", ErrInvalidSettings, key, err)
		}
		opts = append(opts, validity.WithValidator(key, fn))
	}
	return opts, nil
}

func hasSpace(v string) bool {
	return strings.ContainsAny(v, " \t\n\r")
}

func (s Settings) ruleKeys() []string {
	keys := make([]string, 0, len(s.Validators))
	for key := range s.Validators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
