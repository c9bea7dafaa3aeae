package validators

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-validity/pkg/validity"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func tagEngine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New()
	})
	return engine
}

// Tag returns a validator that checks values against a go-playground
// validator tag such as "email", "url" or "min=3,max=20". Empty values are
// accepted. The tag is compiled up front; an unknown tag yields
// ErrInvalidTag.
func Tag(tag, message string) (validity.Validator, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: tag is empty", ErrInvalidTag)
	}
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	if message == "" {
		message = fmt.Sprintf("Value does not satisfy %q", tag)
	}

	v := tagEngine()
	return func(value, _ string, _ validity.Control) error {
		if value == "" {
			return nil
		}
		if err := v.Var(value, tag); err != nil {
			return validity.Reject(message)
		}
		return nil
	}, nil
}

// MustTag is like Tag but panics on an invalid tag.
func MustTag(tag, message string) validity.Validator {
	fn, err := Tag(tag, message)
	if err != nil {
		panic(err)
	}
	return fn
}

// checkTag runs the tag once against a sample value. The validator package
// panics on undefined tags instead of returning an error.
func checkTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	_ = tagEngine().Var("sample", tag)
	return nil
}
