package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-validity/pkg/validity"
)

// Required rejects the empty value with message.
func Required(message string) validity.Validator {
	return validity.RequiredValidator(message)
}

// Email accepts values that parse as an email address.
func Email(message string) validity.Validator {
	if message == "" {
		message = "Please enter a valid email address"
	}
	return MustTag("email", message)
}

// URL accepts absolute URLs.
func URL(message string) validity.Validator {
	if message == "" {
		message = "Please enter a valid URL"
	}
	return MustTag("url", message)
}

// Numeric accepts signed integers and decimals.
func Numeric(message string) validity.Validator {
	if message == "" {
		message = "Please enter a number"
	}
	return MustTag("numeric", message)
}

// MinLength rejects values shorter than n characters.
func MinLength(n int, message string) validity.Validator {
	if message == "" {
		message = fmt.Sprintf("Please use at least %d characters", n)
	}
	return MustTag(fmt.Sprintf("min=%d", n), message)
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int, message string) validity.Validator {
	if message == "" {
		message = fmt.Sprintf("Please use at most %d characters", n)
	}
	return MustTag(fmt.Sprintf("max=%d", n), message)
}

// Pattern rejects values that do not fully match expr.
func Pattern(expr, message string) (validity.Validator, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if message == "" {
		message = "Please match the requested format"
	}
	return func(value, _ string, _ validity.Control) error {
		if value == "" || re.MatchString(value) {
			return nil
		}
		return validity.Reject(message)
	}, nil
}

// OneOf accepts only the listed values. Comparison is exact.
func OneOf(values []string, message string) validity.Validator {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	if message == "" {
		message = "Please choose one of: " + strings.Join(values, ", ")
	}
	return func(value, _ string, _ validity.Control) error {
		if value == "" {
			return nil
		}
		if _, ok := allowed[value]; ok {
			return nil
		}
		return validity.Reject(message)
	}
}

// Matches rejects values that differ from the value of the control named
// other, as reported by lookup. It is meant for confirmation fields.
func Matches(other string, lookup func(name string) (string, bool), message string) validity.Validator {
	if message == "" {
		message = "Values do not match"
	}
	return func(value, _ string, _ validity.Control) error {
		want, ok := lookup(other)
		if !ok || value == want {
			return nil
		}
		return validity.Reject(message)
	}
}

// Defaults returns the built-in validators keyed by their usual attribute
// names. The map is fresh on every call. It has no required entry: the
// engine builds that one from Config.RequiredMessage.
func Defaults() map[string]validity.Validator {
	return map[string]validity.Validator{
		"email":              Email(""),
		"url":                URL(""),
		"numeric":            Numeric(""),
		"alpha":              MustTag("alpha", "Please use letters only"),
		"alphanum":           MustTag("alphanum", "Please use letters and digits only"),
	}
}
