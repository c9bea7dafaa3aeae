package validators

import "errors"

var (
	// ErrInvalidTag is returned when a go-playground/validator tag cannot be
	// compiled.
	ErrInvalidTag = errors.New("validators: invalid tag")
	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("validators: invalid pattern")
)
