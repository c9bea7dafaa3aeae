package htmlform

import "errors"

var (
	// ErrNoForm is returned when the markup contains no matching form element.
	ErrNoForm = errors.New("htmlform: no form element found")
	// ErrNilDocument is returned by Render for a nil or empty document.
	ErrNilDocument = errors.New("htmlform: document is required")
)
