package form

import "errors"

var (
	// ErrUnknownControl is returned when no control carries the requested name.
	ErrUnknownControl = errors.New("form: unknown control")
	// ErrNoSuchOption is returned when a value matches none of a control's
	// options.
	ErrNoSuchOption = errors.New("form: no such option")
	// ErrNotEditable is returned when a value is written to a non-control.
	ErrNotEditable = errors.New("form: element is not an editable control")
)

// ErrInvalidSelector is returned for a parent selector that does not parse.
var ErrInvalidSelector = errors.New("form: invalid selector")
