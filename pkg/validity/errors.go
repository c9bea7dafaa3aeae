package validity

import "errors"

var (
	// ErrFormRequired is returned by Apply when the form handle is nil.
	ErrFormRequired = errors.New("validity: form is required")
	// ErrDiscoveryRequired is returned when no Discovery collaborator is set.
	ErrDiscoveryRequired = errors.New("validity: discovery collaborator is required")
	// ErrLayoutRequired is returned when no Layout collaborator is set.
	ErrLayoutRequired = errors.New("validity: layout collaborator is required")
	// ErrInvalidParentSelector is returned by Apply when the layout rejects
	// the configured parent selector.
	ErrInvalidParentSelector = errors.New("validity: invalid parent selector")
)

// Rejection is the error a validator returns to reject a value. Its text is
// the user-facing message.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Reject returns a rejection carrying message.
func Reject(message string) error {
	return &Rejection{Message: message}
}
