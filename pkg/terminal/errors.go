package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrTooManyAttempts is returned when a field stays invalid after the
	// configured number of prompts.
	ErrTooManyAttempts = errors.New("terminal: too many attempts")
	// ErrMissingForm is returned when Run is called without a document or
	// validation context.
	ErrMissingForm = errors.New("terminal: document and validation context are required")
)
