// Package validators provides ready-made validity.Validator implementations
// and a named registry to collect them.
//
// Rule validators accept the empty string so that emptiness stays the
// concern of the required validator the engine prepends to required
// controls. Tag builds a validator from any go-playground/validator tag,
// which is how Email, URL, MinLength and friends are implemented.
package validators
