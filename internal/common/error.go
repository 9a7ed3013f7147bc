// Package common defines shared constants and sentinel errors used across
// the client layers of Brainly. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrorEmptyField = errors.New("required field is empty")
	ErrUnknownKind  = errors.New("unknown content kind")
)
