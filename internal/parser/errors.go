package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Parse when the input is blank or
// whitespace-only. Callers re-prompt; nothing else in this package fails.
var ErrEmptyInput = errors.New("task input is empty")

// InvalidOverrideError reports an override value outside its enumerated
// domain. Recoverable: the hydrator falls back to the parsed value or the
// field default instead of aborting capture.
type InvalidOverrideError struct {
	Field string
	Value string
}

func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("invalid %s override %q, using parsed value", e.Field, e.Value)
}

// MalformedDurationError reports a non-positive estimate override.
// Recoverable: the hydrator keeps the parsed estimate, if any.
type MalformedDurationError struct {
	Minutes int
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("estimated minutes must be positive, got %d", e.Minutes)
}
