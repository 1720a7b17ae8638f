package domain

import (
	"errors"
	"fmt"
)

// Error kinds for the advisory pipeline.
var (
	// ErrInvalidInput marks malformed or out-of-range profile fields,
	// reported before any computation starts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExternalService marks a failed narrative request. Always recovered
	// locally via the fallback note, never surfaced as a hard failure.
	ErrExternalService = errors.New("external service error")

	// ErrConfigurationMissing marks an absent API credential. Degrades to
	// the fallback note, never blocks the core projection.
	ErrConfigurationMissing = errors.New("configuration missing")
)

// InvalidInputf wraps ErrInvalidInput with a field-level message.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
