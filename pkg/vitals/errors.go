package vitals

import (
	"errors"

	"liyu1981.xyz/vitals-console/pkg/threshold"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNoDraft            = errors.New("no matching draft to publish")
	ErrForbidden          = errors.New("forbidden")
	ErrServiceUnavailable = errors.New("configuration storage unavailable")
	ErrNotFound           = errors.New("not found")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries the full batch of violations; errors.Is matches ErrValidationFailed.
type ValidationError struct {
	Violations threshold.Violations
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + e.Violations.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func (e *ValidationError) Details() []string {
	return e.Violations.Messages()
}

func newValidationError(violations threshold.Violations) error {
	return &ValidationError{Violations: violations}
}
