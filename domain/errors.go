package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks every validation failure. Callers map it to a
// usage error (CLI) or a 400 response (web).
var ErrInvalidInput = errors.New("invalid input")

// Invalidf builds a validation error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
