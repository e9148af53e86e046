package middlewares

import (
	"errors"
	"fmt"
)

// PanicError is returned by Recover in place of a panic.
type PanicError struct {
	Path  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic serving %s: %v", e.Path, e.Value)
}

// AsPanicError unwraps err to a PanicError.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
