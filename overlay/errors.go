package overlay

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned for operations on an unknown overlay id.
var ErrNotFound = errors.New("overlay not found")

// InvalidColorError reports a color string that failed validation. Returned
// before any window work happens, so a failed Create leaves no trace.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Value)
}

// InvalidInputError reports a non-color configuration problem, such as a
// non-positive dimension.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PlatformError wraps a native toolkit or OS failure.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err is a validation failure (bad color or
// bad dimensions) rather than a runtime one.
func IsInvalidInput(err error) bool {
	var ce *InvalidColorError
	var ie *InvalidInputError
	return errors.As(err, &ce) || errors.As(err, &ie)
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
