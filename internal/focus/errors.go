package focus

import (
	"fmt"
)

// ErrInvalidInput indicates a request field failed validation. The
// caller's state is untouched when this is returned.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrStateUnavailable indicates the persistence layer could not serve a
// read the operation depends on. Timeouts count the same as hard
// failures. Checks fail open on this; queries surface it to the caller.
type ErrStateUnavailable struct {
	Err error
}

func (e *ErrStateUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("state unavailable: %v", e.Err)
	}
	return "state unavailable"
}

func (e *ErrStateUnavailable) Unwrap() error { return e.Err }
