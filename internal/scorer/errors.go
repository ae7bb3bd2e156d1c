package scorer

import "fmt"

// ErrModelInput indicates the model artifact and the live feature schema
// disagree. It is a recoverable condition: callers fall back to the rule
// scorer rather than failing the check.
type ErrModelInput struct {
	Reason string
	Err    error
}

func (e *ErrModelInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model input mismatch: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("model input mismatch: %s", e.Reason)
}

func (e *ErrModelInput) Unwrap() error { return e.Err }
