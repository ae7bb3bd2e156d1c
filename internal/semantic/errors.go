package semantic

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimited is a 429 from the provider. RetryAfter is zero when
// the provider gave no hint.
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrBadOutput means the model produced output that is not the JSON
// the schema asked for. Raw holds what came back.
type ErrBadOutput struct {
	Raw json.RawMessage
	Err error
}

func (e *ErrBadOutput) Error() string {
	return fmt.Sprintf("bad model output: %v", e.Err)
}

func (e *ErrBadOutput) Unwrap() error { return e.Err }

// ErrUnavailable covers provider 5xx responses and transport failures.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrTruncated means the output hit the MaxTokens cap before the model
// finished. Retrying with the same cap would truncate again.
type ErrTruncated struct {
	Raw json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "model output truncated at the token cap"
}
