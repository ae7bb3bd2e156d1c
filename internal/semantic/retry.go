package semantic

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier wraps a Provider and re-sends prompts on transient failures
// with capped exponential backoff. Truncation and context errors are
// never retried; a schema-violating output gets exactly one more try.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry decorates a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	badOutputSeen := false

	var err error
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var c *Completion
		c, err = r.inner.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		if !retryable(err, &badOutputSeen) || attempt == r.cfg.MaxAttempts-1 {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, err
}

// retryable reports whether the failed attempt is worth repeating.
func retryable(err error, badOutputSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var trunc *ErrTruncated
	if errors.As(err, &trunc) {
		// The token cap is a configuration problem, not a flake.
		return false
	}

	var bad *ErrBadOutput
	if errors.As(err, &bad) {
		if *badOutputSeen {
			return false
		}
		*badOutputSeen = true
		return true
	}

	// Rate limits, 5xx and plain transport errors all count as
	// transient.
	return true
}

// wait returns the backoff before the next attempt. A rate limit with
// a server-supplied delay wins over the computed backoff.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimited
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	base := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	base = math.Min(base, float64(r.cfg.MaxWait))

	// Spread within +-20% so synchronized clients fan out.
	base *= 1 + 0.2*(2*rand.Float64()-1)
	if base < 0 {
		base = 0
	}
	return time.Duration(base)
}
