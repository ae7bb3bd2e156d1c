package semantic

import (
	"context"
	"log"
	"time"
)

// loggingProvider records the outcome of every prompt.
type loggingProvider struct {
	inner Provider
}

// WithLogging decorates a Provider with outcome logging.
func WithLogging(p Provider) Provider {
	return &loggingProvider{inner: p}
}

func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	c, err := l.inner.Complete(ctx, p)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		log.Printf("llm %s purpose=%s latency=%s error=%v", l.inner.ModelID(), purpose, elapsed, err)
		return nil, err
	}
	log.Printf("llm %s purpose=%s latency=%s in=%d out=%d", c.Model, purpose, elapsed, c.TokensIn, c.TokensOut)
	return c, nil
}
