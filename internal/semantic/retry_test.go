package semantic

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryFirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"ok":true}`)
	p := WithRetry(mock, fastRetry())

	c, err := p.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if string(c.JSON) != `{"ok":true}` {
		t.Errorf("json = %s, want {\"ok\":true}", c.JSON)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRetryOutageThenRecovery(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrUnavailable{Err: errors.New("503")})
	mock.QueueJSON(`{"ok":true}`)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider()
	for range 5 {
		mock.QueueError(&ErrUnavailable{Err: errors.New("503")})
	}
	p := WithRetry(mock, fastRetry())

	if _, err := p.Complete(context.Background(), Prompt{}); err == nil {
		t.Fatal("want error after exhausting attempts")
	}
	if got := mock.CallCount(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRetryTruncationNotRetried(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrTruncated{})
	mock.QueueJSON(`{"ok":true}`)
	p := WithRetry(mock, fastRetry())

	_, err := p.Complete(context.Background(), Prompt{})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("err = %T, want *ErrTruncated", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRetryBadOutputRetriedOnce(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrBadOutput{Err: errors.New("not the schema")})
	mock.QueueError(&ErrBadOutput{Err: errors.New("still not")})
	mock.QueueJSON(`{"ok":true}`) // never reached
	p := WithRetry(mock, fastRetry())

	if _, err := p.Complete(context.Background(), Prompt{}); err == nil {
		t.Fatal("want error after second bad output")
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrUnavailable{Err: errors.New("503")})
	mock.QueueJSON(`{"ok":true}`)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Complete(ctx, Prompt{}); err == nil {
		t.Fatal("want error with canceled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrRateLimited{RetryAfter: time.Millisecond, Err: errors.New("429")})
	mock.QueueJSON(`{"ok":true}`)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestRetryModelIDPassesThrough(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if got := p.ModelID(); got != "mock" {
		t.Errorf("model = %q, want mock", got)
	}
}
