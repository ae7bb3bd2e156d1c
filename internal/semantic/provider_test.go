package semantic

import (
	"context"
	"errors"
	"testing"
)

func TestMockReplaysInOrder(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"a":1}`)
	mock.QueueJSON(`{"b":2}`)

	c1, err := mock.Complete(context.Background(), Prompt{Input: "first"})
	if err != nil {
		t.Fatalf("complete 1: %v", err)
	}
	if string(c1.JSON) != `{"a":1}` {
		t.Errorf("json 1 = %s, want {\"a\":1}", c1.JSON)
	}
	if c1.Model != "mock" {
		t.Errorf("model = %q, want mock", c1.Model)
	}

	c2, err := mock.Complete(context.Background(), Prompt{Input: "second"})
	if err != nil {
		t.Fatalf("complete 2: %v", err)
	}
	if string(c2.JSON) != `{"b":2}` {
		t.Errorf("json 2 = %s, want {\"b\":2}", c2.JSON)
	}
}

func TestMockEmptyQueueIsAnOutage(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Complete(context.Background(), Prompt{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want *ErrUnavailable", err)
	}
}

func TestMockRecordsPrompts(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{}`)

	_, _ = mock.Complete(context.Background(), Prompt{System: "sys", Input: "hello"})

	if got := mock.CallCount(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
	if mock.Prompts[0].System != "sys" {
		t.Errorf("system = %q, want sys", mock.Prompts[0].System)
	}
	if mock.Prompts[0].Input != "hello" {
		t.Errorf("input = %q, want hello", mock.Prompts[0].Input)
	}
}

func TestMockQueuedErrorsSurface(t *testing.T) {
	mock := NewMockProvider()
	sentinel := errors.New("boom")
	mock.QueueError(sentinel)
	mock.QueueJSON(`{}`)

	if _, err := mock.Complete(context.Background(), Prompt{}); !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if _, err := mock.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("second complete: %v", err)
	}
}
