package semantic

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider replays queued outputs in FIFO order and records every
// prompt it receives. An empty queue behaves like an outage.
type MockProvider struct {
	mu      sync.Mutex
	queue   []mockTurn
	Prompts []Prompt
}

type mockTurn struct {
	json json.RawMessage
	err  error
}

// NewMockProvider returns an empty mock. Queue outputs with QueueJSON
// and QueueError.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// QueueJSON appends a successful output to the reply queue.
func (m *MockProvider) QueueJSON(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockTurn{json: json.RawMessage(s)})
}

// QueueError appends a failing turn to the reply queue.
func (m *MockProvider) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockTurn{err: err})
}

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, p)

	if len(m.queue) == 0 {
		return nil, &ErrUnavailable{}
	}
	turn := m.queue[0]
	m.queue = m.queue[1:]

	if turn.err != nil {
		return nil, turn.err
	}
	return &Completion{JSON: turn.json, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns how many prompts the mock has seen.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
