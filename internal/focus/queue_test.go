package focus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/store"
)

// queueMockRepo implements store.EventRepo with controllable failures.
type queueMockRepo struct {
	mu       sync.Mutex
	appended []store.BrowsingEventData
	failures int // fail this many appends before succeeding
}

func (m *queueMockRepo) Append(_ context.Context, data store.BrowsingEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("disk full")
	}
	m.appended = append(m.appended, data)
	return nil
}

func (m *queueMockRepo) Query(context.Context, string, store.QueryOpts) ([]store.BrowsingEventRecord, error) {
	return nil, nil
}

func (m *queueMockRepo) Today(context.Context, string, time.Time) ([]store.BrowsingEventRecord, error) {
	return nil, nil
}

func (m *queueMockRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.appended)
}

func TestQueuePersistsEvents(t *testing.T) {
	repo := &queueMockRepo{}
	drops := 0
	q := newPersistQueue(repo, 8, 2, func(string) { drops++ })

	for i := 0; i < 3; i++ {
		q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"})
	}
	q.Close()

	if got := repo.count(); got != 3 {
		t.Errorf("persisted = %d, want 3", got)
	}
	if drops != 0 {
		t.Errorf("drops = %d, want 0", drops)
	}
}

func TestQueueRetriesThenSucceeds(t *testing.T) {
	repo := &queueMockRepo{failures: 1}
	drops := 0
	q := newPersistQueue(repo, 8, 3, func(string) { drops++ })

	q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"})
	q.Close()

	if got := repo.count(); got != 1 {
		t.Errorf("persisted = %d, want 1", got)
	}
	if drops != 0 {
		t.Errorf("drops = %d, want 0", drops)
	}
}

func TestQueueDropsAfterRetryExhaustion(t *testing.T) {
	repo := &queueMockRepo{failures: 100}
	var mu sync.Mutex
	dropped := []string{}
	q := newPersistQueue(repo, 8, 2, func(userID string) {
		mu.Lock()
		dropped = append(dropped, userID)
		mu.Unlock()
	})

	q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"})
	q.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(dropped) != 1 || dropped[0] != "alice" {
		t.Errorf("dropped = %v, want [alice]", dropped)
	}
}

// stallRepo blocks Append until released, signalling when the worker
// has picked up an event.
type stallRepo struct {
	started chan struct{}
	release chan struct{}
}

func newStallRepo() *stallRepo {
	return &stallRepo{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (r *stallRepo) Append(ctx context.Context, _ store.BrowsingEventData) error {
	r.started <- struct{}{}
	select {
	case <-r.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *stallRepo) Query(context.Context, string, store.QueryOpts) ([]store.BrowsingEventRecord, error) {
	return nil, nil
}

func (r *stallRepo) Today(context.Context, string, time.Time) ([]store.BrowsingEventRecord, error) {
	return nil, nil
}

func TestQueueFullRejectsWithoutCallback(t *testing.T) {
	// Depth 1 with the worker stalled inside Append: the first event is
	// in flight, the second fills the channel, the third must be
	// rejected synchronously — and onDrop must NOT run, because Enqueue
	// callers hold the user's lock that onDrop would take.
	repo := newStallRepo()
	drops := 0
	q := newPersistQueue(repo, 1, 1, func(string) { drops++ })

	if !q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"}) {
		t.Fatal("first enqueue rejected")
	}
	<-repo.started // worker holds the first event

	if !q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"}) {
		t.Fatal("second enqueue rejected with an empty channel")
	}
	if q.Enqueue(store.BrowsingEventData{UserID: "alice", Domain: "example.com"}) {
		t.Error("third enqueue accepted with a full channel")
	}
	if drops != 0 {
		t.Errorf("onDrop ran %d times on the enqueue path, want 0", drops)
	}

	close(repo.release)
	q.Close()
}
