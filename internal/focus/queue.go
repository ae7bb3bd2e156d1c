package focus

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/store"
)

const (
	defaultQueueDepth  = 256
	defaultMaxRetries  = 3
	queueRetryInterval = 500 * time.Millisecond
)

// persistQueue decouples event persistence from the ingest path. Writes
// that fail are retried a bounded number of times; events dropped after
// retry exhaustion are reported through onDrop so the user's lost-event
// counter stays honest. A full queue is reported to the caller instead:
// Enqueue returns false and the caller, which already holds the user's
// lock, counts the drop itself. onDrop runs only on the worker goroutine
// and may take that lock.
type persistQueue struct {
	repo       store.EventRepo
	ch         chan store.BrowsingEventData
	maxRetries int
	onDrop     func(userID string)

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func newPersistQueue(repo store.EventRepo, depth, maxRetries int, onDrop func(userID string)) *persistQueue {
	if depth <= 0 {
		depth = defaultQueueDepth
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	q := &persistQueue{
		repo:       repo,
		ch:         make(chan store.BrowsingEventData, depth),
		maxRetries: maxRetries,
		onDrop:     onDrop,
		stop:       make(chan struct{}),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// Enqueue hands an event to the persistence worker. Never blocks: when
// the queue is full the event is dropped and false is returned so the
// caller can count the loss. onDrop is deliberately not invoked here —
// it locks the user's state, and Enqueue's callers already hold that
// lock.
func (q *persistQueue) Enqueue(data store.BrowsingEventData) bool {
	select {
	case q.ch <- data:
		return true
	default:
		return false
	}
}

// Close drains the queue and stops the worker. Safe to call more than
// once.
func (q *persistQueue) Close() {
	q.stopOnce.Do(func() { close(q.stop) })
	q.wg.Wait()
}

func (q *persistQueue) run() {
	defer q.wg.Done()
	for {
		select {
		case data := <-q.ch:
			q.persist(data)
		case <-q.stop:
			// Drain whatever is already queued.
			for {
				select {
				case data := <-q.ch:
					q.persist(data)
				default:
					return
				}
			}
		}
	}
}

func (q *persistQueue) persist(data store.BrowsingEventData) {
	var err error
	for attempt := 0; attempt < q.maxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = q.repo.Append(ctx, data)
		cancel()
		if err == nil {
			return
		}
		select {
		case <-q.stop:
			// Shutting down; skip the backoff and retry immediately.
		case <-time.After(queueRetryInterval):
		}
	}
	log.Printf("dropping event for %s after %d attempts: %v", data.UserID, q.maxRetries, err)
	q.onDrop(data.UserID)
}
