package focus

import "sync"

// lockTable hands out one mutex per user so that operations on the same
// user serialize while different users proceed in parallel. Entries are
// never removed; the per-user footprint is one mutex.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for userID, creating it on first use.
func (t *lockTable) get(userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	return l
}
