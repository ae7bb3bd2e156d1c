package focus

import (
	"sync"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

// stateCache holds the in-memory per-user states plus the check counter
// driving periodic snapshots. The map is guarded by its own mutex; the
// states themselves are guarded by the per-user locks in lockTable.
type stateCache struct {
	mu     sync.Mutex
	states map[string]*pattern.State
	checks map[string]int
}

func newStateCache() *stateCache {
	return &stateCache{
		states: make(map[string]*pattern.State),
		checks: make(map[string]int),
	}
}

func (c *stateCache) peek(userID string) (*pattern.State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[userID]
	return s, ok
}

func (c *stateCache) put(userID string, s *pattern.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[userID] = s
}

// bumpChecks increments and returns the checks-since-snapshot counter.
func (c *stateCache) bumpChecks(userID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[userID]++
	return c.checks[userID]
}

func (c *stateCache) resetChecks(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[userID] = 0
}
