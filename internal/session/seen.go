package session

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSeenCapacity bounds the seen-event set. At typical event volume
// this covers weeks of continuous session time before anything evicts.
const DefaultSeenCapacity = 8192

// Tracker remembers which event ids have already been surfaced to the
// user during this session. Marking is idempotent; once marked, an id
// stays seen until it ages out of the LRU. Safe for concurrent use.
type Tracker struct {
	cache *lru.Cache[int64, struct{}]
}

// NewTracker creates a tracker bounded to capacity ids. A non-positive
// capacity falls back to DefaultSeenCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultSeenCapacity
	}
	cache, _ := lru.New[int64, struct{}](capacity)
	return &Tracker{cache: cache}
}

// IsNew reports whether id has not been marked seen. Does not mutate.
func (t *Tracker) IsNew(id int64) bool {
	return !t.cache.Contains(id)
}

// MarkSeen records id as surfaced. Marking an already-seen id is a no-op.
func (t *Tracker) MarkSeen(id int64) {
	t.cache.ContainsOrAdd(id, struct{}{})
}

// Count returns the number of ids currently tracked.
func (t *Tracker) Count() int {
	return t.cache.Len()
}
