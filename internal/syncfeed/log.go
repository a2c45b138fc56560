// Package syncfeed implements the cross-process change feed. Pages in other
// processes mirror the browser's storage-event model: every write to the
// shared store bumps a revision, and observers poll for revisions newer than
// the last one they saw, then re-read the changed keys.
package syncfeed

import (
	"sort"
	"sync"
)

// Log tracks a monotonically increasing revision per key. It carries no
// values; readers go back to the store for those.
type Log struct {
	mu   sync.Mutex
	rev  uint64
	keys map[string]uint64
}

// NewLog returns an empty Log at revision zero.
func NewLog() *Log {
	return &Log{keys: make(map[string]uint64)}
}

// Bump records a change to key and returns the new global revision.
func (l *Log) Bump(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rev++
	l.keys[key] = l.rev
	return l.rev
}

// Revision returns the current global revision.
func (l *Log) Revision() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rev
}

// Since returns the current revision and the keys changed after since,
// sorted for stable output. A reader that stores the returned revision and
// re-reads the listed keys observes every write at least once.
func (l *Log) Since(since uint64) (uint64, []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var changed []string
	for key, rev := range l.keys {
		if rev > since {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return l.rev, changed
}
