package hashing

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Tracker counts position occurrences by key. It is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	counts map[uint64]int
	total  int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[uint64]int)}
}

// Record adds pos and returns how many times it has now been seen.
func (t *Tracker) Record(pos *chess.Position) int {
	key := Key(pos)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[key]++
	t.total++
	return t.counts[key]
}

// Count returns how many times the key has been recorded.
func (t *Tracker) Count(key uint64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.counts[key]
}

// UniqueCount returns the number of distinct positions recorded.
func (t *Tracker) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.counts)
}

// RepeatCount returns the number of recordings that repeated an earlier position.
func (t *Tracker) RepeatCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.total - len(t.counts)
}

// Reset clears the tracker.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = make(map[uint64]int)
	t.total = 0
}
