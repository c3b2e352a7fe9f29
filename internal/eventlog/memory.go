package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the most recent entries in process memory. Once
// capacity is reached the oldest entry is dropped for each new one.
type MemoryRepository struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	nextID   int64
	now      func() time.Time
}

// NewMemoryRepository creates an in-memory journal holding at most capacity entries
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity < 1 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryRepository{capacity: capacity, now: time.Now}
}

// LogEvent appends entry
func (r *MemoryRepository) LogEvent(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	if len(r.entries) == r.capacity {
		r.entries = append(r.entries[:0], r.entries[1:]...)
	}
	r.entries = append(r.entries, entry)
	return nil
}

// GetEvents returns matching entries, newest first
func (r *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if !filter.Matches(r.entries[i]) {
			continue
		}
		out = append(out, r.entries[i])
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// CleanupOldEvents drops entries created more than retentionDays ago
func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	kept := r.entries[:0]
	var removed int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}
