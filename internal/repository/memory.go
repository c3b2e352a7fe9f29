package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// MemoryStore is an in-process SaveDataStore. Nothing survives a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func memoryKey(slot, key string) string {
	return slot + "/" + key
}

// ReadSaveData returns a copy of the stored blob
func (m *MemoryStore) ReadSaveData(ctx context.Context, slot, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.data[memoryKey(slot, key)]
	if !ok {
		return nil, fmt.Errorf("%w: slot %q key %q", domain.ErrSaveDataNotFound, slot, key)
	}
	return append([]byte(nil), blob...), nil
}

// WriteSaveData stores a copy of blob
func (m *MemoryStore) WriteSaveData(ctx context.Context, slot, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[memoryKey(slot, key)] = append([]byte(nil), blob...)
	return nil
}

// ListSlots returns every slot with stored data, sorted
func (m *MemoryStore) ListSlots(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var slots []string
	for k := range m.data {
		slot, _, _ := strings.Cut(k, "/")
		if !slices.Contains(slots, slot) {
			slots = append(slots, slot)
		}
	}
	slices.Sort(slots)
	return slots, nil
}
