package repository

import (
	"context"
)

// SaveDataStore persists opaque blobs per save slot, the way the host's
// save-data API stores mod data alongside a save file
type SaveDataStore interface {
	// ReadSaveData returns the blob stored under key for slot.
	// Returns domain.ErrSaveDataNotFound when nothing has been written yet.
	ReadSaveData(ctx context.Context, slot, key string) ([]byte, error)

	// WriteSaveData replaces the blob stored under key for slot
	WriteSaveData(ctx context.Context, slot, key string, blob []byte) error
}

// SlotLister is implemented by stores that can enumerate saved slots
type SlotLister interface {
	ListSlots(ctx context.Context) ([]string, error)
}
