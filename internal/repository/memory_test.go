package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

func TestMemoryStore_ReadMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.ReadSaveData(context.Background(), "slot", "key")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSaveDataNotFound)
}

func TestMemoryStore_WriteRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	blob := []byte("hello")
	require.NoError(t, store.WriteSaveData(ctx, "slot", "key", blob))
	blob[0] = 'j' // caller mutation must not leak into the store

	got, err := store.ReadSaveData(ctx, "slot", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	_, err = store.ReadSaveData(ctx, "other-slot", "key")
	assert.ErrorIs(t, err, domain.ErrSaveDataNotFound)
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.WriteSaveData(ctx, "slot", "key", []byte("v1")))
	require.NoError(t, store.WriteSaveData(ctx, "slot", "key", []byte("v2")))

	got, err := store.ReadSaveData(ctx, "slot", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestMemoryStore_ListSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.WriteSaveData(ctx, "b_2", "AdditionalCropData", []byte("x")))
	require.NoError(t, store.WriteSaveData(ctx, "a_1", "AdditionalCropData", []byte("x")))
	require.NoError(t, store.WriteSaveData(ctx, "a_1", "OtherModData", []byte("x")))

	slots, err := store.ListSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_1", "b_2"}, slots)
}
