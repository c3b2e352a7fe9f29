package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func seededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	tables := savedata.NewTables()
	tables.CropDictionary["Farm|1|1"] = domain.TrackedCrop{OriginalSeasons: []string{"spring"}, OriginalRegrowDays: -1}
	tables.CropDictionary["Greenhouse|0|0"] = domain.TrackedCrop{OriginalSeasons: []string{"summer"}, OriginalRegrowDays: 4}

	blob, err := savedata.Encode(tables, true)
	require.NoError(t, err)

	store := repository.NewMemoryStore()
	require.NoError(t, store.WriteSaveData(context.Background(), "Farmer_1", savedata.DataKey, blob))
	return store
}

func TestPrintSlot(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSlot(testCommand(), seededStore(t), "Farmer_1", "", &out))

	var tables savedata.Tables
	require.NoError(t, json.Unmarshal(out.Bytes(), &tables))
	assert.Len(t, tables.CropDictionary, 2)
}

func TestPrintSlot_Location(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSlot(testCommand(), seededStore(t), "Farmer_1", "Farm", &out))

	var tables savedata.Tables
	require.NoError(t, json.Unmarshal(out.Bytes(), &tables))
	assert.Len(t, tables.CropDictionary, 1)
	assert.Contains(t, tables.CropDictionary, "Farm|1|1")
}

func TestPrintSlot_Missing(t *testing.T) {
	var out bytes.Buffer
	err := printSlot(testCommand(), seededStore(t), "Nobody", "", &out)
	assert.ErrorIs(t, err, domain.ErrSaveDataNotFound)
}

func TestListSlots(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listSlots(testCommand(), seededStore(t), &out))
	assert.Equal(t, "Farmer_1\n", out.String())
}

func TestResolveSlot(t *testing.T) {
	cfg := &config.Config{SaveSlot: "FromEnv"}

	slot, err := resolveSlot(cfg, []string{"FromArg"})
	require.NoError(t, err)
	assert.Equal(t, "FromArg", slot)

	slot, err = resolveSlot(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", slot)

	slot, err = resolveSlot(&config.Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Farmer_123456", slot, "falls back to the embedded layout")
}
