package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:          "info",
		LogFormat:         "text",
		LogDir:            t.TempDir(),
		Environment:       "test",
		ServiceName:       "cropsaver",
		SaveBackend:       backend,
		SaveDir:           t.TempDir(),
		CompressSaves:     true,
		DBMaxConns:        1,
		MetadataCacheSize: 16,
		MetadataCacheTTL:  time.Minute,
		AutoHarvest:       true,

		EventRetentionDays: 7,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestInstallLogger(t *testing.T) {
	var buf bytes.Buffer
	installLogger(testConfig(t, config.BackendMemory), &buf)
	assert.Contains(t, buf.String(), LogMsgLoggingInitialized)
	assert.Contains(t, buf.String(), "service=cropsaver")
	assert.Contains(t, buf.String(), "save_backend="+config.BackendMemory)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := OpenStore(ctx, testConfig(t, config.BackendMemory))
		require.NoError(t, err)
		defer store.Close()

		_, err = store.ReadSaveData(ctx, "slot", savedata.DataKey)
		assert.ErrorIs(t, err, domain.ErrSaveDataNotFound)
		assert.NotNil(t, store.Events)
	})

	t.Run("badger", func(t *testing.T) {
		store, err := OpenStore(ctx, testConfig(t, config.BackendBadger))
		require.NoError(t, err)

		require.NoError(t, store.WriteSaveData(ctx, "slot", savedata.DataKey, []byte("{}")))
		blob, err := store.ReadSaveData(ctx, "slot", savedata.DataKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), blob)
		assert.NoError(t, store.Close())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := OpenStore(ctx, testConfig(t, "floppy"))
		assert.Error(t, err)
	})
}

func TestInitializeEngine(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendMemory)
	store, err := OpenStore(ctx, cfg)
	require.NoError(t, err)

	bus := InitializeEventSystem()
	engine, err := InitializeEngine(cfg, bus, store)
	require.NoError(t, err)
	journal := InitializeEventLog(bus, store.Events, engine.Saver)
	assert.NotEmpty(t, engine.Slot, "slot falls back to the layout's")

	ready := engine.ReadyCheck()
	assert.Error(t, ready.CheckHealth(ctx))

	results, err := engine.Runner.RunDays(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NoError(t, ready.CheckHealth(ctx))
	assert.Positive(t, engine.Saver.TrackedCount())

	blob, err := store.ReadSaveData(ctx, engine.Slot, savedata.DataKey)
	require.NoError(t, err)
	assert.True(t, savedata.IsCompressed(blob))

	tracked, err := journal.GetEvents(ctx, eventlog.Filter{Slot: engine.Slot, EventType: string(event.CropTracked)})
	require.NoError(t, err)
	assert.NotEmpty(t, tracked)

	GracefulShutdown(ctx, ShutdownComponents{Runner: engine.Runner, Store: store})
	assert.Empty(t, engine.Saver.Slot())
}

func TestLogCropEvent(t *testing.T) {
	evt := event.NewCropEvent(event.CropKilled, "Farm|1|1", "out of season")
	assert.NoError(t, logCropEvent(context.Background(), evt))
}
