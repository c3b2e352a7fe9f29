// Package badger stores save data in an embedded BadgerDB, one key per
// slot and data key. It is the default backend for a single dedicated server.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// Config configures the store
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in memory; for tests
	InMemory bool

	// SyncWrites fsyncs every write
	SyncWrites bool

	// Logger receives BadgerDB's own log output. Nil disables it.
	Logger *slog.Logger

	// GCInterval is how often to run value log garbage collection. 0 disables it.
	GCInterval time.Duration

	// GCDiscardRatio is the minimum ratio of discardable data before GC
	GCDiscardRatio float64
}

// DefaultConfig returns a durable on-disk configuration for path
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		SyncWrites:     true,
		GCInterval:     DefaultGCInterval,
		GCDiscardRatio: DefaultGCDiscardRatio,
	}
}

// InMemoryConfig returns a configuration for tests
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to badger.Logger
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Store implements repository.SaveDataStore on BadgerDB
type Store struct {
	db     *badger.DB
	stopGC chan struct{}
	doneGC chan struct{}
}

// Open opens (creating if needed) the store described by cfg
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, DirPermission); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	s := &Store{db: db}
	if cfg.GCInterval > 0 && !cfg.InMemory {
		s.startGC(cfg.GCInterval, cfg.GCDiscardRatio, cfg.Logger)
	}
	return s, nil
}

func (s *Store) startGC(interval time.Duration, ratio float64, logger *slog.Logger) {
	s.stopGC = make(chan struct{})
	s.doneGC = make(chan struct{})

	go func() {
		defer close(s.doneGC)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopGC:
				return
			case <-ticker.C:
				// ErrNoRewrite means there was nothing to collect
				err := s.db.RunValueLogGC(ratio)
				if err != nil && !errors.Is(err, badger.ErrNoRewrite) && logger != nil {
					logger.Warn(LogMsgGCFailed, "error", err)
				}
			}
		}
	}()
}

func storageKey(slot, key string) []byte {
	return []byte(KeyPrefix + slot + KeySeparator + key)
}

// ReadSaveData returns a copy of the blob stored for slot and key
func (s *Store) ReadSaveData(ctx context.Context, slot, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blob []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storageKey(slot, key))
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: slot %q key %q", domain.ErrSaveDataNotFound, slot, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read save data for slot %q: %w", slot, err)
	}
	return blob, nil
}

// WriteSaveData replaces the blob stored for slot and key
func (s *Store) WriteSaveData(ctx context.Context, slot, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storageKey(slot, key), blob)
	})
	if err != nil {
		return fmt.Errorf("write save data for slot %q: %w", slot, err)
	}
	return nil
}

// ListSlots returns every slot with stored data, in key order
func (s *Store) ListSlots(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var slots []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(KeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		seen := make(map[string]bool)
		for it.Rewind(); it.Valid(); it.Next() {
			rest := strings.TrimPrefix(string(it.Item().Key()), KeyPrefix)
			slot, _, ok := strings.Cut(rest, KeySeparator)
			if !ok || seen[slot] {
				continue
			}
			seen[slot] = true
			slots = append(slots, slot)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	return slots, nil
}

// Close stops background GC and closes the database
func (s *Store) Close() error {
	if s.stopGC != nil {
		close(s.stopGC)
		<-s.doneGC
	}
	return s.db.Close()
}
