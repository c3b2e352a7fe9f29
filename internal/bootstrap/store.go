package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/database"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/database/badger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/database/postgres"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/handler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
)

// Store is the opened save-data backend together with its crop event
// journal and health checks
type Store struct {
	repository.SaveDataStore
	Events  eventlog.Repository
	Backend string
	Checks  []handler.HealthChecker
	closeFn func() error
}

// Close releases the backend
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStore opens the save-data backend named by cfg.SaveBackend. The
// postgres backend is migrated before it is returned and journals crop
// events in the same database; the other backends keep the journal in memory.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		store *Store
		err   error
	)

	switch cfg.SaveBackend {
	case config.BackendMemory:
		store = &Store{
			SaveDataStore: repository.NewMemoryStore(),
			Events:        eventlog.NewMemoryRepository(eventlog.DefaultMemoryCapacity),
		}
	case config.BackendBadger:
		store, err = openBadger(cfg)
	case config.BackendPostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		err = fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.SaveBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	store.Backend = cfg.SaveBackend
	slog.Info(LogMsgStoreOpened, "backend", store.Backend)
	return store, nil
}

func openBadger(cfg *config.Config) (*Store, error) {
	bcfg := badger.DefaultConfig(cfg.SaveDir)
	bcfg.Logger = slog.Default().With("component", "badger")

	db, err := badger.Open(bcfg)
	if err != nil {
		return nil, err
	}
	return &Store{
		SaveDataStore: db,
		Events:        eventlog.NewMemoryRepository(eventlog.DefaultMemoryCapacity),
		closeFn:       db.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, 0, 0)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{
		SaveDataStore: postgres.NewSaveDataRepository(pool),
		Events:        postgres.NewEventLogRepository(pool),
		Checks:        []handler.HealthChecker{handler.HealthCheckFunc(pool.Ping)},
		closeFn: func() error {
			pool.Close()
			return nil
		},
	}, nil
}
