package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/catalog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/cropsaver"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/farm"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/handler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/simulation"
)

// errNoSave reports readiness failure before a save is loaded
var errNoSave = errors.New(ErrMsgNoSaveLoaded)

// Engine is a crop saver attached to a simulated world
type Engine struct {
	Catalog *catalog.Catalog
	World   *farm.World
	Saver   *cropsaver.Saver
	Runner  *simulation.Runner
	Slot    string
}

// InitializeEngine loads the crop catalog and farm layout, builds the world,
// enables a saver on bus and returns a runner that sows the layout on its first day.
func InitializeEngine(cfg *config.Config, bus event.Bus, store repository.SaveDataStore) (*Engine, error) {
	crops, err := catalog.Load(cfg.CropCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "version", crops.Version(), "crops", crops.Len())

	layout, err := farm.LoadLayout(cfg.FarmLayoutPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLayout, err)
	}
	world, err := layout.Build(crops)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildWorld, err)
	}
	slog.Info(LogMsgWorldBuilt, "locations", world.LocationNames(), "date", world.Calendar().String())

	slot := cfg.SaveSlot
	if slot == "" {
		slot = layout.SaveSlot
	}

	cropData := catalog.NewCachedProvider(crops, cfg.MetadataCacheSize, cfg.MetadataCacheTTL)
	saver := cropsaver.New(world, cropData, store,
		cropsaver.WithPublisher(bus),
		cropsaver.WithCompression(cfg.CompressSaves))
	saver.Enable(bus)

	runner := simulation.NewRunner(world, bus, slot,
		simulation.WithFirstDayAction(simulation.Sow(layout)),
		simulation.WithAutoHarvest(cfg.AutoHarvest))

	return &Engine{
		Catalog: crops,
		World:   world,
		Saver:   saver,
		Runner:  runner,
		Slot:    slot,
	}, nil
}

// ReadyCheck passes once the saver has a save slot loaded
func (e *Engine) ReadyCheck() handler.HealthChecker {
	return handler.HealthCheckFunc(func(ctx context.Context) error {
		if e.Saver.Slot() == "" {
			return errNoSave
		}
		return nil
	})
}
