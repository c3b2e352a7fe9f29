package bootstrap

import (
	"context"
	"log/slog"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
)

// InitializeEventSystem creates the event bus and registers the handlers that
// observe crop events: the metrics collector and a debug-level event log.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, eventType := range []event.Type{event.CropTracked, event.CropKilled, event.CropReleased} {
		bus.Subscribe(eventType, logCropEvent)
	}

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

func logCropEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CropPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgCropEvent,
		"type", evt.Type,
		"location", payload.Location,
		"reason", payload.Reason)
	return nil
}

// InitializeEventLog subscribes a crop event journal backed by repo to bus.
// Entries are stamped with the slot slots reports at publish time.
func InitializeEventLog(bus event.Bus, repo eventlog.Repository, slots eventlog.SlotSource) eventlog.Service {
	journal := eventlog.NewService(repo, slots)
	if err := journal.Subscribe(bus); err != nil {
		slog.Error(LogMsgEventLogSubscribeFailed, "error", err)
	}
	slog.Info(LogMsgEventLogRegistered)
	return journal
}
