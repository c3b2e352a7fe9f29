package eventlog

import (
	"context"
	"time"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
)

// SlotSource reports the save slot crop events belong to
type SlotSource interface {
	Slot() string
}

// Service journals crop events and answers queries over the journal
type Service interface {
	// Subscribe registers the journal for every crop event type
	Subscribe(bus event.Bus) error

	// GetEvents returns journaled entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo  Repository
	slots SlotSource
}

// NewService creates a crop event journal. slots may be nil, in which case
// entries are stored without a slot.
func NewService(repo Repository, slots SlotSource) Service {
	return &service{repo: repo, slots: slots}
}

// Subscribe registers event handlers for the crop event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range []event.Type{event.CropTracked, event.CropKilled, event.CropReleased} {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.CropPayloadV1](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	entry := Entry{
		EventType: string(evt.Type),
		Location:  payload.Location,
		Reason:    payload.Reason,
	}
	if payload.Timestamp > 0 {
		entry.CreatedAt = time.Unix(payload.Timestamp, 0).UTC()
	}
	if s.slots != nil {
		entry.Slot = s.slots.Slot()
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSlot, entry.Slot, LogFieldLocation, entry.Location)
	return nil
}

// GetEvents clamps the limit and queries the repository
func (s *service) GetEvents(ctx context.Context, filter Filter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes entries older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
