package metrics

import (
	"context"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
)

// EventMetricsCollector subscribes to crop events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all crop events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.CropTracked,
		event.CropKilled,
		event.CropReleased,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent counts a crop event by type
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	CropEvents.WithLabelValues(string(evt.Type)).Inc()
	return nil
}
