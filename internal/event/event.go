package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Host lifecycle events, fired by the game host in this order per day:
// day_started, day_ending, saving. save_loaded precedes the first day_started.
const (
	SaveLoaded      Type = "game.save_loaded"
	DayStarted      Type = "game.day_started"
	DayEnding       Type = "game.day_ending"
	Saving          Type = "game.saving"
	ReturnedToTitle Type = "game.returned_to_title"
)

// Crop events published by the crop saver
const (
	CropTracked  Type = "crop.tracked"
	CropKilled   Type = "crop.killed"
	CropReleased Type = "crop.released"
)

// LifecyclePayloadV1 is the typed payload for host lifecycle events
type LifecyclePayloadV1 struct {
	SaveSlot string `json:"save_slot"`
	Season   string `json:"season"`
	Day      int    `json:"day"`
	Year     int    `json:"year"`
}

// CropPayloadV1 is the typed payload for crop events
type CropPayloadV1 struct {
	Location  string `json:"location"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewLifecycleEvent creates a host lifecycle event
func NewLifecycleEvent(eventType Type, saveSlot, season string, day, year int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: LifecyclePayloadV1{
			SaveSlot: saveSlot,
			Season:   season,
			Day:      day,
			Year:     year,
		},
	}
}

// NewCropEvent creates a crop event for the plot at location
func NewCropEvent(eventType Type, location, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: CropPayloadV1{
			Location:  location,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process payloads are already the right struct; serialized ones take the JSON path.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
