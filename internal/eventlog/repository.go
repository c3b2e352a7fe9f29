package eventlog

import (
	"context"
	"time"
)

// Entry is one journaled crop event
type Entry struct {
	ID        int64     `json:"id"`
	Slot      string    `json:"slot"`
	EventType string    `json:"event_type"`
	Location  string    `json:"location"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows a journal query. Zero fields match everything.
type Filter struct {
	Slot      string
	EventType string
	Since     *time.Time
	Limit     int
}

// Matches reports whether e passes every set field of f
func (f Filter) Matches(e Entry) bool {
	if f.Slot != "" && e.Slot != f.Slot {
		return false
	}
	if f.EventType != "" && e.EventType != f.EventType {
		return false
	}
	if f.Since != nil && e.CreatedAt.Before(*f.Since) {
		return false
	}
	return true
}

// Repository defines the interface for crop event storage
type Repository interface {
	// LogEvent stores an entry. The ID is assigned by the repository.
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents returns entries matching filter, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
