package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL crop event repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an entry in the crop_events table
func (r *eventLogRepository) LogEvent(ctx context.Context, entry eventlog.Entry) error {
	query := `
		INSERT INTO crop_events (slot, event_type, location, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := r.db.Exec(ctx, query, entry.Slot, entry.EventType, entry.Location, entry.Reason, createdAt); err != nil {
		return fmt.Errorf(ErrMsgLogEventFailed, err)
	}
	return nil
}

// GetEvents retrieves entries based on filter criteria
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, slot, event_type, location, reason, created_at
		FROM crop_events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Slot != "" {
		fmt.Fprintf(&queryBuilder, " AND slot = $%d", argNum)
		args = append(args, filter.Slot)
		argNum++
	}

	if filter.EventType != "" {
		fmt.Fprintf(&queryBuilder, " AND event_type = $%d", argNum)
		args = append(args, filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEventsFailed, err)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEventsFailed, err)
	}
	return entries, nil
}

// CleanupOldEvents removes entries older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM crop_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanEntry(row pgx.CollectableRow) (eventlog.Entry, error) {
	var e eventlog.Entry
	err := row.Scan(&e.ID, &e.Slot, &e.EventType, &e.Location, &e.Reason, &e.CreatedAt)
	return e, err
}
