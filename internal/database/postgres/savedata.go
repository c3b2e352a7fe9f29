package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// SaveDataRepository implements repository.SaveDataStore on the save_data table
type SaveDataRepository struct {
	db *pgxpool.Pool
}

// NewSaveDataRepository creates a new save data repository
func NewSaveDataRepository(db *pgxpool.Pool) *SaveDataRepository {
	return &SaveDataRepository{db: db}
}

// ReadSaveData returns the payload stored for slot and key
func (r *SaveDataRepository) ReadSaveData(ctx context.Context, slot, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM save_data
		WHERE slot = $1 AND data_key = $2
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, slot, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: slot %q key %q", domain.ErrSaveDataNotFound, slot, key)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSaveDataFailed, slot, err)
	}
	return payload, nil
}

// WriteSaveData upserts the payload for slot and key
func (r *SaveDataRepository) WriteSaveData(ctx context.Context, slot, key string, blob []byte) error {
	query := `
		INSERT INTO save_data (slot, data_key, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (slot, data_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, slot, key, blob); err != nil {
		return fmt.Errorf(ErrMsgWriteSaveDataFailed, slot, err)
	}
	return nil
}

// ListSlots returns every slot with stored data, most recently written first
func (r *SaveDataRepository) ListSlots(ctx context.Context) ([]string, error) {
	query := `
		SELECT slot
		FROM save_data
		GROUP BY slot
		ORDER BY MAX(updated_at) DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFailed, err)
	}
	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFailed, err)
	}
	return slots, nil
}
