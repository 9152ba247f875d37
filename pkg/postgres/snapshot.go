package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/schedule-master/pkg/storage"
)

// Load reads the persisted snapshot document. An empty table means nothing
// has been saved yet and returns (nil, nil).
func (db *DB) Load(ctx context.Context) (*storage.Snapshot, error) {
	var document []byte
	err := db.pool.QueryRow(ctx, `
		SELECT document FROM schedule_snapshot WHERE id = 1
	`).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var snap storage.Snapshot
	if err := json.Unmarshal(document, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot document: %w", err)
	}

	return &snap, nil
}

// Save upserts the snapshot document into the single-row table.
func (db *DB) Save(ctx context.Context, snap *storage.Snapshot) error {
	document, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO schedule_snapshot (id, document, saved_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, saved_at = NOW()
	`, document)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
