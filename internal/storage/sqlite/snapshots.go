package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
)

// SaveSnapshot persists the recomputed totals as the session's
// current snapshot, replacing the previous one
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	totals, err := json.Marshal(snapshot.Totals)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot totals: %w", err)
	}

	query := `
		INSERT INTO snapshots (session_id, totals, last_event_id, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id) DO UPDATE SET
			totals = excluded.totals,
			last_event_id = excluded.last_event_id,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		snapshot.SessionID,
		string(totals),
		snapshot.LastEventID,
		timeToUnix(snapshot.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot returns the session's current snapshot
// Returns ErrSnapshotNotFound if none was persisted yet
func (s *Storage) GetSnapshot(ctx context.Context, sessionID string) (*models.Snapshot, error) {
	query := `
		SELECT session_id, totals, last_event_id, updated_at
		FROM snapshots
		WHERE session_id = ?
	`

	snapshot := &models.Snapshot{}
	var totals string
	var updatedAt int64

	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(
		&snapshot.SessionID,
		&totals,
		&snapshot.LastEventID,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(totals), &snapshot.Totals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot totals: %w", err)
	}

	snapshot.UpdatedAt = unixToTime(updatedAt)

	return snapshot, nil
}
