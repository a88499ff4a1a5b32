package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
)

// AppendEvent inserts the event if its EventID is not present yet.
// Returns applied = false with no error когда событие уже было записано:
// содержимое события неизменяемо, поэтому повтор не перезаписывает строку.
func (s *Storage) AppendEvent(ctx context.Context, event *models.CountEvent) (bool, error) {
	query := `
		INSERT INTO events (event_id, session_id, actor_id, item_key, delta_qty, ts)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		event.EventID,
		event.SessionID,
		event.ActorID,
		event.ItemKey,
		event.DeltaQty,
		event.Timestamp,
	)
	if err != nil {
		return false, fmt.Errorf("failed to append event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// GetSessionEvents returns all events recorded for the session.
// Порядок строк значения не имеет: редукция коммутативна.
// Returns empty slice if the session has no events
func (s *Storage) GetSessionEvents(ctx context.Context, sessionID string) ([]models.CountEvent, error) {
	query := `
		SELECT event_id, session_id, actor_id, item_key, delta_qty, ts
		FROM events
		WHERE session_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return s.scanEvents(rows)
}

// scanEvents is a helper function to scan multiple events from rows
func (s *Storage) scanEvents(rows *sql.Rows) ([]models.CountEvent, error) {
	var events []models.CountEvent

	for rows.Next() {
		var event models.CountEvent

		err := rows.Scan(
			&event.EventID,
			&event.SessionID,
			&event.ActorID,
			&event.ItemKey,
			&event.DeltaQty,
			&event.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}
