package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
)

// CreateSession persists a new session in the active status
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, name, host_id, status, finalized_by, created_at, finalized_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.Name,
		session.HostID,
		string(session.Status),
		session.FinalizedBy,
		timeToUnix(session.CreatedAt),
		timeToUnix(session.FinalizedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID
// Returns ErrSessionNotFound if session doesn't exist
func (s *Storage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, name, host_id, status, finalized_by, created_at, finalized_at
		FROM sessions
		WHERE id = ?
	`

	return s.scanSession(s.db.QueryRowContext(ctx, query, id))
}

// UpdateSessionStatus sets a new lifecycle status for the session.
// FinalizedBy and FinalizedAt are recorded alongside the transition.
// Returns ErrSessionNotFound if session doesn't exist
func (s *Storage) UpdateSessionStatus(ctx context.Context, id string, status models.SessionStatus, finalizedBy string) error {
	query := `
		UPDATE sessions
		SET status = ?, finalized_by = ?, finalized_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(status),
		finalizedBy,
		time.Now().Unix(),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrSessionNotFound
	}

	return nil
}

// GetLatestLockedSession returns the most recently locked session
// excluding the given one. Used as the reconciliation baseline.
// Returns ErrSessionNotFound if no other locked session exists
func (s *Storage) GetLatestLockedSession(ctx context.Context, excludeID string) (*models.Session, error) {
	query := `
		SELECT id, name, host_id, status, finalized_by, created_at, finalized_at
		FROM sessions
		WHERE status = ? AND id != ?
		ORDER BY finalized_at DESC, created_at DESC
		LIMIT 1
	`

	return s.scanSession(s.db.QueryRowContext(ctx, query, string(models.SessionLocked), excludeID))
}

// scanSession is a helper to scan a single session row
func (s *Storage) scanSession(row *sql.Row) (*models.Session, error) {
	session := &models.Session{}
	var status string
	var createdAt, finalizedAt int64

	err := row.Scan(
		&session.ID,
		&session.Name,
		&session.HostID,
		&status,
		&session.FinalizedBy,
		&createdAt,
		&finalizedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.Status = models.SessionStatus(status)
	session.CreatedAt = unixToTime(createdAt)
	session.FinalizedAt = unixToTime(finalizedAt)

	return session, nil
}
