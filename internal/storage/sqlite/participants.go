package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
)

// UpsertParticipant creates the roster entry on first contact and
// refreshes display name and last_seen_at on every subsequent one.
// The host role is never demoted by an upsert.
func (s *Storage) UpsertParticipant(ctx context.Context, participant *models.Participant) error {
	query := `
		INSERT INTO participants (session_id, participant_id, display_name, role, last_seen_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (session_id, participant_id) DO UPDATE SET
			display_name = excluded.display_name,
			role = CASE WHEN participants.role = 'host' THEN participants.role ELSE excluded.role END,
			last_seen_at = excluded.last_seen_at
	`

	_, err := s.db.ExecContext(ctx, query,
		participant.SessionID,
		participant.ParticipantID,
		participant.DisplayName,
		string(participant.Role),
		timeToUnix(participant.LastSeenAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}

	return nil
}

// GetParticipants returns the full roster for a session
// Returns empty slice if the session has no participants
func (s *Storage) GetParticipants(ctx context.Context, sessionID string) ([]models.Participant, error) {
	query := `
		SELECT session_id, participant_id, display_name, role, last_seen_at
		FROM participants
		WHERE session_id = ?
		ORDER BY display_name ASC, participant_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var role string
		var lastSeenAt int64

		if err := rows.Scan(&p.SessionID, &p.ParticipantID, &p.DisplayName, &role, &lastSeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}

		p.Role = models.Role(role)
		p.LastSeenAt = unixToTime(lastSeenAt)
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participants, nil
}
