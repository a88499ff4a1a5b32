package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// ParticipantStore defines interface for the session roster persistence
type ParticipantStore interface {
	// UpsertParticipant creates the roster entry on first contact and
	// refreshes display name and last_seen_at on every subsequent one.
	// The host role is never demoted by an upsert.
	// Roster entries are never deleted during a session's life.
	UpsertParticipant(ctx context.Context, participant *models.Participant) error

	// GetParticipants returns the full roster for a session
	// Returns empty slice if the session has no participants
	GetParticipants(ctx context.Context, sessionID string) ([]models.Participant, error)
}
