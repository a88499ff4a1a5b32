package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// SessionStore defines interface for counting session persistence
type SessionStore interface {
	// CreateSession persists a new session in the active status
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by ID
	// Returns ErrSessionNotFound if session doesn't exist
	GetSession(ctx context.Context, id string) (*models.Session, error)

	// UpdateSessionStatus sets a new lifecycle status for the session.
	// FinalizedBy and FinalizedAt are recorded alongside the transition.
	// The caller is responsible for checking transition monotonicity.
	// Returns ErrSessionNotFound if session doesn't exist
	UpdateSessionStatus(ctx context.Context, id string, status models.SessionStatus, finalizedBy string) error

	// GetLatestLockedSession returns the most recently locked session
	// excluding the given one. Used as the reconciliation baseline.
	// Returns ErrSessionNotFound if no other locked session exists
	GetLatestLockedSession(ctx context.Context, excludeID string) (*models.Session, error)
}
