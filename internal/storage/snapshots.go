package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// SnapshotStore defines interface for cached per-session totals
type SnapshotStore interface {
	// SaveSnapshot persists the recomputed totals as the session's
	// current snapshot, replacing the previous one
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error

	// GetSnapshot returns the session's current snapshot
	// Returns ErrSnapshotNotFound if none was persisted yet
	GetSnapshot(ctx context.Context, sessionID string) (*models.Snapshot, error)
}
