package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// EventStore defines interface for the append-only count event log
type EventStore interface {
	// AppendEvent inserts the event if its EventID is not present yet.
	// Returns applied = false with no error when the event was already
	// stored; existing content is never overwritten (idempotent insert,
	// not an upsert).
	AppendEvent(ctx context.Context, event *models.CountEvent) (applied bool, err error)

	// GetSessionEvents returns all events recorded for the session.
	// This is the only read path the reducer uses; no ordering is implied.
	// Returns empty slice if the session has no events
	GetSessionEvents(ctx context.Context, sessionID string) ([]models.CountEvent, error)
}
