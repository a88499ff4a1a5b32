package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

//go:generate moq -out pending_mock.go . PendingStorage

// PendingStorage defines interface for the device outbox: count events
// recorded locally and not yet acknowledged by the session host. Events
// leave the outbox only through an acknowledgement; a lost packet simply
// means the events stay pending and ride along in the next export.
type PendingStorage interface {
	// SavePendingEvent stores a freshly recorded event in the outbox
	SavePendingEvent(ctx context.Context, event *models.CountEvent) error

	// GetPendingEvents returns all outbox events for the session
	// Returns empty slice if nothing is pending
	GetPendingEvents(ctx context.Context, sessionID string) ([]*models.CountEvent, error)

	// MarkEventsSynced removes acknowledged events from the outbox.
	// IDs that are not in the outbox are ignored: acknowledgements
	// arrive over lossy channels and may repeat.
	MarkEventsSynced(ctx context.Context, eventIDs []string) error

	// CountPendingEvents returns the number of outbox events for the session
	CountPendingEvents(ctx context.Context, sessionID string) (int, error)
}
