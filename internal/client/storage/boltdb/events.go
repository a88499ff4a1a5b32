package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
)

// AppendEvent inserts the event if its EventID is not present yet.
// Returns applied = false with no error когда событие уже было записано:
// содержимое события неизменяемо, поэтому повтор не перезаписывает запись.
func (s *Storage) AppendEvent(ctx context.Context, event *models.CountEvent) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	applied := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEvents)
		if bucket == nil {
			return fmt.Errorf("events bucket not found")
		}

		key := []byte(event.EventID)

		// Повторная доставка - идемпотентный no-op
		if bucket.Get(key) != nil {
			return nil
		}

		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}

		applied = true
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("append transaction failed: %w", err)
	}

	return applied, nil
}

// GetSessionEvents returns all events recorded for the session.
// Порядок записей значения не имеет: редукция коммутативна.
// Returns empty slice if the session has no events
func (s *Storage) GetSessionEvents(ctx context.Context, sessionID string) ([]models.CountEvent, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var events []models.CountEvent

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEvents)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var event models.CountEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			// Фильтруем по сессии
			if event.SessionID == sessionID {
				events = append(events, event)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}

	return events, nil
}
