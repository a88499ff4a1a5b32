package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/models"
)

// SavePendingEvent stores a freshly recorded event in the outbox
func (s *Storage) SavePendingEvent(ctx context.Context, event *models.CountEvent) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем event в JSON
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketPending)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Сохраняем по ключу EventID
		if err := bucket.Put([]byte(event.EventID), data); err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetPendingEvents returns all outbox events for the session
func (s *Storage) GetPendingEvents(ctx context.Context, sessionID string) ([]*models.CountEvent, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var events []*models.CountEvent

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var event models.CountEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			// Фильтруем по сессии
			if event.SessionID == sessionID {
				events = append(events, &event)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}

	return events, nil
}

// MarkEventsSynced removes acknowledged events from the outbox.
// IDs that are no longer pending are skipped: acknowledgements arrive
// over lossy channels and may repeat.
func (s *Storage) MarkEventsSynced(ctx context.Context, eventIDs []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if len(eventIDs) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		for _, id := range eventIDs {
			// Delete по отсутствующему ключу в bbolt - no-op
			if err := bucket.Delete([]byte(id)); err != nil {
				return fmt.Errorf("failed to delete event %s: %w", id, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("mark synced transaction failed: %w", err)
	}

	return nil
}

// CountPendingEvents returns the number of outbox events for the session
func (s *Storage) CountPendingEvents(ctx context.Context, sessionID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var event models.CountEvent
			if err := json.Unmarshal(v, &event); err != nil {
				return fmt.Errorf("failed to unmarshal event: %w", err)
			}

			if event.SessionID == sessionID {
				count++
			}

			return nil
		})
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count pending events: %w", err)
	}

	return count, nil
}
