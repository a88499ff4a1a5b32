package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
)

// CreateSession persists a new session in the device's ledger copy
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем session в JSON
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		if err := bucket.Put([]byte(session.ID), data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID
// Returns ErrSessionNotFound if session doesn't exist
func (s *Storage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return storage.ErrSessionNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSessionNotFound
		}

		// Десериализуем
		session = &models.Session{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateSessionStatus sets a new lifecycle status for the session.
// FinalizedBy and FinalizedAt are recorded alongside the transition.
// Returns ErrSessionNotFound if session doesn't exist
func (s *Storage) UpdateSessionStatus(ctx context.Context, id string, status models.SessionStatus, finalizedBy string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return storage.ErrSessionNotFound
		}

		// Получаем существующую запись
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSessionNotFound
		}

		var session models.Session
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		session.Status = status
		session.FinalizedBy = finalizedBy
		session.FinalizedAt = time.Now()

		// Сохраняем обратно
		updated, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("failed to marshal updated session: %w", err)
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save updated session: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// GetLatestLockedSession returns the most recently locked session
// excluding the given one. Used as the reconciliation baseline.
// Returns ErrSessionNotFound if no other locked session exists
func (s *Storage) GetLatestLockedSession(ctx context.Context, excludeID string) (*models.Session, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var latest *models.Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSessions)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var session models.Session
			if err := json.Unmarshal(v, &session); err != nil {
				return fmt.Errorf("failed to unmarshal session: %w", err)
			}

			if session.Status != models.SessionLocked || session.ID == excludeID {
				return nil
			}

			if latest == nil || lockedAfter(&session, latest) {
				latest = &session
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get latest locked session: %w", err)
	}

	if latest == nil {
		return nil, storage.ErrSessionNotFound
	}

	return latest, nil
}

// lockedAfter сообщает, заблокирована ли сессия a позже сессии b.
// При равном времени финализации решает время создания.
func lockedAfter(a, b *models.Session) bool {
	if !a.FinalizedAt.Equal(b.FinalizedAt) {
		return a.FinalizedAt.After(b.FinalizedAt)
	}
	return a.CreatedAt.After(b.CreatedAt)
}
