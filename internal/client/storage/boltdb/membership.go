package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/client/storage"
)

// Устройство состоит максимум в одной сессии, поэтому запись одна.
var membershipKey = []byte("current")

// SaveMembership stores the current session membership
func (s *Storage) SaveMembership(ctx context.Context, membership *storage.Membership) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMembership)
		if bucket == nil {
			return fmt.Errorf("membership bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(membership)
		if err != nil {
			return fmt.Errorf("failed to marshal membership: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(membershipKey, data); err != nil {
			return fmt.Errorf("failed to save membership: %w", err)
		}

		return nil
	})
}

// GetMembership retrieves the current session membership
func (s *Storage) GetMembership(ctx context.Context) (*storage.Membership, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var membership *storage.Membership

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMembership)
		if bucket == nil {
			return fmt.Errorf("membership bucket not found")
		}

		// Получаем данные
		data := bucket.Get(membershipKey)
		if data == nil {
			return storage.ErrMembershipNotFound
		}

		// Десериализуем
		membership = &storage.Membership{}
		if err := json.Unmarshal(data, membership); err != nil {
			return fmt.Errorf("failed to unmarshal membership: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return membership, nil
}

// DeleteMembership removes the stored membership (leave session)
func (s *Storage) DeleteMembership(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMembership)
		if bucket == nil {
			return fmt.Errorf("membership bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(membershipKey) == nil {
			return storage.ErrMembershipNotFound
		}

		// Удаляем данные
		if err := bucket.Delete(membershipKey); err != nil {
			return fmt.Errorf("failed to delete membership: %w", err)
		}

		return nil
	})
}

// HasMembership checks if the device is currently in a session
func (s *Storage) HasMembership(ctx context.Context) (bool, error) {
	_, err := s.GetMembership(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrMembershipNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
