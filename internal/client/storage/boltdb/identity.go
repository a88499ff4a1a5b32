package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/client/storage"
)

var identityKey = []byte("current")

// SaveIdentity stores the device identity
func (s *Storage) SaveIdentity(ctx context.Context, identity *storage.Identity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(identityKey, data); err != nil {
			return fmt.Errorf("failed to save identity: %w", err)
		}

		return nil
	})
}

// GetIdentity retrieves the stored device identity
func (s *Storage) GetIdentity(ctx context.Context) (*storage.Identity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var identity *storage.Identity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketIdentity)
		if bucket == nil {
			return fmt.Errorf("identity bucket not found")
		}

		// Получаем данные
		data := bucket.Get(identityKey)
		if data == nil {
			return storage.ErrIdentityNotFound
		}

		// Десериализуем
		identity = &storage.Identity{}
		if err := json.Unmarshal(data, identity); err != nil {
			return fmt.Errorf("failed to unmarshal identity: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return identity, nil
}
