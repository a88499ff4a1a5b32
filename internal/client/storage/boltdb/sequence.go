package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/client/storage"
)

// NextSequence atomically advances and returns the persistent device event
// counter. bbolt keeps the sequence in the bucket header, so issued values
// survive restarts and are never handed out twice.
func (s *Storage) NextSequence(ctx context.Context) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var seq uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSequence)
		if bucket == nil {
			return fmt.Errorf("sequence bucket not found")
		}

		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to advance sequence: %w", err)
		}

		seq = next
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("sequence transaction failed: %w", err)
	}

	return seq, nil
}
