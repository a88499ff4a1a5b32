package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names. The first four hold device-local state, the
	// rest hold the device's copy of the session ledger so a host can
	// import packets and recompute totals fully offline.
	bucketIdentity     = []byte("identity")
	bucketMembership   = []byte("membership")
	bucketSequence     = []byte("sequence")
	bucketPending      = []byte("pending")
	bucketSessions     = []byte("sessions")
	bucketParticipants = []byte("participants")
	bucketEvents       = []byte("events")
	bucketSnapshots    = []byte("snapshots")
)

// Storage represents BoltDB storage implementation for a counting device
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{
			bucketIdentity,
			bucketMembership,
			bucketSequence,
			bucketPending,
			bucketSessions,
			bucketParticipants,
			bucketEvents,
			bucketSnapshots,
		}
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
