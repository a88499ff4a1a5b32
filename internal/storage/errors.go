package storage

import "errors"

// Common ledger storage errors
var (
	// ErrSessionNotFound indicates that counting session was not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSnapshotNotFound indicates that no snapshot has been persisted for the session yet
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
