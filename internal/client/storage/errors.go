package storage

import "errors"

// Common device storage errors
var (
	// ErrIdentityNotFound indicates that the device identity has not been created yet
	ErrIdentityNotFound = errors.New("device identity not found")

	// ErrMembershipNotFound indicates that the device has not joined a counting session
	ErrMembershipNotFound = errors.New("session membership not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
