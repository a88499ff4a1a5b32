package storage

import (
	"context"
)

//go:generate moq -out identity_mock.go . IdentityStorage

// IdentityStorage defines interface for storing the device identity on client
// This is the lowest storage layer - it persists the identity as-is and
// performs no generation itself; bootstrap logic lives in the device service.
type IdentityStorage interface {
	// SaveIdentity stores the device identity
	SaveIdentity(ctx context.Context, identity *Identity) error

	// GetIdentity retrieves the stored device identity
	// Returns ErrIdentityNotFound if no identity has been created yet
	GetIdentity(ctx context.Context) (*Identity, error)
}

// Identity represents the stable identity of this device
// IMPORTANT: DeviceID is embedded in every event ID the device issues,
// so it is generated exactly once and must never change afterwards.
// DisplayName is free-form and may be updated at any time.
type Identity struct {
	DeviceID    string `json:"device_id"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}
