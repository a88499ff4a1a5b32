package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the device's current session
// membership. A device participates in at most one counting session at a
// time; joining a new session replaces the previous membership.
type SessionStorage interface {
	// SaveMembership stores the current session membership
	SaveMembership(ctx context.Context, membership *Membership) error

	// GetMembership retrieves the current session membership
	// Returns ErrMembershipNotFound if the device has not joined a session
	GetMembership(ctx context.Context) (*Membership, error)

	// DeleteMembership removes the stored membership (leave session)
	DeleteMembership(ctx context.Context) error

	// HasMembership checks if the device is currently in a session
	HasMembership(ctx context.Context) (bool, error)
}

// Membership represents the device's record of the session it joined.
// Role is what the device believes about itself; the authoritative roster
// lives in the session ledger on the host side. Remote marks a session
// whose authoritative ledger is the server, not a host device.
type Membership struct {
	SessionID   string      `json:"session_id"`
	SessionName string      `json:"session_name"`
	HostID      string      `json:"host_id"`
	Role        models.Role `json:"role"`
	JoinedAt    int64       `json:"joined_at"`
	Remote      bool        `json:"remote"`
}

// IsHost reports whether the device created the session it is in.
func (m *Membership) IsHost() bool {
	return m.Role == models.RoleHost
}
