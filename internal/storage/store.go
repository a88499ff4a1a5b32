package storage

//go:generate moq -out store_mock.go . Store

// Store combines everything the ledger sync service needs. Implemented by
// the server sqlite storage and by the device boltdb storage, so the same
// merge code runs on the server and on a host device importing packets
// fully offline.
type Store interface {
	SessionStore
	ParticipantStore
	EventStore
	SnapshotStore
}
