package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func testEvents(sessionID string) []models.CountEvent {
	return []models.CountEvent{
		{
			SessionID: sessionID,
			EventID:   "device-a:1",
			ActorID:   "device-a",
			ItemKey:   "widget",
			DeltaQty:  3,
			Timestamp: 1700000000,
		},
		{
			SessionID: sessionID,
			EventID:   "device-a:2",
			ActorID:   "device-a",
			ItemKey:   "gadget",
			DeltaQty:  -1,
			Timestamp: 1700000060,
		},
	}
}

func TestNewDataPacket(t *testing.T) {
	p := NewDataPacket("session-1", "device-a", "Анна", testEvents("session-1"), nil, nil)

	require.Equal(t, KindData, p.Kind)
	require.NotNil(t, p.Data)
	assert.Nil(t, p.Join)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "session-1", p.SessionID())
	assert.NotZero(t, p.Data.GeneratedAt)
	require.NoError(t, p.Validate())
}

func TestNewDataPacket_NormalizesEmptyCollections(t *testing.T) {
	p := NewDataPacket("session-1", "device-a", "Анна",
		[]models.CountEvent{}, map[string]int64{}, []string{})

	assert.Nil(t, p.Data.Events)
	assert.Nil(t, p.Data.Totals)
	assert.Nil(t, p.Data.AckEventIDs)
}

func TestNewJoinPacket(t *testing.T) {
	session := models.Session{
		ID:     "session-1",
		Name:   "Склад А, август",
		HostID: "device-host",
		Status: models.SessionActive,
	}

	p := NewJoinPacket(session)

	require.Equal(t, KindJoin, p.Kind)
	require.NotNil(t, p.Join)
	assert.Nil(t, p.Data)
	assert.Equal(t, "session-1", p.SessionID())
	assert.Equal(t, "Склад А, август", p.Join.SessionName)
	assert.Equal(t, "device-host", p.Join.HostID)
	require.NoError(t, p.Validate())
}

func TestPacket_SessionID_Empty(t *testing.T) {
	var p Packet
	assert.Empty(t, p.SessionID())

	p = Packet{Kind: KindData}
	assert.Empty(t, p.SessionID())
}

func TestPacket_Validate(t *testing.T) {
	tests := []struct {
		name    string
		packet  Packet
		wantErr string
	}{
		{
			name:    "empty packet",
			packet:  Packet{},
			wantErr: "missing packet id",
		},
		{
			name:    "unknown kind",
			packet:  Packet{ID: "p1", Kind: Kind("upgrade")},
			wantErr: "unknown packet kind",
		},
		{
			name:    "data kind without payload",
			packet:  Packet{ID: "p1", Kind: KindData},
			wantErr: "data packet payload mismatch",
		},
		{
			name: "data kind with both payloads",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{SessionID: "s1", ActorID: "a"},
				Join: &JoinPacket{SessionID: "s1", HostID: "h"},
			},
			wantErr: "data packet payload mismatch",
		},
		{
			name: "data packet missing session",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{ActorID: "device-a"},
			},
			wantErr: "missing session id",
		},
		{
			name: "data packet missing actor",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{SessionID: "s1"},
			},
			wantErr: "missing actor id",
		},
		{
			name: "event from another session",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{
					SessionID: "s1",
					ActorID:   "device-a",
					Events: []models.CountEvent{
						{SessionID: "s2", EventID: "device-a:1", ItemKey: "widget", DeltaQty: 1},
					},
				},
			},
			wantErr: "belongs to another session",
		},
		{
			name: "event with bad id",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{
					SessionID: "s1",
					ActorID:   "device-a",
					Events: []models.CountEvent{
						{SessionID: "s1", EventID: "no-counter", ItemKey: "widget", DeltaQty: 1},
					},
				},
			},
			wantErr: "bad event id",
		},
		{
			name: "event with empty item key",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{
					SessionID: "s1",
					ActorID:   "device-a",
					Events: []models.CountEvent{
						{SessionID: "s1", EventID: "device-a:1", DeltaQty: 1},
					},
				},
			},
			wantErr: "empty item key",
		},
		{
			name: "bad ack id",
			packet: Packet{
				ID:   "p1",
				Kind: KindData,
				Data: &DataPacket{
					SessionID:   "s1",
					ActorID:     "device-a",
					AckEventIDs: []string{"garbage"},
				},
			},
			wantErr: "bad ack event id",
		},
		{
			name:    "join kind without payload",
			packet:  Packet{ID: "p1", Kind: KindJoin},
			wantErr: "join packet payload mismatch",
		},
		{
			name: "join packet missing host",
			packet: Packet{
				ID:   "p1",
				Kind: KindJoin,
				Join: &JoinPacket{SessionID: "s1"},
			},
			wantErr: "missing host id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.packet.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPacketMalformed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
