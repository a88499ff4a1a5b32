package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func TestParticipantStore_Upsert(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	session := createTestSession(t, ctx, s, time.Unix(1700000000, 0))

	first := &models.Participant{
		SessionID:     session.ID,
		ParticipantID: "device-a",
		DisplayName:   "Анна",
		Role:          models.RoleParticipant,
		LastSeenAt:    time.Unix(1700000100, 0),
	}
	require.NoError(t, s.UpsertParticipant(ctx, first))

	// Первый контакт создаёт запись ростера
	roster, err := s.GetParticipants(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Анна", roster[0].DisplayName)
	assert.Equal(t, models.RoleParticipant, roster[0].Role)

	// Повторный контакт обновляет имя и last_seen_at
	refreshed := &models.Participant{
		SessionID:     session.ID,
		ParticipantID: "device-a",
		DisplayName:   "Анна К.",
		Role:          models.RoleParticipant,
		LastSeenAt:    time.Unix(1700000500, 0),
	}
	require.NoError(t, s.UpsertParticipant(ctx, refreshed))

	roster, err = s.GetParticipants(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1, "Upsert must not create a second roster row")
	assert.Equal(t, "Анна К.", roster[0].DisplayName)
	assert.Equal(t, int64(1700000500), roster[0].LastSeenAt.Unix())
}

func TestParticipantStore_HostRoleNeverDemoted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	session := createTestSession(t, ctx, s, time.Unix(1700000000, 0))

	host := &models.Participant{
		SessionID:     session.ID,
		ParticipantID: "device-host",
		DisplayName:   "Хост",
		Role:          models.RoleHost,
		LastSeenAt:    time.Unix(1700000100, 0),
	}
	require.NoError(t, s.UpsertParticipant(ctx, host))

	// Последующий контакт хоста с ролью participant не понижает роль
	contact := &models.Participant{
		SessionID:     session.ID,
		ParticipantID: "device-host",
		DisplayName:   "Хост",
		Role:          models.RoleParticipant,
		LastSeenAt:    time.Unix(1700000200, 0),
	}
	require.NoError(t, s.UpsertParticipant(ctx, contact))

	roster, err := s.GetParticipants(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, models.RoleHost, roster[0].Role)
	assert.Equal(t, int64(1700000200), roster[0].LastSeenAt.Unix(), "last_seen_at must still refresh")
}

func TestParticipantStore_GetParticipants_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	roster, err := s.GetParticipants(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestParticipantStore_MultipleDevices(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	session := createTestSession(t, ctx, s, time.Unix(1700000000, 0))

	devices := []string{"device-c", "device-a", "device-b"}
	for i, id := range devices {
		require.NoError(t, s.UpsertParticipant(ctx, &models.Participant{
			SessionID:     session.ID,
			ParticipantID: id,
			DisplayName:   id,
			Role:          models.RoleParticipant,
			LastSeenAt:    time.Unix(int64(1700000100+i), 0),
		}))
	}

	roster, err := s.GetParticipants(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 3)

	// Отсортировано по имени
	assert.Equal(t, "device-a", roster[0].ParticipantID)
	assert.Equal(t, "device-b", roster[1].ParticipantID)
	assert.Equal(t, "device-c", roster[2].ParticipantID)
}
