package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func TestAppendEvent_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	event := &models.CountEvent{
		SessionID: "session-1",
		EventID:   "device-a:1",
		ActorID:   "device-a",
		ItemKey:   "SKU-100",
		DeltaQty:  3,
		Timestamp: 1700000000,
	}

	applied, err := store.AppendEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, applied)

	// Повторная доставка того же события - no-op без ошибки
	duplicate := *event
	duplicate.DeltaQty = 100

	applied, err = store.AppendEvent(ctx, &duplicate)
	require.NoError(t, err)
	assert.False(t, applied)

	// Исходное содержимое не перезаписано конфликтующим дубликатом
	events, err := store.GetSessionEvents(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, *event, events[0])
}

func TestGetSessionEvents_FiltersBySession(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Пустая сессия
	events, err := store.GetSessionEvents(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, events)

	fixtures := []*models.CountEvent{
		{SessionID: "session-1", EventID: "device-a:1", ActorID: "device-a", ItemKey: "SKU-100", DeltaQty: 3, Timestamp: 1700000000},
		{SessionID: "session-1", EventID: "device-b:1", ActorID: "device-b", ItemKey: "SKU-100", DeltaQty: 2, Timestamp: 1700000010},
		{SessionID: "session-2", EventID: "device-a:2", ActorID: "device-a", ItemKey: "SKU-200", DeltaQty: 5, Timestamp: 1700000020},
	}
	for _, e := range fixtures {
		applied, err := store.AppendEvent(ctx, e)
		require.NoError(t, err)
		require.True(t, applied)
	}

	events, err = store.GetSessionEvents(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, events, 2)

	for _, e := range events {
		assert.Equal(t, "session-1", e.SessionID)
	}
}
