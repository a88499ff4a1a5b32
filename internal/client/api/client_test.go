package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/pkg/api"
)

func TestClient_CreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sessions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.CreateSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Warehouse A", req.SessionName)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.CreateSessionResponse{SessionID: "s1"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.CreateSession(context.Background(), api.CreateSessionRequest{
		SessionName: "Warehouse A",
		HostID:      "device-host",
		HostName:    "Host",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.SessionID)
}

func TestClient_Commit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions/s1/commit", r.URL.Path)

		var req api.CommitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Events, 1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.CommitResponse{
			Totals:  []api.TotalDTO{{ItemKey: "widget", Qty: 3}},
			Applied: 1,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Commit(context.Background(), "s1", api.CommitRequest{
		ActorID:   "device-a",
		ActorName: "Anna",
		Events: []api.EventDTO{
			{EventID: "device-a:1", ActorID: "device-a", ItemKey: "widget", DeltaQty: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Applied)
	require.Len(t, resp.Totals, 1)
	assert.Equal(t, int64(3), resp.Totals[0].Qty)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.StateResponse{
			Session: api.SessionDTO{ID: "s1", Status: "active"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.GetState(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.Session.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   http.StatusText(http.StatusConflict),
			Message: "session is locked",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Commit(context.Background(), "s1", api.CommitRequest{ActorID: "device-a"})
	require.Error(t, err)

	// 4xx детерминирован: ровно один запрос, статус доступен вызывающему
	assert.Equal(t, int32(1), calls.Load())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Contains(t, statusErr.Message, "session is locked")
}

func TestClient_ServerUnreachable(t *testing.T) {
	// Закрытый сервер: все попытки исчерпаны, наружу выходит сетевой сбой
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	client.maxRetries = 1

	_, err := client.GetState(context.Background(), "s1")
	assert.Error(t, err)
}
