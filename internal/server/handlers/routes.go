package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/stocktake/internal/ledger"
)

// NewRouter собирает маршруты API v1 поверх стандартного ServeMux.
// Паттерны с методом и path parameters (Go 1.22+); middleware навешивается
// снаружи в main, чтобы порядок цепочки был виден в одном месте.
func NewRouter(logger *slog.Logger, service ledger.Service, pinger Pinger, version string) *http.ServeMux {
	sessions := NewSessionHandler(logger, service)
	ledgerOps := NewLedgerHandler(logger, service)
	health := NewHealthHandler(logger, pinger, version)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/sessions", sessions.Create)
	mux.HandleFunc("POST /api/v1/sessions/{session_id}/join", sessions.Join)
	mux.HandleFunc("GET /api/v1/sessions/{session_id}", sessions.State)

	mux.HandleFunc("POST /api/v1/sessions/{session_id}/commit", ledgerOps.Commit)
	mux.HandleFunc("POST /api/v1/sessions/{session_id}/finalize", ledgerOps.Finalize)
	mux.HandleFunc("POST /api/v1/sessions/{session_id}/packets", ledgerOps.ImportPacket)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
