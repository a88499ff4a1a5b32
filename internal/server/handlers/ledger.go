package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/validation"
	"github.com/iudanet/stocktake/pkg/api"
)

// LedgerHandler обрабатывает мутации леджера: коммиты батчей событий,
// импорт пакетов оптического канала и финализацию сессии. Все три пути
// сходятся в одном сервисе слияния.
type LedgerHandler struct {
	logger  *slog.Logger
	service ledger.Service
}

// NewLedgerHandler создает новый handler для операций леджера
func NewLedgerHandler(logger *slog.Logger, service ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		logger:  logger,
		service: service,
	}
}

// Commit обрабатывает POST /api/v1/sessions/{session_id}/commit
// Вливание батча событий в леджер; дубликаты поглощаются молча
func (h *LedgerHandler) Commit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.PathValue("session_id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode commit request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDeviceID(req.ActorID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDisplayName(req.ActorName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, event := range req.Events {
		if err := validation.ValidateEventID(event.EventID); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validation.ValidateItemKey(event.ItemKey); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := h.service.Commit(ctx, sessionID, req.ActorID, req.ActorName, eventsFromDTO(sessionID, req.Events))
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to commit events",
				slog.String("session_id", sessionID),
				slog.String("actor_id", req.ActorID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", status)
			return
		}
		sendError(h.logger, w, err.Error(), status)
		return
	}

	resp := api.CommitResponse{
		Totals:     api.TotalsToList(result.Totals),
		Applied:    result.Applied,
		Duplicates: result.Duplicates,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Finalize обрабатывает POST /api/v1/sessions/{session_id}/finalize
// Фиксация итогов и переход в finalizing или locked; только хост
func (h *LedgerHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.PathValue("session_id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode finalize request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDeviceID(req.FinalizedBy); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Finalize(ctx, sessionID, req.FinalizedBy, req.Lock)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to finalize session",
				slog.String("session_id", sessionID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", status)
			return
		}
		sendError(h.logger, w, err.Error(), status)
		return
	}

	resp := api.FinalizeResponse{
		Status:     string(result.Status),
		Totals:     api.TotalsToList(result.Totals),
		Mismatches: mismatchesToDTO(result.Mismatches),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ImportPacket обрабатывает POST /api/v1/sessions/{session_id}/packets
// Хост отдаёт закодированный пакет участника; сервер вливает его события
// и возвращает закодированный ack-пакет для обратной передачи
func (h *LedgerHandler) ImportPacket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.PathValue("session_id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.ImportPacketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode packet request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateDeviceID(req.SubmittedBy); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Packet == "" {
		sendError(h.logger, w, "packet is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.ImportPacket(ctx, sessionID, req.SubmittedBy, req.Packet)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to import packet",
				slog.String("session_id", sessionID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", status)
			return
		}
		sendError(h.logger, w, err.Error(), status)
		return
	}

	resp := api.ImportPacketResponse{
		AckPacket:  result.AckPacket,
		ActorID:    result.ActorID,
		Totals:     api.TotalsToList(result.Totals),
		Applied:    result.Applied,
		Duplicates: result.Duplicates,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
