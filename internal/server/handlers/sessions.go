package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/validation"
	"github.com/iudanet/stocktake/pkg/api"
)

// SessionHandler обрабатывает запросы жизненного цикла сессии подсчёта
type SessionHandler struct {
	logger  *slog.Logger
	service ledger.Service
}

// NewSessionHandler создает новый handler для сессий
func NewSessionHandler(logger *slog.Logger, service ledger.Service) *SessionHandler {
	return &SessionHandler{
		logger:  logger,
		service: service,
	}
}

// Create обрабатывает POST /api/v1/sessions
// Создание новой сессии подсчёта, хост становится первым участником
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create session request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateSessionName(req.SessionName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDeviceID(req.HostID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDisplayName(req.HostName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.Create(ctx, req.SessionName, req.HostID, req.HostName)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create session", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CreateSessionResponse{SessionID: session.ID}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Join обрабатывает POST /api/v1/sessions/{session_id}/join
// Регистрация участника в ростере; допустимо в active и finalizing
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.PathValue("session_id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.JoinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode join request", slog.Any("error", err))
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

	session, err := h.service.Join(ctx, sessionID, req.ActorID, req.ActorName)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to join session",
				slog.String("session_id", sessionID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", status)
			return
		}
		sendError(h.logger, w, err.Error(), status)
		return
	}

	resp := api.JoinSessionResponse{
		OK:          true,
		SessionName: session.Name,
		HostID:      session.HostID,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// State обрабатывает GET /api/v1/sessions/{session_id}
// Чистое чтение состояния: сессия, ростер, итоги. Работает в любом статусе
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.PathValue("session_id")
	if err := validation.ValidateSessionID(sessionID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.State(ctx, sessionID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "failed to get session state",
				slog.String("session_id", sessionID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", status)
			return
		}
		sendError(h.logger, w, err.Error(), status)
		return
	}

	resp := api.StateResponse{
		Session:      sessionToDTO(state.Session),
		Participants: participantsToDTO(state.Participants),
		Totals:       api.TotalsToList(state.Totals),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
