package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/packet"
	"github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/pkg/api"
)

// statusForError сопоставляет ошибки сервиса леджера со статусами HTTP.
// Сентинельные ошибки - явные результаты проверок на границе сервиса,
// всё остальное считается сбоем хранилища.
func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrSessionLocked):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrNotHost):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, packet.ErrPacketSessionMismatch):
		return http.StatusConflict
	case errors.Is(err, packet.ErrPacketMalformed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendJSON отправляет успешный JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой в формате api.ErrorResponse
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sessionToDTO конвертирует сессию в API формат
func sessionToDTO(session *models.Session) api.SessionDTO {
	return api.SessionDTO{
		ID:          session.ID,
		Name:        session.Name,
		HostID:      session.HostID,
		Status:      string(session.Status),
		FinalizedBy: session.FinalizedBy,
		CreatedAt:   session.CreatedAt.Unix(),
	}
}

// participantsToDTO конвертирует ростер в API формат
func participantsToDTO(participants []models.Participant) []api.ParticipantDTO {
	dtos := make([]api.ParticipantDTO, 0, len(participants))
	for _, p := range participants {
		dtos = append(dtos, api.ParticipantDTO{
			ParticipantID: p.ParticipantID,
			DisplayName:   p.DisplayName,
			Role:          string(p.Role),
			LastSeenAt:    p.LastSeenAt.Unix(),
		})
	}
	return dtos
}

// mismatchesToDTO конвертирует отчёт о расхождениях в API формат
func mismatchesToDTO(mismatches []models.Mismatch) []api.MismatchDTO {
	dtos := make([]api.MismatchDTO, 0, len(mismatches))
	for _, m := range mismatches {
		dtos = append(dtos, api.MismatchDTO{
			ItemKey:  m.ItemKey,
			Current:  m.Current,
			Previous: m.Previous,
			Delta:    m.Delta,
		})
	}
	return dtos
}

// eventsFromDTO конвертирует события запроса в доменную модель.
// SessionID проставляется из пути запроса, а не из тела.
func eventsFromDTO(sessionID string, dtos []api.EventDTO) []models.CountEvent {
	events := make([]models.CountEvent, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, models.CountEvent{
			SessionID: sessionID,
			EventID:   dto.EventID,
			ActorID:   dto.ActorID,
			ItemKey:   dto.ItemKey,
			DeltaQty:  dto.DeltaQty,
			Timestamp: dto.Timestamp,
		})
	}
	return events
}
