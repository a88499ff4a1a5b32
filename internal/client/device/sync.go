package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	ledgerstore "github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/internal/tally"
	"github.com/iudanet/stocktake/pkg/api"
)

// Sync отправляет outbox на сервер одним коммитом и принимает
// авторитетные итоги как новую базу. Ответ сервера и есть ack: все
// отправленные события помечаются синхронизированными, дубликаты от
// повтора после оборванного ответа сервер поглощает молча.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	if s.client == nil {
		return nil, ErrNoServer
	}

	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.GetPendingEvents(ctx, m.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}

	events := make([]api.EventDTO, 0, len(pending))
	eventIDs := make([]string, 0, len(pending))
	for _, event := range pending {
		events = append(events, api.EventDTO{
			EventID:   event.EventID,
			ActorID:   event.ActorID,
			ItemKey:   event.ItemKey,
			DeltaQty:  event.DeltaQty,
			Timestamp: event.Timestamp,
		})
		eventIDs = append(eventIDs, event.EventID)
	}

	resp, err := s.client.Commit(ctx, m.SessionID, api.CommitRequest{
		ActorID:   identity.DeviceID,
		ActorName: identity.DisplayName,
		Events:    events,
	})
	if err != nil {
		return nil, fmt.Errorf("sync commit failed: %w", err)
	}

	totals := api.TotalsToMap(resp.Totals)

	if err := s.store.MarkEventsSynced(ctx, eventIDs); err != nil {
		return nil, fmt.Errorf("failed to mark events synced: %w", err)
	}

	if err := s.adoptTotals(ctx, m.SessionID, totals, lastOf(eventIDs)); err != nil {
		return nil, err
	}

	s.logger.Info("Synchronized with server",
		"session_id", m.SessionID,
		"pushed", len(events),
		"applied", resp.Applied,
		"duplicates", resp.Duplicates)

	return &SyncResult{
		Totals:     totals,
		Pushed:     len(events),
		Applied:    resp.Applied,
		Duplicates: resp.Duplicates,
	}, nil
}

// Status собирает наблюдаемое состояние устройства: идентичность,
// членство, локальную копию сессии с ростером, итоги и размер outbox.
// Вне сессии заполнена только идентичность.
func (s *service) Status(ctx context.Context) (*Status, error) {
	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{Identity: identity}

	m, err := s.membership(ctx)
	if err != nil {
		if errors.Is(err, ErrNotJoined) {
			return status, nil
		}
		return nil, err
	}
	status.Membership = m

	// Для серверной сессии статус отражает авторитетное состояние:
	// чужие коммиты видны сразу, а не после следующего sync. При
	// недоступном сервере показывается локальное зеркало.
	if m.Remote && s.client != nil {
		state, err := s.client.GetState(ctx, m.SessionID)
		if err != nil {
			s.logger.Warn("Server state unavailable, showing local mirror",
				"session_id", m.SessionID,
				"error", err)
		} else {
			status.Session = sessionFromDTO(state.Session)
			status.Participants = participantsFromDTO(m.SessionID, state.Participants)
			status.Totals = api.TotalsToMap(state.Totals)

			status.Pending, err = s.store.CountPendingEvents(ctx, m.SessionID)
			if err != nil {
				return nil, fmt.Errorf("failed to count pending events: %w", err)
			}
			return status, nil
		}
	}

	session, err := s.store.GetSession(ctx, m.SessionID)
	if err == nil {
		status.Session = session
	} else if !errors.Is(err, ledgerstore.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	participants, err := s.store.GetParticipants(ctx, m.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	status.Participants = participants

	status.Totals, err = s.localTotals(ctx, m.SessionID)
	if err != nil {
		return nil, err
	}

	status.Pending, err = s.store.CountPendingEvents(ctx, m.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending events: %w", err)
	}

	return status, nil
}

func sessionFromDTO(dto api.SessionDTO) *models.Session {
	return &models.Session{
		CreatedAt:   time.Unix(dto.CreatedAt, 0),
		ID:          dto.ID,
		Name:        dto.Name,
		HostID:      dto.HostID,
		FinalizedBy: dto.FinalizedBy,
		Status:      models.SessionStatus(dto.Status),
	}
}

func participantsFromDTO(sessionID string, list []api.ParticipantDTO) []models.Participant {
	participants := make([]models.Participant, 0, len(list))
	for _, dto := range list {
		participants = append(participants, models.Participant{
			LastSeenAt:    time.Unix(dto.LastSeenAt, 0),
			SessionID:     sessionID,
			ParticipantID: dto.ParticipantID,
			DisplayName:   dto.DisplayName,
			Role:          models.Role(dto.Role),
		})
	}
	return participants
}

// localTotals итоги из локального снапшота; при его отсутствии полный
// пересчёт локальной копии лога.
func (s *service) localTotals(ctx context.Context, sessionID string) (map[string]int64, error) {
	snapshot, err := s.store.GetSnapshot(ctx, sessionID)
	if err == nil {
		return snapshot.Totals, nil
	}
	if !errors.Is(err, ledgerstore.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	events, err := s.store.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}
	return tally.Totals(events), nil
}

// adoptTotals фиксирует принятые авторитетные итоги локальным снапшотом.
func (s *service) adoptTotals(ctx context.Context, sessionID string, totals map[string]int64, lastEventID string) error {
	snapshot := &models.Snapshot{
		UpdatedAt:   time.Now(),
		Totals:      totals,
		SessionID:   sessionID,
		LastEventID: lastEventID,
	}
	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func lastOf(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1]
}
