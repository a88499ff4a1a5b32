package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/internal/tally"
)

// Commit вливает батч событий в леджер.
// Алгоритм: (1) обновить запись участника в ростере; (2) идемпотентно
// дописать каждое событие, дубликаты молча поглощаются и считаются;
// (3) пересчитать итоги редьюсером по полному логу сессии; (4) сохранить
// итоги снапшотом; (5) вернуть итоги.
//
// Коммиты одной сессии сериализуются замком: это защита записи снапшота
// от lost update, сами итоги от порядка коммитов не зависят. Прерванный
// коммит безопасен - каждое событие долговечно по отдельности, повторная
// отправка батча поглотится дедупликацией.
func (s *service) Commit(ctx context.Context, sessionID, actorID, actorName string, events []models.CountEvent) (*CommitResult, error) {
	mu := s.locks.get(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !canMutate(session) {
		return nil, ErrSessionLocked
	}

	// Весь батч проверяется до первой записи: кривое событие не должно
	// поглотиться дедупликацией как чей-то чужой дубликат
	for i := range events {
		if _, _, ok := models.SplitEventID(events[i].EventID); !ok {
			return nil, fmt.Errorf("%w: bad event id %q", ErrInvalidEvent, events[i].EventID)
		}

		if events[i].ItemKey == "" {
			return nil, fmt.Errorf("%w: empty item key in event %s", ErrInvalidEvent, events[i].EventID)
		}
	}

	participant := &models.Participant{
		LastSeenAt:    time.Now(),
		SessionID:     sessionID,
		ParticipantID: actorID,
		DisplayName:   actorName,
		Role:          roleFor(actorID, session),
	}
	if err := s.store.UpsertParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to upsert participant: %w", err)
	}

	applied := 0
	duplicates := 0
	lastApplied := ""

	for i := range events {
		event := events[i]
		// Сессия батча задаётся вызовом, а не полем события
		event.SessionID = sessionID

		ok, err := s.store.AppendEvent(ctx, &event)
		if err != nil {
			return nil, fmt.Errorf("failed to append event %s: %w", event.EventID, err)
		}

		if ok {
			applied++
			lastApplied = event.EventID
		} else {
			duplicates++
		}
	}

	all, err := s.store.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}

	totals := tally.Totals(all)

	if err := s.saveSnapshot(ctx, sessionID, totals, lastApplied); err != nil {
		return nil, err
	}

	s.logger.Info("Commit merged",
		"session_id", sessionID,
		"actor_id", actorID,
		"applied", applied,
		"duplicates", duplicates,
		"items", len(totals))

	return &CommitResult{
		Totals:     totals,
		Applied:    applied,
		Duplicates: duplicates,
	}, nil
}

// saveSnapshot фиксирует свежепересчитанные итоги. lastApplied может быть
// пустым (батч целиком из дубликатов или пустой): тогда маркер последнего
// события переносится из прежнего снапшота.
func (s *service) saveSnapshot(ctx context.Context, sessionID string, totals map[string]int64, lastApplied string) error {
	if lastApplied == "" {
		prev, err := s.store.GetSnapshot(ctx, sessionID)
		switch {
		case err == nil:
			lastApplied = prev.LastEventID
		case errors.Is(err, storage.ErrSnapshotNotFound):
			// первый снапшот сессии без событий
		default:
			return fmt.Errorf("failed to get previous snapshot: %w", err)
		}
	}

	snapshot := &models.Snapshot{
		UpdatedAt:   time.Now(),
		Totals:      totals,
		SessionID:   sessionID,
		LastEventID: lastApplied,
	}
	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}
