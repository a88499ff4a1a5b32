package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/internal/tally"
)

// Finalize фиксирует итоги сессии и переводит её в finalizing (lock=false)
// или сразу в locked (lock=true). Повторный finalize без lock допустим,
// выход из locked невозможен. Доступно только хосту.
//
// Отчёт о расхождениях сравнивает свежие итоги с итогами самой недавней
// ранее заблокированной сессии; отсутствующая сторона считается нулём.
// Отчёт справочный и никогда не блокирует переход.
func (s *service) Finalize(ctx context.Context, sessionID, finalizedBy string, lock bool) (*FinalizeResult, error) {
	mu := s.locks.get(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !canFinalize(finalizedBy, session) {
		return nil, ErrNotHost
	}

	next := models.SessionFinalizing
	if lock {
		next = models.SessionLocked
	}
	if !session.Status.CanTransitionTo(next) {
		return nil, ErrSessionLocked
	}

	// Итоги финализации - полный пересчёт лога, не снапшот
	events, err := s.store.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}
	totals := tally.Totals(events)

	mismatches, err := s.reconcile(ctx, sessionID, totals)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateSessionStatus(ctx, sessionID, next, finalizedBy); err != nil {
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}

	if err := s.saveSnapshot(ctx, sessionID, totals, ""); err != nil {
		return nil, err
	}

	s.logger.Info("Session finalized",
		"session_id", sessionID,
		"finalized_by", finalizedBy,
		"status", string(next),
		"mismatches", len(mismatches))

	return &FinalizeResult{
		Mismatches: mismatches,
		Status:     next,
		Totals:     totals,
	}, nil
}

// reconcile строит отчёт о расхождениях с предыдущей заблокированной
// сессией. Если такой сессии нет (первая инвентаризация), отчёт пуст.
func (s *service) reconcile(ctx context.Context, sessionID string, totals map[string]int64) ([]models.Mismatch, error) {
	baseline, err := s.store.GetLatestLockedSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get baseline session: %w", err)
	}

	previous, err := s.baselineTotals(ctx, baseline.ID)
	if err != nil {
		return nil, err
	}

	return tally.Diff(totals, previous), nil
}

// baselineTotals итоги заблокированной сессии: из её снапшота, при его
// отсутствии - полным пересчётом лога.
func (s *service) baselineTotals(ctx context.Context, sessionID string) (map[string]int64, error) {
	snapshot, err := s.store.GetSnapshot(ctx, sessionID)
	if err == nil {
		return snapshot.Totals, nil
	}
	if !errors.Is(err, storage.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to get baseline snapshot: %w", err)
	}

	events, err := s.store.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline events: %w", err)
	}

	return tally.Totals(events), nil
}
