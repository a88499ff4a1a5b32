package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	ledgerstore "github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/pkg/api"
)

// Finalize фиксирует итоги сессии и переводит её в finalizing или locked.
// Только хост. Для серверной сессии переход выполняет сервер, локальная
// копия догоняет его статусом.
func (s *service) Finalize(ctx context.Context, lock bool) (*ledger.FinalizeResult, error) {
	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}
	if !m.IsHost() {
		return nil, ledger.ErrNotHost
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	var result *ledger.FinalizeResult

	if m.Remote && s.client != nil {
		resp, err := s.client.Finalize(ctx, m.SessionID, api.FinalizeRequest{
			FinalizedBy: identity.DeviceID,
			Lock:        lock,
		})
		if err != nil {
			return nil, fmt.Errorf("server finalize failed: %w", err)
		}

		mismatches := make([]models.Mismatch, 0, len(resp.Mismatches))
		for _, dto := range resp.Mismatches {
			mismatches = append(mismatches, models.Mismatch{
				ItemKey:  dto.ItemKey,
				Current:  dto.Current,
				Previous: dto.Previous,
				Delta:    dto.Delta,
			})
		}
		result = &ledger.FinalizeResult{
			Mismatches: mismatches,
			Status:     models.SessionStatus(resp.Status),
			Totals:     api.TotalsToMap(resp.Totals),
		}

		// Локальная копия догоняет серверный статус; сбой не критичен,
		// авторитет в этом режиме - сервер
		if err := s.store.UpdateSessionStatus(ctx, m.SessionID, result.Status, identity.DeviceID); err != nil {
			s.logger.Warn("Failed to update local session status", "error", err)
		}
	} else {
		result, err = s.ledger.Finalize(ctx, m.SessionID, identity.DeviceID, lock)
		if err != nil {
			return nil, err
		}
	}

	if err := s.adoptTotals(ctx, m.SessionID, result.Totals, ""); err != nil {
		return nil, err
	}

	s.logger.Info("Session finalized",
		"session_id", m.SessionID,
		"status", string(result.Status),
		"mismatches", len(result.Mismatches))

	return result, nil
}

// Upload передаёт зафиксированные итоги внешней системе учёта и
// возвращает её квитанцию. Требует заблокированной сессии: выгружать
// итоги, которые ещё могут измениться, бессмысленно. Сбой выгрузки
// никогда не трогает состояние сессии - оператор просто повторяет.
func (s *service) Upload(ctx context.Context) (string, error) {
	if s.uploader == nil {
		return "", errors.New("no upstream uploader configured")
	}

	m, err := s.membership(ctx)
	if err != nil {
		return "", err
	}
	if !m.IsHost() {
		return "", ledger.ErrNotHost
	}

	session, err := s.store.GetSession(ctx, m.SessionID)
	if err != nil {
		if errors.Is(err, ledgerstore.ErrSessionNotFound) {
			return "", ErrNotJoined
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	if session.Status != models.SessionLocked {
		return "", fmt.Errorf("session must be locked before upload, status is %s", session.Status)
	}

	totals, err := s.localTotals(ctx, m.SessionID)
	if err != nil {
		return "", err
	}

	receipt, err := s.uploader.Submit(ctx, m.SessionID, totals)
	if err != nil {
		return "", fmt.Errorf("upstream upload failed: %w", err)
	}

	s.logger.Info("Totals uploaded",
		"session_id", m.SessionID,
		"items", len(totals),
		"receipt", receipt)

	return receipt, nil
}
