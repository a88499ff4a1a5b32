package device

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// Record записывает дельту количества для позиции каталога. Событие
// получает следующий ключ идемпотентности устройства, ложится в outbox
// и сразу вливается в локальную копию леджера, чтобы итоги на экране
// не ждали синхронизации.
func (s *service) Record(ctx context.Context, itemKey string, delta int64) (*models.CountEvent, error) {
	if err := validation.ValidateItemKey(itemKey); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, fmt.Errorf("delta must not be zero")
	}

	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := s.sequence(ctx)
	if err != nil {
		return nil, err
	}

	eventID, err := seq.NextEventID(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	event := &models.CountEvent{
		SessionID: m.SessionID,
		EventID:   eventID,
		ActorID:   seq.DeviceID(),
		ItemKey:   itemKey,
		DeltaQty:  delta,
		Timestamp: time.Now().Unix(),
	}

	// Сначала outbox: упавший после этой точки процесс ничего не теряет,
	// событие доедет до хоста при следующей синхронизации
	if err := s.store.SavePendingEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save pending event: %w", err)
	}

	if _, err := s.ledger.Commit(ctx, m.SessionID, identity.DeviceID, identity.DisplayName, []models.CountEvent{*event}); err != nil {
		return nil, fmt.Errorf("failed to apply event locally: %w", err)
	}

	s.logger.Debug("Event recorded",
		"event_id", eventID,
		"item_key", itemKey,
		"delta", delta)

	return event, nil
}

// Scan записывает дельту по отсканированному коду. Код прогоняется через
// резолвер каталога; не найденный код становится позицией как есть и
// всплывает оператору как несопоставленный - леджер никогда не теряет
// легитимные подсчёты из-за дыр в каталоге.
func (s *service) Scan(ctx context.Context, code string, delta int64) (*ScanResult, error) {
	itemKey := code
	matched := false

	if s.resolver != nil {
		resolved, ok, err := s.resolver.Resolve(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("catalog resolver failed: %w", err)
		}
		if ok {
			itemKey = resolved
			matched = true
		}
	}

	event, err := s.Record(ctx, itemKey, delta)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Event:   event,
		ItemKey: itemKey,
		Matched: matched,
	}, nil
}
