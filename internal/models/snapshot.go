package models

import "time"

// Snapshot кэшированный агрегат итогов сессии: {item_key -> qty} плюс
// идентификатор последнего события, учтённого в агрегате. Позволяет
// устройству продолжить подсчёт после рестарта без полного реплея лога.
// Производный артефакт: источником истины всегда остаются журнал событий
// и редьюсер, снапшот в любой момент можно пересчитать заново.
type Snapshot struct {
	UpdatedAt   time.Time        `json:"updated_at"`    // UpdatedAt время последнего пересчёта
	Totals      map[string]int64 `json:"totals"`        // Totals итоговые количества по позициям
	SessionID   string           `json:"session_id"`    // SessionID сессия, к которой относится снапшот
	LastEventID string           `json:"last_event_id"` // LastEventID последнее событие, учтённое в агрегате
}

// Clone создает глубокую копию снапшота.
func (s *Snapshot) Clone() *Snapshot {
	totals := make(map[string]int64, len(s.Totals))
	for k, v := range s.Totals {
		totals[k] = v
	}
	return &Snapshot{
		UpdatedAt:   s.UpdatedAt,
		Totals:      totals,
		SessionID:   s.SessionID,
		LastEventID: s.LastEventID,
	}
}

// Mismatch расхождение между свежефинализированными итогами и итогами
// предыдущей заблокированной сессии по той же позиции. Отсутствующая
// сторона считается нулём. Отчёт справочный, не блокирующая ошибка.
type Mismatch struct {
	ItemKey  string `json:"item_key"` // ItemKey позиция каталога
	Current  int64  `json:"current"`  // Current итог текущей сессии
	Previous int64  `json:"previous"` // Previous итог предыдущей заблокированной сессии
	Delta    int64  `json:"delta"`    // Delta = Current - Previous
}
