package tally

import (
	"sync"

	"github.com/iudanet/stocktake/internal/models"
)

// EventSet представляет grow-only набор событий подсчёта с дедупликацией
// по EventID. Добавление коммутативно, ассоциативно и идемпотентно, поэтому
// слияние состояний двух устройств не требует упорядочивания и автоматически
// поглощает дубликаты при повторной доставке.
type EventSet struct {
	elements map[string]models.CountEvent // map[event_id]event
	mu       sync.RWMutex                 // мьютекс для потокобезопасности
}

// NewEventSet создает новый пустой набор событий.
func NewEventSet() *EventSet {
	return &EventSet{
		elements: make(map[string]models.CountEvent),
	}
}

// Add добавляет событие в набор. Возвращает false, если событие с таким
// EventID уже присутствует: содержимое события неизменяемо, поэтому повтор
// является идемпотентным no-op, а не обновлением.
func (s *EventSet) Add(event models.CountEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.elements[event.EventID]; exists {
		return false
	}

	s.elements[event.EventID] = event
	return true
}

// AddBatch добавляет пакет событий и возвращает количество фактически
// применённых (дубликаты молча поглощаются).
func (s *EventSet) AddBatch(events []models.CountEvent) int {
	applied := 0
	for _, event := range events {
		if s.Add(event) {
			applied++
		}
	}
	return applied
}

// Events возвращает все события набора. Порядок не определён:
// корректность редукции от порядка не зависит.
func (s *EventSet) Events() []models.CountEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.CountEvent, 0, len(s.elements))
	for _, event := range s.elements {
		result = append(result, event)
	}

	return result
}

// Totals сворачивает набор в итоги {item_key -> qty}: сумма DeltaQty по
// каждой позиции. Отрицательные итоги не ограничиваются: коррекции могут
// временно уводить количество ниже нуля, и ядро обязано это сохранять.
func (s *EventSet) Totals() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int64)
	for _, event := range s.elements {
		totals[event.ItemKey] += event.DeltaQty
	}

	return totals
}

// Size возвращает количество уникальных событий в наборе.
func (s *EventSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.elements)
}
