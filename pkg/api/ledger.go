package api

import "sort"

// EventDTO представляет одно событие подсчёта для синхронизации.
// Сессия задаётся путём запроса или контекстом пакета, поэтому в DTO
// события её нет.
type EventDTO struct {
	EventID   string `json:"event_id"`  // ключ идемпотентности "{device_id}:{counter}"
	ActorID   string `json:"actor_id"`  // устройство, создавшее событие
	ItemKey   string `json:"item_key"`  // позиция каталога
	DeltaQty  int64  `json:"delta_qty"` // подписанная дельта количества
	Timestamp int64  `json:"timestamp"` // справочное wall-clock время (unix)
}

// TotalDTO представляет итог по одной позиции каталога
type TotalDTO struct {
	ItemKey string `json:"item_key"` // позиция каталога
	Qty     int64  `json:"qty"`      // итоговое количество
}

// MismatchDTO представляет расхождение с предыдущей заблокированной сессией
type MismatchDTO struct {
	ItemKey  string `json:"item_key"` // позиция каталога
	Current  int64  `json:"current"`  // итог текущей сессии
	Previous int64  `json:"previous"` // итог предыдущей заблокированной сессии
	Delta    int64  `json:"delta"`    // Current - Previous
}

// CommitRequest представляет батч событий для вливания в леджер
type CommitRequest struct {
	ActorID   string     `json:"actor_id"`   // отправитель батча
	ActorName string     `json:"actor_name"` // отображаемое имя отправителя
	Events    []EventDTO `json:"events"`     // события батча
}

// CommitResponse представляет ответ сервера на коммит
type CommitResponse struct {
	Totals     []TotalDTO `json:"totals"`     // свежие итоги после слияния
	Applied    int        `json:"applied"`    // впервые записанные события
	Duplicates int        `json:"duplicates"` // молча поглощённые дубликаты
}

// FinalizeRequest представляет запрос на финализацию сессии
type FinalizeRequest struct {
	FinalizedBy string `json:"finalized_by"` // кто финализирует (только хост)
	Lock        bool   `json:"lock"`         // true переводит сразу в locked
}

// FinalizeResponse представляет ответ на финализацию
type FinalizeResponse struct {
	Status     string        `json:"status"`     // статус сессии после перехода
	Totals     []TotalDTO    `json:"totals"`     // зафиксированные итоги
	Mismatches []MismatchDTO `json:"mismatches"` // расхождения с предыдущей заблокированной сессией
}

// ImportPacketRequest представляет пакет участника, принесённый хостом
type ImportPacketRequest struct {
	SubmittedBy string `json:"submitted_by"` // устройство-хост, отправившее пакет
	Packet      string `json:"packet"`       // закодированный пакет участника
}

// ImportPacketResponse представляет результат импорта пакета
type ImportPacketResponse struct {
	AckPacket  string     `json:"ack_packet"` // закодированный ack для обратной передачи
	ActorID    string     `json:"actor_id"`   // участник, чьи события импортированы
	Totals     []TotalDTO `json:"totals"`     // итоги после слияния
	Applied    int        `json:"applied"`    // впервые записанные события
	Duplicates int        `json:"duplicates"` // поглощённые дубликаты
}

// TotalsToList конвертирует карту итогов в отсортированный по позициям
// список DTO: JSON с детерминированным порядком удобнее сверять глазами
// и в тестах.
func TotalsToList(totals map[string]int64) []TotalDTO {
	list := make([]TotalDTO, 0, len(totals))
	for key, qty := range totals {
		list = append(list, TotalDTO{ItemKey: key, Qty: qty})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ItemKey < list[j].ItemKey
	})
	return list
}

// TotalsToMap конвертирует список DTO итогов обратно в карту.
func TotalsToMap(list []TotalDTO) map[string]int64 {
	totals := make(map[string]int64, len(list))
	for _, t := range list {
		totals[t.ItemKey] = t.Qty
	}
	return totals
}
