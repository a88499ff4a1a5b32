package models

import (
	"strconv"
	"strings"
)

// CountEvent представляет атомарный факт подсчёта: подписанную дельту
// количества для одной позиции каталога. Событие неизменяемо: повторная
// доставка записи с тем же EventID является идемпотентным no-op, а не
// обновлением. Именно это делает безопасными повторную передачу пакетов
// и доставку по двум путям сразу (сеть + оптический канал).
type CountEvent struct {
	SessionID string `json:"session_id"` // SessionID сессия подсчёта, которой принадлежит событие
	EventID   string `json:"event_id"`   // EventID глобально уникальный ключ идемпотентности "{device_id}:{counter}"
	ActorID   string `json:"actor_id"`   // ActorID устройство/участник, создавшее событие
	ItemKey   string `json:"item_key"`   // ItemKey идентификатор позиции каталога (непрозрачная строка)
	DeltaQty  int64  `json:"delta_qty"`  // DeltaQty подписанная дельта: положительная "нашли ещё", отрицательная коррекция
	Timestamp int64  `json:"timestamp"`  // Timestamp справочное wall-clock время (unix); никогда не участвует в упорядочивании
}

// NewEventID строит детерминированный ключ идемпотентности события.
// Формат: "{device_id}:{monotonic_counter}". Счётчик устройства строго
// монотонный и никогда не переиспользуется, поэтому ключ уникален глобально.
func NewEventID(deviceID string, seq uint64) string {
	return deviceID + ":" + strconv.FormatUint(seq, 10)
}

// SplitEventID разбирает ключ события обратно на устройство и счётчик.
// Возвращает false, если строка не соответствует формату "{device_id}:{counter}".
func SplitEventID(eventID string) (deviceID string, seq uint64, ok bool) {
	i := strings.LastIndexByte(eventID, ':')
	if i <= 0 || i == len(eventID)-1 {
		return "", 0, false
	}
	seq, err := strconv.ParseUint(eventID[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return eventID[:i], seq, true
}
