package tally

import (
	"sort"

	"github.com/iudanet/stocktake/internal/models"
)

// Totals сводит пакет событий в карту итогов {item_key -> qty}.
// Чистая функция: сумма DeltaQty по каждой позиции после дедупликации по
// EventID. Результат не зависит ни от порядка событий, ни от наличия
// дубликатов: повторный прогон на надмножестве с уже виденными событиями
// даёт тот же результат, что и инкрементальный.
func Totals(events []models.CountEvent) map[string]int64 {
	set := NewEventSet()
	set.AddBatch(events)
	return set.Totals()
}

// SortedItemKeys возвращает ключи карты итогов в лексикографическом
// порядке для детерминированного вывода.
func SortedItemKeys(totals map[string]int64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
