package tally

import (
	"sort"

	"github.com/iudanet/stocktake/internal/models"
)

// Diff сравнивает свежие итоги с итогами предыдущей заблокированной сессии
// и возвращает расхождения по позициям. Позиция, присутствующая только с
// одной стороны, учитывается с нулём на отсутствующей. Позиции с нулевой
// дельтой в отчёт не попадают. Результат отсортирован по ItemKey.
func Diff(current, previous map[string]int64) []models.Mismatch {
	keys := make(map[string]struct{}, len(current)+len(previous))
	for k := range current {
		keys[k] = struct{}{}
	}
	for k := range previous {
		keys[k] = struct{}{}
	}

	mismatches := make([]models.Mismatch, 0, len(keys))
	for k := range keys {
		cur := current[k]
		prev := previous[k]
		if cur == prev {
			continue
		}
		mismatches = append(mismatches, models.Mismatch{
			ItemKey:  k,
			Current:  cur,
			Previous: prev,
			Delta:    cur - prev,
		})
	}

	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].ItemKey < mismatches[j].ItemKey
	})

	return mismatches
}
