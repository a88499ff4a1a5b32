package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/stocktake/internal/models"
)

func TestTotals_BasicMerge(t *testing.T) {
	// Два устройства считают одну позицию независимо
	events := []models.CountEvent{
		{SessionID: "s1", EventID: "A:1", ActorID: "A", ItemKey: "widget", DeltaQty: 3},
		{SessionID: "s1", EventID: "B:1", ActorID: "B", ItemKey: "widget", DeltaQty: 2},
	}

	totals := Totals(events)
	assert.Equal(t, int64(5), totals["widget"])
}

func TestTotals_OrderIndependence(t *testing.T) {
	events := []models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 3},
		{EventID: "B:1", ItemKey: "widget", DeltaQty: 2},
		{EventID: "A:2", ItemKey: "gadget", DeltaQty: -1},
	}

	// Все шесть перестановок пакета из трёх событий
	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}

	expected := Totals(events)
	for _, perm := range permutations {
		permuted := make([]models.CountEvent, len(events))
		for i, idx := range perm {
			permuted[i] = events[idx]
		}
		assert.Equal(t, expected, Totals(permuted), "Totals must not depend on event order")
	}
}

func TestTotals_DuplicateDelivery(t *testing.T) {
	// Одно и то же событие доставлено дважды (например, сеть + оптический канал)
	events := []models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 3},
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 3},
	}

	totals := Totals(events)
	assert.Equal(t, int64(3), totals["widget"], "Duplicate must be absorbed, not doubled")
}

func TestTotals_Correction(t *testing.T) {
	// Нашли пять, потом исправили на два меньше
	events := []models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 5},
		{EventID: "A:2", ItemKey: "widget", DeltaQty: -2},
	}

	totals := Totals(events)
	assert.Equal(t, int64(3), totals["widget"])
}

func TestTotals_NetNegativeNotClamped(t *testing.T) {
	events := []models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 1},
		{EventID: "A:2", ItemKey: "widget", DeltaQty: -4},
	}

	totals := Totals(events)
	assert.Equal(t, int64(-3), totals["widget"], "Core must never clamp negative totals")
}

func TestTotals_ReplayOnSuperset(t *testing.T) {
	base := []models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 3},
		{EventID: "B:1", ItemKey: "widget", DeltaQty: 2},
	}

	// Надмножество: старые события плюс одно новое
	superset := append([]models.CountEvent{
		{EventID: "A:1", ItemKey: "widget", DeltaQty: 3},
	}, base...)
	superset = append(superset, models.CountEvent{EventID: "B:2", ItemKey: "widget", DeltaQty: 1})

	totals := Totals(superset)
	assert.Equal(t, int64(6), totals["widget"], "Replay on a superset must equal incremental result")
}

func TestTotals_Empty(t *testing.T) {
	totals := Totals(nil)
	assert.Empty(t, totals)
}

func TestSortedItemKeys(t *testing.T) {
	totals := map[string]int64{
		"widget": 5,
		"anvil":  1,
		"gadget": -2,
	}

	assert.Equal(t, []string{"anvil", "gadget", "widget"}, SortedItemKeys(totals))
	assert.Empty(t, SortedItemKeys(nil))
}
