package tally

import (
	"context"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
)

//go:generate moq -out sequence_mock.go . SequenceStore

// SequenceStore хранит монотонный счётчик событий устройства.
// Счётчик обязан переживать рестарты: выданное значение никогда не
// выдаётся повторно, иначе устройство переиспользует EventID.
type SequenceStore interface {
	// NextSequence атомарно увеличивает счётчик и возвращает новое значение
	NextSequence(ctx context.Context) (uint64, error)
}

// DeviceSequence выдаёт ключи идемпотентности для событий одного устройства.
// Явно внедряемый объект с персистентным счётчиком, а не глобальное
// состояние процесса: устройство создаёт его один раз при старте и передаёт
// в конструирование каждого события.
type DeviceSequence struct {
	store    SequenceStore
	deviceID string
}

// NewDeviceSequence создает генератор ключей для устройства deviceID
// поверх персистентного счётчика store.
func NewDeviceSequence(deviceID string, store SequenceStore) *DeviceSequence {
	return &DeviceSequence{
		store:    store,
		deviceID: deviceID,
	}
}

// DeviceID возвращает идентификатор устройства, от имени которого
// нумеруются события.
func (d *DeviceSequence) DeviceID() string {
	return d.deviceID
}

// NextEventID выдаёт следующий уникальный ключ события "{device_id}:{counter}".
func (d *DeviceSequence) NextEventID(ctx context.Context) (string, error) {
	seq, err := d.store.NextSequence(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to advance device sequence: %w", err)
	}
	return models.NewEventID(d.deviceID, seq), nil
}
