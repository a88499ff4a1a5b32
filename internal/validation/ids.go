package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/stocktake/internal/models"
)

// IDPattern определяет допустимый формат идентификаторов сессий и устройств
// Только латинские буквы (a-z, A-Z), цифры (0-9), дефис (-), нижнее подчеркивание (_)
// Длина: 1-64 символа. UUID (36 символов с дефисами) проходит как есть.
var IDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ItemKeyPattern определяет допустимый формат ключа позиции каталога
// Любые печатные символы без пробелов и управляющих кодов: штрихкоды и
// SKU-коды сканеров никогда их не содержат
var ItemKeyPattern = regexp.MustCompile(`^[^\s\p{Cc}]+$`)

const (
	// MaxIDLen максимальная длина идентификатора
	MaxIDLen = 64
	// MaxItemKeyLen максимальная длина ключа позиции в байтах
	MaxItemKeyLen = 128
)

// ValidateSessionID проверяет идентификатор сессии из внешнего запроса
func ValidateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	if len(id) > MaxIDLen {
		return fmt.Errorf("session id must not exceed %d characters", MaxIDLen)
	}

	if !IDPattern.MatchString(id) {
		return fmt.Errorf("session id can only contain letters (a-z, A-Z), numbers (0-9), dashes (-), and underscores (_)")
	}

	return nil
}

// ValidateDeviceID проверяет идентификатор устройства (actor_id, host_id).
// Формат совпадает с идентификатором сессии; двоеточие исключено паттерном,
// поэтому ключ события "{device_id}:{counter}" всегда разбирается однозначно.
func ValidateDeviceID(id string) error {
	if id == "" {
		return fmt.Errorf("device id cannot be empty")
	}

	if len(id) > MaxIDLen {
		return fmt.Errorf("device id must not exceed %d characters", MaxIDLen)
	}

	if !IDPattern.MatchString(id) {
		return fmt.Errorf("device id can only contain letters (a-z, A-Z), numbers (0-9), dashes (-), and underscores (_)")
	}

	return nil
}

// ValidateEventID проверяет ключ события "{device_id}:{counter}".
// Ключ - это единица дедупликации: кривой ключ склеил бы события разных
// устройств в один "дубликат", поэтому отклоняется на границе.
func ValidateEventID(id string) error {
	if _, _, ok := models.SplitEventID(id); !ok {
		return fmt.Errorf("event id must have the form device_id:counter, got %q", id)
	}

	return nil
}

// ValidateItemKey проверяет ключ позиции каталога
// Ключ непрозрачен для системы: допустимо всё печатное без пробелов
func ValidateItemKey(key string) error {
	if key == "" {
		return fmt.Errorf("item key cannot be empty")
	}

	if len(key) > MaxItemKeyLen {
		return fmt.Errorf("item key must not exceed %d bytes", MaxItemKeyLen)
	}

	if !ItemKeyPattern.MatchString(key) {
		return fmt.Errorf("item key cannot contain whitespace or control characters")
	}

	return nil
}
