package ledger

import "errors"

// Ошибки леджера. Это явные результаты проверок на границе сервиса,
// обработчики транспорта сопоставляют их со статусами ответов.
var (
	// ErrSessionLocked сессия заблокирована и больше не принимает изменений
	ErrSessionLocked = errors.New("session is locked")

	// ErrNotHost операция доступна только хосту сессии
	ErrNotHost = errors.New("actor is not the session host")

	// ErrInvalidEvent событие батча не проходит проверку формы
	ErrInvalidEvent = errors.New("invalid event")
)
