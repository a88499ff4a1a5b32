package models

import "time"

// SessionStatus статус жизненного цикла сессии подсчёта.
// Переходы строго монотонны: active -> finalizing -> locked.
// Обратных переходов нет, из locked выхода нет.
type SessionStatus string

const (
	SessionActive     SessionStatus = "active"
	SessionFinalizing SessionStatus = "finalizing"
	SessionLocked     SessionStatus = "locked"
)

var statusRank = map[SessionStatus]int{
	SessionActive:     0,
	SessionFinalizing: 1,
	SessionLocked:     2,
}

// Valid проверяет, что статус известен (используется при чтении из хранилища).
func (s SessionStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Разрешены только монотонные переходы; повторный finalize без lock
// (finalizing -> finalizing) допустим.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == SessionLocked {
		return false
	}
	return statusRank[next] >= statusRank[s]
}

// Session — единица работы: один совместный подсчёт склада.
// Ровно одно устройство держит роль host (создатель сессии); хост может
// финализировать сессию и импортировать пакеты других участников.
type Session struct {
	CreatedAt   time.Time     `json:"created_at"`             // CreatedAt время создания сессии
	FinalizedAt time.Time     `json:"finalized_at,omitempty"` // FinalizedAt время финализации (нулевое до finalize)
	ID          string        `json:"id"`                     // ID уникальный идентификатор сессии (UUID)
	Name        string        `json:"name"`                   // Name человекочитаемое имя ("Склад А, август")
	HostID      string        `json:"host_id"`                // HostID устройство-хост сессии
	FinalizedBy string        `json:"finalized_by,omitempty"` // FinalizedBy кто финализировал (пусто до finalize)
	Status      SessionStatus `json:"status"`                 // Status текущий статус жизненного цикла
}

// Mutable сообщает, принимает ли сессия ещё изменения леджера.
func (s *Session) Mutable() bool {
	return s.Status != SessionLocked
}

// Role роль участника в сессии.
type Role string

const (
	RoleHost        Role = "host"
	RoleParticipant Role = "participant"
)

// Participant запись ростера участников сессии. Создаётся при первом
// контакте (create, join или импорт пакета), обновляется при каждом
// последующем и не удаляется, пока сессия жива. LastSeenAt носит чисто
// информационный характер и не влияет на корректность леджера.
type Participant struct {
	LastSeenAt    time.Time `json:"last_seen_at"`   // LastSeenAt время последнего контакта
	SessionID     string    `json:"session_id"`     // SessionID сессия, к которой относится запись
	ParticipantID string    `json:"participant_id"` // ParticipantID идентификатор устройства участника
	DisplayName   string    `json:"display_name"`   // DisplayName отображаемое имя
	Role          Role      `json:"role"`           // Role host или participant
}
