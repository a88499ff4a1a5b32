package api

// CreateSessionRequest представляет запрос на создание сессии подсчёта
type CreateSessionRequest struct {
	SessionName string `json:"session_name"` // человекочитаемое имя сессии
	HostID      string `json:"host_id"`      // идентификатор устройства-хоста
	HostName    string `json:"host_name"`    // отображаемое имя хоста
}

// CreateSessionResponse представляет ответ на успешное создание сессии
type CreateSessionResponse struct {
	SessionID string `json:"session_id"` // UUID созданной сессии
}

// JoinSessionRequest представляет запрос на присоединение к сессии
type JoinSessionRequest struct {
	ActorID   string `json:"actor_id"`   // идентификатор устройства участника
	ActorName string `json:"actor_name"` // отображаемое имя участника
}

// JoinSessionResponse представляет ответ на успешное присоединение.
// SessionName и HostID возвращаются, чтобы устройство могло сохранить
// членство локально без отдельного запроса состояния.
type JoinSessionResponse struct {
	OK          bool   `json:"ok"`           // подтверждение регистрации в ростере
	SessionName string `json:"session_name"` // имя сессии
	HostID      string `json:"host_id"`      // хост сессии
}

// SessionDTO представляет сессию в API формате
type SessionDTO struct {
	ID          string `json:"id"`                     // UUID сессии
	Name        string `json:"name"`                   // имя сессии
	HostID      string `json:"host_id"`                // устройство-хост
	Status      string `json:"status"`                 // active, finalizing или locked
	FinalizedBy string `json:"finalized_by,omitempty"` // кто финализировал (пусто до finalize)
	CreatedAt   int64  `json:"created_at"`             // время создания (unix)
}

// ParticipantDTO представляет запись ростера в API формате
type ParticipantDTO struct {
	ParticipantID string `json:"participant_id"` // идентификатор устройства
	DisplayName   string `json:"display_name"`   // отображаемое имя
	Role          string `json:"role"`           // host или participant
	LastSeenAt    int64  `json:"last_seen_at"`   // время последнего контакта (unix)
}

// StateResponse представляет полное наблюдаемое состояние сессии
type StateResponse struct {
	Session      SessionDTO       `json:"session"`      // сама сессия
	Participants []ParticipantDTO `json:"participants"` // ростер
	Totals       []TotalDTO       `json:"totals"`       // текущие итоги по позициям
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
