package packet

import "errors"

var (
	// ErrPacketMalformed возвращается при любом сбое декодирования:
	// повреждённый, усечённый или неизвестный payload. Декодер падает
	// закрыто: ничего не применяется частично.
	ErrPacketMalformed = errors.New("packet malformed")

	// ErrPacketSessionMismatch возвращается, когда сессия декодированного
	// пакета не совпадает с целевой. Проверяется до любого обращения к леджеру.
	ErrPacketSessionMismatch = errors.New("packet session mismatch")
)
