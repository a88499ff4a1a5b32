package packet

import (
	"fmt"
	"time"

	"github.com/nats-io/nuid"

	"github.com/iudanet/stocktake/internal/models"
)

// Kind дискриминатор вида пакета.
type Kind string

const (
	// KindData пакет с данными леджера: события, итоги, подтверждения
	KindData Kind = "data"
	// KindJoin пакет приглашения в сессию: только контекст, без данных леджера
	KindJoin Kind = "join"
)

// Packet — размеченное объединение (tagged union) видов пакета.
// Ровно одно из полей Data/Join заполнено в соответствии с Kind;
// декодер проверяет это исчерпывающе и падает закрыто на неизвестных видах.
type Packet struct {
	ID   string      `json:"id"`             // ID уникальный идентификатор пакета (NUID)
	Kind Kind        `json:"kind"`           // Kind дискриминатор вида
	Data *DataPacket `json:"data,omitempty"` // Data заполнено при Kind == KindData
	Join *JoinPacket `json:"join,omitempty"` // Join заполнено при Kind == KindJoin
}

// DataPacket переносит состояние леджера между устройствами:
// новые события (push), авторитетные итоги хоста (push back) и
// подтверждения ранее отправленных событий (ack).
type DataPacket struct {
	Totals      map[string]int64    `json:"totals,omitempty"`        // Totals авторитетный снапшот хоста (опционально)
	SessionID   string              `json:"session_id"`              // SessionID сессия пакета
	ActorID     string              `json:"actor_id"`                // ActorID отправитель
	ActorName   string              `json:"actor_name"`              // ActorName отображаемое имя отправителя
	Events      []models.CountEvent `json:"events,omitempty"`        // Events новые события (опционально)
	AckEventIDs []string            `json:"ack_event_ids,omitempty"` // AckEventIDs подтверждённые события получателя (опционально)
	GeneratedAt int64               `json:"generated_at"`            // GeneratedAt справочное время генерации (unix)
}

// JoinPacket несёт только контекст сессии: достаточно, чтобы устройство
// обнаружило сессию и присоединилось к ней. Никогда не касается журнала событий.
type JoinPacket struct {
	SessionID   string `json:"session_id"`   // SessionID сессия
	SessionName string `json:"session_name"` // SessionName имя сессии
	HostID      string `json:"host_id"`      // HostID хост сессии
}

// NewDataPacket создает пакет данных от имени actor для сессии sessionID.
// Пустые коллекции нормализуются в nil, чтобы кодирование было каноничным.
func NewDataPacket(sessionID, actorID, actorName string, events []models.CountEvent, totals map[string]int64, ackEventIDs []string) Packet {
	if len(events) == 0 {
		events = nil
	}
	if len(totals) == 0 {
		totals = nil
	}
	if len(ackEventIDs) == 0 {
		ackEventIDs = nil
	}
	return Packet{
		ID:   nuid.Next(),
		Kind: KindData,
		Data: &DataPacket{
			SessionID:   sessionID,
			ActorID:     actorID,
			ActorName:   actorName,
			Events:      events,
			Totals:      totals,
			AckEventIDs: ackEventIDs,
			GeneratedAt: time.Now().Unix(),
		},
	}
}

// NewJoinPacket создает пакет приглашения в сессию.
func NewJoinPacket(session models.Session) Packet {
	return Packet{
		ID:   nuid.Next(),
		Kind: KindJoin,
		Join: &JoinPacket{
			SessionID:   session.ID,
			SessionName: session.Name,
			HostID:      session.HostID,
		},
	}
}

// SessionID возвращает сессию пакета независимо от его вида.
func (p *Packet) SessionID() string {
	switch p.Kind {
	case KindData:
		if p.Data != nil {
			return p.Data.SessionID
		}
	case KindJoin:
		if p.Join != nil {
			return p.Join.SessionID
		}
	}
	return ""
}

// Validate исчерпывающе проверяет структуру пакета. Для пакета данных
// каждое событие обязано принадлежать сессии пакета и нести корректный
// ключ идемпотентности.
func (p *Packet) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing packet id", ErrPacketMalformed)
	}

	switch p.Kind {
	case KindData:
		if p.Data == nil || p.Join != nil {
			return fmt.Errorf("%w: data packet payload mismatch", ErrPacketMalformed)
		}
		return p.Data.validate()
	case KindJoin:
		if p.Join == nil || p.Data != nil {
			return fmt.Errorf("%w: join packet payload mismatch", ErrPacketMalformed)
		}
		return p.Join.validate()
	default:
		return fmt.Errorf("%w: unknown packet kind %q", ErrPacketMalformed, p.Kind)
	}
}

func (d *DataPacket) validate() error {
	if d.SessionID == "" {
		return fmt.Errorf("%w: missing session id", ErrPacketMalformed)
	}
	if d.ActorID == "" {
		return fmt.Errorf("%w: missing actor id", ErrPacketMalformed)
	}
	for i := range d.Events {
		event := &d.Events[i]
		if event.SessionID != d.SessionID {
			return fmt.Errorf("%w: event %q belongs to another session", ErrPacketMalformed, event.EventID)
		}
		if _, _, ok := models.SplitEventID(event.EventID); !ok {
			return fmt.Errorf("%w: bad event id %q", ErrPacketMalformed, event.EventID)
		}
		if event.ItemKey == "" {
			return fmt.Errorf("%w: event %q has empty item key", ErrPacketMalformed, event.EventID)
		}
	}
	for _, id := range d.AckEventIDs {
		if _, _, ok := models.SplitEventID(id); !ok {
			return fmt.Errorf("%w: bad ack event id %q", ErrPacketMalformed, id)
		}
	}
	return nil
}

func (j *JoinPacket) validate() error {
	if j.SessionID == "" {
		return fmt.Errorf("%w: missing session id", ErrPacketMalformed)
	}
	if j.HostID == "" {
		return fmt.Errorf("%w: missing host id", ErrPacketMalformed)
	}
	return nil
}
