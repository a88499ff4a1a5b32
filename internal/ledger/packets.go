package ledger

import (
	"context"
	"fmt"

	"github.com/iudanet/stocktake/internal/packet"
)

// ImportPacket вливает закодированный пакет участника в леджер от имени
// хоста и строит ack-пакет для обратной передачи по оптическому каналу.
// Ack подтверждает все события пакета, включая дубликаты: участник по нему
// чистит свой outbox и принимает итоги как новую базу. Сам импорт - это
// обычный Commit, привилегированного пути слияния нет.
func (s *service) ImportPacket(ctx context.Context, sessionID, submittedBy, encoded string) (*ImportResult, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !canFinalize(submittedBy, session) {
		return nil, ErrNotHost
	}

	pkt, err := packet.DecodeForSession(encoded, sessionID)
	if err != nil {
		return nil, err
	}

	if pkt.Kind != packet.KindData {
		return nil, fmt.Errorf("%s packet carries no ledger events: %w", pkt.Kind, packet.ErrPacketMalformed)
	}
	data := pkt.Data

	result, err := s.Commit(ctx, sessionID, data.ActorID, data.ActorName, data.Events)
	if err != nil {
		return nil, err
	}

	// Подтверждаются все события пакета, не только впервые записанные
	ackIDs := make([]string, 0, len(data.Events))
	for _, event := range data.Events {
		ackIDs = append(ackIDs, event.EventID)
	}

	ack := packet.NewDataPacket(sessionID, session.HostID, "", nil, result.Totals, ackIDs)
	encodedAck, err := packet.Encode(ack)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ack packet: %w", err)
	}

	s.logger.Info("Packet imported",
		"session_id", sessionID,
		"actor_id", data.ActorID,
		"events", len(data.Events),
		"applied", result.Applied,
		"duplicates", result.Duplicates)

	return &ImportResult{
		AckPacket:  encodedAck,
		ActorID:    data.ActorID,
		Totals:     result.Totals,
		Applied:    result.Applied,
		Duplicates: result.Duplicates,
	}, nil
}
