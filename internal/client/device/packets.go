package device

import (
	"context"
	"fmt"

	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/packet"
	"github.com/iudanet/stocktake/pkg/api"
)

// ExportPacket кодирует outbox в пакет данных для оптической передачи
// хосту. События остаются pending до ack-пакета: потерянный кадр означает
// лишь, что те же события поедут в следующем экспорте, а дедупликация на
// стороне хоста поглотит пересечение.
func (s *service) ExportPacket(ctx context.Context) (*ExportResult, error) {
	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.GetPendingEvents(ctx, m.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	if len(pending) == 0 {
		return nil, ErrNothingPending
	}

	events := make([]models.CountEvent, 0, len(pending))
	for _, event := range pending {
		events = append(events, *event)
	}

	pkt := packet.NewDataPacket(m.SessionID, identity.DeviceID, identity.DisplayName, events, nil, nil)
	encoded, err := packet.Encode(pkt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode packet: %w", err)
	}

	s.logger.Info("Outbox exported",
		"session_id", m.SessionID,
		"events", len(events),
		"size", len(encoded))

	return &ExportResult{
		Encoded: encoded,
		Events:  len(events),
	}, nil
}

// ImportPacket вливает пакет участника от имени хоста. Для серверной
// сессии пакет уезжает на сервер, для локальной сливается локальным
// сервисом леджера; в обоих случаях наружу выходит закодированный
// ack-пакет для обратной передачи участнику.
func (s *service) ImportPacket(ctx context.Context, encoded string) (*ledger.ImportResult, error) {
	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}
	if !m.IsHost() {
		return nil, ledger.ErrNotHost
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	if m.Remote && s.client != nil {
		resp, err := s.client.ImportPacket(ctx, m.SessionID, api.ImportPacketRequest{
			SubmittedBy: identity.DeviceID,
			Packet:      encoded,
		})
		if err != nil {
			return nil, fmt.Errorf("server packet import failed: %w", err)
		}
		return &ledger.ImportResult{
			AckPacket:  resp.AckPacket,
			ActorID:    resp.ActorID,
			Totals:     api.TotalsToMap(resp.Totals),
			Applied:    resp.Applied,
			Duplicates: resp.Duplicates,
		}, nil
	}

	return s.ledger.ImportPacket(ctx, m.SessionID, identity.DeviceID, encoded)
}

// ApplyAck применяет ack-пакет хоста: подтверждённые события покидают
// outbox, итоги хоста становятся новой локальной базой. Повторное
// применение того же ack безвредно.
func (s *service) ApplyAck(ctx context.Context, encoded string) (*AckResult, error) {
	m, err := s.membership(ctx)
	if err != nil {
		return nil, err
	}

	pkt, err := packet.DecodeForSession(encoded, m.SessionID)
	if err != nil {
		return nil, err
	}
	if pkt.Kind != packet.KindData {
		return nil, fmt.Errorf("%w: expected a data packet, got %s", packet.ErrPacketMalformed, pkt.Kind)
	}
	data := pkt.Data

	if len(data.AckEventIDs) > 0 {
		if err := s.store.MarkEventsSynced(ctx, data.AckEventIDs); err != nil {
			return nil, fmt.Errorf("failed to mark events synced: %w", err)
		}
	}

	if len(data.Totals) > 0 {
		if err := s.adoptTotals(ctx, m.SessionID, data.Totals, lastOf(data.AckEventIDs)); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Ack applied",
		"session_id", m.SessionID,
		"acked", len(data.AckEventIDs),
		"items", len(data.Totals))

	return &AckResult{
		Totals: data.Totals,
		Acked:  len(data.AckEventIDs),
	}, nil
}
