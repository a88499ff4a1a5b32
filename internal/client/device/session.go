package device

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/packet"
	"github.com/iudanet/stocktake/internal/validation"
	"github.com/iudanet/stocktake/pkg/api"
)

// CreateSession создает сессию подсчёта, устройство становится её хостом.
// При настроенном сервере сессия создаётся там, и её авторитетный леджер
// живёт на сервере; без сервера авторитетом остаётся локальная копия
// леджера этого устройства, а участники приносят события пакетами.
func (s *service) CreateSession(ctx context.Context, name string) (*models.Session, error) {
	if err := validation.ValidateSessionName(name); err != nil {
		return nil, err
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	var session *models.Session
	remote := s.client != nil

	if remote {
		resp, err := s.client.CreateSession(ctx, api.CreateSessionRequest{
			SessionName: name,
			HostID:      identity.DeviceID,
			HostName:    identity.DisplayName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create session on server: %w", err)
		}

		// Локальная копия сессии с серверным ID: офлайн-коммиты и
		// импорт пакетов работают и без сети
		session = &models.Session{
			CreatedAt: time.Now(),
			ID:        resp.SessionID,
			Name:      name,
			HostID:    identity.DeviceID,
			Status:    models.SessionActive,
		}
		if err := s.mirrorSession(ctx, session, identity.DeviceID, identity.DisplayName); err != nil {
			return nil, err
		}
	} else {
		session, err = s.ledger.Create(ctx, name, identity.DeviceID, identity.DisplayName)
		if err != nil {
			return nil, err
		}
	}

	m := &storage.Membership{
		SessionID:   session.ID,
		SessionName: session.Name,
		HostID:      identity.DeviceID,
		Role:        models.RoleHost,
		JoinedAt:    time.Now().Unix(),
		Remote:      remote,
	}
	if err := s.store.SaveMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	s.logger.Info("Session created",
		"session_id", session.ID,
		"name", name,
		"remote", remote)

	return session, nil
}

// Join присоединяется к сессии на сервере и сохраняет членство.
func (s *service) Join(ctx context.Context, sessionID string) (*storage.Membership, error) {
	if s.client == nil {
		return nil, ErrNoServer
	}
	if err := validation.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.JoinSession(ctx, sessionID, api.JoinSessionRequest{
		ActorID:   identity.DeviceID,
		ActorName: identity.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join session: %w", err)
	}

	session := &models.Session{
		CreatedAt: time.Now(),
		ID:        sessionID,
		Name:      resp.SessionName,
		HostID:    resp.HostID,
		Status:    models.SessionActive,
	}
	if err := s.mirrorSession(ctx, session, identity.DeviceID, identity.DisplayName); err != nil {
		return nil, err
	}

	m := &storage.Membership{
		SessionID:   sessionID,
		SessionName: resp.SessionName,
		HostID:      resp.HostID,
		Role:        models.RoleParticipant,
		JoinedAt:    time.Now().Unix(),
		Remote:      true,
	}
	if err := s.store.SaveMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	s.logger.Info("Joined session",
		"session_id", sessionID,
		"host_id", resp.HostID)

	return m, nil
}

// JoinFromPacket присоединяется к сессии по пакету приглашения хоста.
// Сетевой вызов не нужен: пакет несёт весь контекст сессии, события
// поедут обратно оптическими пакетами.
func (s *service) JoinFromPacket(ctx context.Context, encoded string) (*storage.Membership, error) {
	pkt, err := packet.Decode(encoded)
	if err != nil {
		return nil, err
	}
	if pkt.Kind != packet.KindJoin {
		return nil, fmt.Errorf("%w: expected a join packet, got %s", packet.ErrPacketMalformed, pkt.Kind)
	}
	join := pkt.Join

	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		CreatedAt: time.Now(),
		ID:        join.SessionID,
		Name:      join.SessionName,
		HostID:    join.HostID,
		Status:    models.SessionActive,
	}
	if err := s.mirrorSession(ctx, session, identity.DeviceID, identity.DisplayName); err != nil {
		return nil, err
	}

	m := &storage.Membership{
		SessionID:   join.SessionID,
		SessionName: join.SessionName,
		HostID:      join.HostID,
		Role:        models.RoleParticipant,
		JoinedAt:    time.Now().Unix(),
		Remote:      false,
	}
	if err := s.store.SaveMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	s.logger.Info("Joined session from packet",
		"session_id", join.SessionID,
		"host_id", join.HostID)

	return m, nil
}

// Leave покидает текущую сессию: членство удаляется, локальная копия
// леджера остаётся для истории. Недоставленный outbox блокирует выход,
// чтобы подсчёты не потерялись молча; force отбрасывает его.
func (s *service) Leave(ctx context.Context, force bool) error {
	joined, err := s.store.HasMembership(ctx)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !joined {
		return ErrNotJoined
	}

	m, err := s.membership(ctx)
	if err != nil {
		return err
	}

	pending, err := s.store.CountPendingEvents(ctx, m.SessionID)
	if err != nil {
		return fmt.Errorf("failed to count pending events: %w", err)
	}
	if pending > 0 && !force {
		return fmt.Errorf("%w: %d events not delivered", ErrPendingEvents, pending)
	}

	if err := s.store.DeleteMembership(ctx); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	s.logger.Info("Left session",
		"session_id", m.SessionID,
		"dropped_pending", pending)

	return nil
}

// InvitePacket кодирует пакет приглашения текущей сессии. Только хост
// раздаёт приглашения: пакет несёт его идентификатор как точку слияния.
func (s *service) InvitePacket(ctx context.Context) (string, error) {
	m, err := s.membership(ctx)
	if err != nil {
		return "", err
	}
	if !m.IsHost() {
		return "", ledger.ErrNotHost
	}

	pkt := packet.NewJoinPacket(models.Session{
		ID:     m.SessionID,
		Name:   m.SessionName,
		HostID: m.HostID,
	})
	encoded, err := packet.Encode(pkt)
	if err != nil {
		return "", fmt.Errorf("failed to encode join packet: %w", err)
	}
	return encoded, nil
}

// mirrorSession сохраняет локальную копию сессии и собственную запись
// ростера. Повторное зеркалирование уже известной сессии безвредно.
func (s *service) mirrorSession(ctx context.Context, session *models.Session, deviceID, displayName string) error {
	if _, err := s.store.GetSession(ctx, session.ID); err == nil {
		return nil
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return fmt.Errorf("failed to mirror session: %w", err)
	}

	participant := &models.Participant{
		LastSeenAt:    time.Now(),
		SessionID:     session.ID,
		ParticipantID: deviceID,
		DisplayName:   displayName,
		Role:          roleAgainst(session, deviceID),
	}
	if err := s.store.UpsertParticipant(ctx, participant); err != nil {
		return fmt.Errorf("failed to register self in roster: %w", err)
	}
	return nil
}

func roleAgainst(session *models.Session, deviceID string) models.Role {
	if session.HostID == deviceID {
		return models.RoleHost
	}
	return models.RoleParticipant
}
