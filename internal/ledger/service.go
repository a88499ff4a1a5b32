package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/internal/tally"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сервиса синхронизации леджера.
// Это единственная точка слияния: и сетевые коммиты, и импорт пакетов
// оптического канала проходят через Commit. Один и тот же сервис работает
// на сервере (sqlite) и на устройстве-хосте (boltdb).
type Service interface {
	// Create создает новую сессию подсчёта, хост становится первым участником
	Create(ctx context.Context, name, hostID, hostName string) (*models.Session, error)

	// Join регистрирует участника в сессии (повторный join освежает запись)
	Join(ctx context.Context, sessionID, actorID, actorName string) (*models.Session, error)

	// State возвращает сессию, ростер и текущие итоги. Чистое чтение,
	// работает в любом статусе, включая locked
	State(ctx context.Context, sessionID string) (*SessionState, error)

	// Commit вливает батч событий в леджер и возвращает свежие итоги
	Commit(ctx context.Context, sessionID, actorID, actorName string, events []models.CountEvent) (*CommitResult, error)

	// Finalize фиксирует итоги и переводит сессию в finalizing или locked
	Finalize(ctx context.Context, sessionID, finalizedBy string, lock bool) (*FinalizeResult, error)

	// ImportPacket принимает закодированный пакет участника от хоста,
	// вливает его события и возвращает закодированный ack-пакет
	ImportPacket(ctx context.Context, sessionID, submittedBy, encoded string) (*ImportResult, error)
}

// SessionState полное наблюдаемое состояние сессии
type SessionState struct {
	Participants []models.Participant // Participants ростер сессии
	Session      *models.Session      // Session сама сессия
	Totals       map[string]int64     // Totals текущие итоги по позициям
}

// CommitResult итог слияния батча в леджер
type CommitResult struct {
	Totals     map[string]int64 // Totals свежие итоги после слияния
	Applied    int              // Applied количество впервые записанных событий
	Duplicates int              // Duplicates количество молча поглощённых дубликатов
}

// FinalizeResult итог финализации сессии
type FinalizeResult struct {
	Mismatches []models.Mismatch    // Mismatches расхождения с предыдущей заблокированной сессией
	Status     models.SessionStatus // Status статус сессии после перехода
	Totals     map[string]int64     // Totals зафиксированные итоги
}

// ImportResult итог импорта пакета участника
type ImportResult struct {
	AckPacket  string           // AckPacket закодированный ack для обратной передачи
	ActorID    string           // ActorID участник, чьи события импортированы
	Totals     map[string]int64 // Totals итоги после слияния
	Applied    int              // Applied количество впервые записанных событий
	Duplicates int              // Duplicates количество поглощённых дубликатов
}

// service is the ledger sync service implementation
type service struct {
	store  storage.Store
	logger *slog.Logger
	locks  *sessionLocks
}

// NewService creates a new ledger sync service on top of a session store
func NewService(store storage.Store, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger,
		locks:  newSessionLocks(),
	}
}

// Create создает сессию в статусе active и регистрирует хоста в ростере.
func (s *service) Create(ctx context.Context, name, hostID, hostName string) (*models.Session, error) {
	session := &models.Session{
		CreatedAt: time.Now(),
		ID:        uuid.New().String(),
		Name:      name,
		HostID:    hostID,
		Status:    models.SessionActive,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	host := &models.Participant{
		LastSeenAt:    time.Now(),
		SessionID:     session.ID,
		ParticipantID: hostID,
		DisplayName:   hostName,
		Role:          models.RoleHost,
	}
	if err := s.store.UpsertParticipant(ctx, host); err != nil {
		return nil, fmt.Errorf("failed to register host: %w", err)
	}

	s.logger.Info("Session created",
		"session_id", session.ID,
		"name", name,
		"host_id", hostID)

	return session, nil
}

// Join регистрирует участника. Допустим в active и finalizing,
// заблокированная сессия отвечает ErrSessionLocked.
func (s *service) Join(ctx context.Context, sessionID, actorID, actorName string) (*models.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !canMutate(session) {
		return nil, ErrSessionLocked
	}

	participant := &models.Participant{
		LastSeenAt:    time.Now(),
		SessionID:     sessionID,
		ParticipantID: actorID,
		DisplayName:   actorName,
		Role:          roleFor(actorID, session),
	}
	if err := s.store.UpsertParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to register participant: %w", err)
	}

	s.logger.Info("Participant joined",
		"session_id", sessionID,
		"actor_id", actorID)

	return session, nil
}

// State собирает сессию, ростер и итоги. Итоги берутся из снапшота;
// если его ещё нет - полным пересчётом лога, без записи.
func (s *service) State(ctx context.Context, sessionID string) (*SessionState, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	participants, err := s.store.GetParticipants(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	totals, err := s.currentTotals(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionState{
		Participants: participants,
		Session:      session,
		Totals:       totals,
	}, nil
}

// currentTotals возвращает итоги сессии из снапшота, при его отсутствии
// пересчитывает лог редьюсером.
func (s *service) currentTotals(ctx context.Context, sessionID string) (map[string]int64, error) {
	snapshot, err := s.store.GetSnapshot(ctx, sessionID)
	if err == nil {
		return snapshot.Totals, nil
	}
	if !errors.Is(err, storage.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	events, err := s.store.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}

	return tally.Totals(events), nil
}
