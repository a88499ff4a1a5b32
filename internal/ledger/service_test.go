package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/packet"
	"github.com/iudanet/stocktake/internal/storage"
)

// memState состояние хранилища для тестов: обычные map вместо БД.
// Колбэки мока ниже замкнуты на эти map, поэтому тест может подготовить
// данные и проверить результат напрямую, без настоящего хранилища.
type memState struct {
	mu           sync.Mutex
	sessions     map[string]*models.Session
	participants map[string]models.Participant
	events       map[string]models.CountEvent
	snapshots    map[string]*models.Snapshot
}

func newMemState() *memState {
	return &memState{
		sessions:     make(map[string]*models.Session),
		participants: make(map[string]models.Participant),
		events:       make(map[string]models.CountEvent),
		snapshots:    make(map[string]*models.Snapshot),
	}
}

// newStoreMock собирает мок хранилища с семантикой настоящих реализаций:
// идемпотентный AppendEvent, host не понижается при upsert, снапшот
// replace-only.
func newStoreMock(st *memState) *storage.StoreMock {
	return &storage.StoreMock{
		CreateSessionFunc: func(ctx context.Context, session *models.Session) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			stored := *session
			st.sessions[session.ID] = &stored
			return nil
		},
		GetSessionFunc: func(ctx context.Context, id string) (*models.Session, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			session, ok := st.sessions[id]
			if !ok {
				return nil, storage.ErrSessionNotFound
			}
			stored := *session
			return &stored, nil
		},
		UpdateSessionStatusFunc: func(ctx context.Context, id string, status models.SessionStatus, finalizedBy string) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			session, ok := st.sessions[id]
			if !ok {
				return storage.ErrSessionNotFound
			}
			session.Status = status
			session.FinalizedBy = finalizedBy
			session.FinalizedAt = time.Now()
			return nil
		},
		GetLatestLockedSessionFunc: func(ctx context.Context, excludeID string) (*models.Session, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			var latest *models.Session
			for _, session := range st.sessions {
				if session.Status != models.SessionLocked || session.ID == excludeID {
					continue
				}
				switch {
				case latest == nil:
					latest = session
				case session.FinalizedAt.After(latest.FinalizedAt):
					latest = session
				case session.FinalizedAt.Equal(latest.FinalizedAt) && session.CreatedAt.After(latest.CreatedAt):
					latest = session
				}
			}
			if latest == nil {
				return nil, storage.ErrSessionNotFound
			}
			stored := *latest
			return &stored, nil
		},
		UpsertParticipantFunc: func(ctx context.Context, participant *models.Participant) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			key := participant.SessionID + "/" + participant.ParticipantID
			record := *participant
			if existing, ok := st.participants[key]; ok && existing.Role == models.RoleHost {
				record.Role = models.RoleHost
			}
			st.participants[key] = record
			return nil
		},
		GetParticipantsFunc: func(ctx context.Context, sessionID string) ([]models.Participant, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			participants := []models.Participant{}
			for _, p := range st.participants {
				if p.SessionID == sessionID {
					participants = append(participants, p)
				}
			}
			sort.Slice(participants, func(i, j int) bool {
				if participants[i].DisplayName != participants[j].DisplayName {
					return participants[i].DisplayName < participants[j].DisplayName
				}
				return participants[i].ParticipantID < participants[j].ParticipantID
			})
			return participants, nil
		},
		AppendEventFunc: func(ctx context.Context, event *models.CountEvent) (bool, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			if _, ok := st.events[event.EventID]; ok {
				return false, nil
			}
			st.events[event.EventID] = *event
			return true, nil
		},
		GetSessionEventsFunc: func(ctx context.Context, sessionID string) ([]models.CountEvent, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			events := []models.CountEvent{}
			for _, event := range st.events {
				if event.SessionID == sessionID {
					events = append(events, event)
				}
			}
			return events, nil
		},
		SaveSnapshotFunc: func(ctx context.Context, snapshot *models.Snapshot) error {
			st.mu.Lock()
			defer st.mu.Unlock()
			st.snapshots[snapshot.SessionID] = snapshot.Clone()
			return nil
		},
		GetSnapshotFunc: func(ctx context.Context, sessionID string) (*models.Snapshot, error) {
			st.mu.Lock()
			defer st.mu.Unlock()
			snapshot, ok := st.snapshots[sessionID]
			if !ok {
				return nil, storage.ErrSnapshotNotFound
			}
			return snapshot.Clone(), nil
		},
	}
}

func newTestService(t *testing.T) (Service, *memState) {
	t.Helper()
	st := newMemState()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(newStoreMock(st), logger), st
}

// countEvent событие без SessionID: Commit сам проставляет сессию батча.
func countEvent(eventID, actorID, itemKey string, delta int64) models.CountEvent {
	return models.CountEvent{
		EventID:   eventID,
		ActorID:   actorID,
		ItemKey:   itemKey,
		DeltaQty:  delta,
		Timestamp: time.Now().Unix(),
	}
}

// packetEvent событие с проставленной сессией для сборки пакетов.
func packetEvent(sessionID, eventID, actorID, itemKey string, delta int64) models.CountEvent {
	event := countEvent(eventID, actorID, itemKey, delta)
	event.SessionID = sessionID
	return event
}

func TestNewService(t *testing.T) {
	st := newMemState()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := newStoreMock(st)

	svc := NewService(store, logger)
	require.NotNil(t, svc)

	impl, ok := svc.(*service)
	require.True(t, ok)
	assert.Equal(t, logger, impl.logger)
	assert.NotNil(t, impl.locks)
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А, август", "device-host", "Анна")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Склад А, август", session.Name)
	assert.Equal(t, "device-host", session.HostID)
	assert.Equal(t, models.SessionActive, session.Status)
	assert.WithinDuration(t, time.Now(), session.CreatedAt, 5*time.Second)

	// Хост сразу попадает в ростер с ролью host.
	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, state.Participants, 1)
	assert.Equal(t, "device-host", state.Participants[0].ParticipantID)
	assert.Equal(t, "Анна", state.Participants[0].DisplayName)
	assert.Equal(t, models.RoleHost, state.Participants[0].Role)
	assert.Empty(t, state.Totals)
}

func TestJoin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	joined, err := svc.Join(ctx, session.ID, "device-b", "Борис")
	require.NoError(t, err)
	assert.Equal(t, session.ID, joined.ID)
	assert.Equal(t, "device-host", joined.HostID)

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, state.Participants, 2)
	// Ростер отсортирован по имени: Анна перед Борисом.
	assert.Equal(t, models.RoleHost, state.Participants[0].Role)
	assert.Equal(t, "device-b", state.Participants[1].ParticipantID)
	assert.Equal(t, models.RoleParticipant, state.Participants[1].Role)
}

func TestJoin_Repeated_RefreshesRoster(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	_, err = svc.Join(ctx, session.ID, "device-b", "Борис")
	require.NoError(t, err)
	_, err = svc.Join(ctx, session.ID, "device-b", "Борис Н.")
	require.NoError(t, err)

	// Повторный join не плодит записей, но освежает имя.
	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, state.Participants, 2)
	assert.Equal(t, "Борис Н.", state.Participants[1].DisplayName)
}

func TestJoin_HostKeepsRole(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	// Хост переприсоединился с другим именем: роль не понижается.
	_, err = svc.Join(ctx, session.ID, "device-host", "Анна К.")
	require.NoError(t, err)

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, state.Participants, 1)
	assert.Equal(t, "Анна К.", state.Participants[0].DisplayName)
	assert.Equal(t, models.RoleHost, state.Participants[0].Role)
}

func TestJoin_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Join(context.Background(), "missing", "device-b", "Борис")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestJoin_LockedSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)

	_, err = svc.Join(ctx, session.ID, "device-b", "Борис")
	assert.ErrorIs(t, err, ErrSessionLocked)
}

func TestCommit_MergesAcrossDevices(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	resA, err := svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resA.Applied)
	assert.Equal(t, 0, resA.Duplicates)
	assert.Equal(t, int64(3), resA.Totals["SKU-100"])

	resB, err := svc.Commit(ctx, session.ID, "device-b", "Борис", []models.CountEvent{
		countEvent("device-b:1", "device-b", "SKU-100", 2),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resB.Applied)
	assert.Equal(t, int64(5), resB.Totals["SKU-100"])

	// Снапшот сохранён и указывает на последнее применённое событие.
	snapshot := st.snapshots[session.ID]
	require.NotNil(t, snapshot)
	assert.Equal(t, int64(5), snapshot.Totals["SKU-100"])
	assert.Equal(t, "device-b:1", snapshot.LastEventID)
}

func TestCommit_DuplicateDelivery(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	batch := []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
		countEvent("device-a:2", "device-a", "SKU-200", 1),
	}

	first, err := svc.Commit(ctx, session.ID, "device-a", "Анна", batch)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Applied)
	assert.Equal(t, 0, first.Duplicates)

	// Повторная доставка того же батча: итоги не удваиваются.
	second, err := svc.Commit(ctx, session.ID, "device-a", "Анна", batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Applied)
	assert.Equal(t, 2, second.Duplicates)
	assert.Equal(t, int64(3), second.Totals["SKU-100"])
	assert.Equal(t, int64(1), second.Totals["SKU-200"])
}

func TestCommit_ReplayKeepsOriginalContent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
	})
	require.NoError(t, err)

	// Повтор с тем же EventID, но другим содержимым не перезаписывает оригинал.
	res, err := svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 100),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, int64(3), res.Totals["SKU-100"])
}

func TestCommit_EmptyEventIDRejected(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	// Пустые EventID с двух устройств не должны склеиться дедупликацией
	// в одно событие: оба коммита отклоняются целиком.
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("", "device-a", "SKU-100", 3),
	})
	require.ErrorIs(t, err, ErrInvalidEvent)

	_, err = svc.Commit(ctx, session.ID, "device-b", "Борис", []models.CountEvent{
		countEvent("", "device-b", "SKU-100", 2),
	})
	require.ErrorIs(t, err, ErrInvalidEvent)

	assert.Empty(t, st.events)

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Totals)
}

func TestCommit_MalformedEventIDRejectsWholeBatch(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	// Кривое событие в середине батча: ни одно событие не записывается.
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
		countEvent("no-counter", "device-a", "SKU-200", 1),
	})
	require.ErrorIs(t, err, ErrInvalidEvent)
	assert.Empty(t, st.events)
}

func TestCommit_EmptyItemKeyRejected(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "", 3),
	})
	require.ErrorIs(t, err, ErrInvalidEvent)
	assert.Empty(t, st.events)
}

func TestCommit_CorrectionPair(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	// Ошиблись на +5, скорректировали на -2: итог 3.
	res, err := svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 5),
		countEvent("device-a:2", "device-a", "SKU-100", -2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Totals["SKU-100"])
}

func TestCommit_NegativeTotalPreserved(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	// Отрицательный итог не зажимается в ноль: расхождение должно быть видно.
	res, err := svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", -2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), res.Totals["SKU-100"])
}

func TestCommit_EmptyBatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	// Пустой батч валиден: освежает ростер и возвращает текущие итоги.
	res, err := svc.Commit(ctx, session.ID, "device-b", "Борис", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Applied)
	assert.Equal(t, 0, res.Duplicates)
	assert.Empty(t, res.Totals)

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, state.Participants, 2)
}

func TestCommit_LockedSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)

	_, err = svc.Commit(ctx, session.ID, "device-b", "Борис", []models.CountEvent{
		countEvent("device-b:1", "device-b", "SKU-100", 1),
	})
	assert.ErrorIs(t, err, ErrSessionLocked)
	// Событие не записано.
	assert.Empty(t, st.events)
}

func TestCommit_FinalizingStillMutable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", false)
	require.NoError(t, err)

	// finalizing не блокирует запись: это предупреждение, не замок.
	res, err := svc.Commit(ctx, session.ID, "device-b", "Борис", []models.CountEvent{
		countEvent("device-b:1", "device-b", "SKU-100", 4),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, int64(4), res.Totals["SKU-100"])
}

func TestCommit_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Commit(context.Background(), "missing", "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 1),
	})
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestCommit_SnapshotKeepsLastEventIDOnDuplicates(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)

	batch := []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
		countEvent("device-a:2", "device-a", "SKU-200", 1),
	}
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", batch)
	require.NoError(t, err)
	require.Equal(t, "device-a:2", st.snapshots[session.ID].LastEventID)

	// Батч из одних дубликатов не затирает LastEventID пустой строкой.
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", batch)
	require.NoError(t, err)
	assert.Equal(t, "device-a:2", st.snapshots[session.ID].LastEventID)
}

func TestCommit_ConcurrentSameSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	const devices = 4
	const perDevice = 25

	var wg sync.WaitGroup
	for d := 0; d < devices; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			deviceID := fmt.Sprintf("device-%d", d)
			for i := 1; i <= perDevice; i++ {
				_, err := svc.Commit(ctx, session.ID, deviceID, deviceID, []models.CountEvent{
					countEvent(models.NewEventID(deviceID, uint64(i)), deviceID, "SKU-100", 1),
				})
				assert.NoError(t, err)
			}
		}(d)
	}
	wg.Wait()

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(devices*perDevice), state.Totals["SKU-100"])
}

func TestState_PrefersSnapshot(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
	})
	require.NoError(t, err)

	// Подменяем снапшот: чтение должно идти из него, а не из лога.
	st.snapshots[session.ID] = &models.Snapshot{
		UpdatedAt: time.Now(),
		Totals:    map[string]int64{"SKU-100": 42},
		SessionID: session.ID,
	}

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), state.Totals["SKU-100"])
}

func TestState_RecomputesWithoutSnapshot(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-a", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, session.ID, "device-a", "Анна", []models.CountEvent{
		countEvent("device-a:1", "device-a", "SKU-100", 3),
	})
	require.NoError(t, err)

	// Снапшот потерян: State пересчитывает итоги по журналу.
	delete(st.snapshots, session.ID)

	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), state.Totals["SKU-100"])
}

func TestState_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.State(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestState_LockedSessionReadable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, session.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:1", "device-host", "SKU-100", 5),
	})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)

	// Чтение работает и после блокировки.
	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionLocked, state.Session.Status)
	assert.Equal(t, int64(5), state.Totals["SKU-100"])
}

func TestFinalize_NotHost(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Join(ctx, session.ID, "device-b", "Борис")
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, session.ID, "device-b", true)
	assert.ErrorIs(t, err, ErrNotHost)
	// Статус не изменился.
	assert.Equal(t, models.SessionActive, st.sessions[session.ID].Status)
}

func TestFinalize_FirstInventory(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, session.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:1", "device-host", "SKU-100", 5),
	})
	require.NoError(t, err)

	// Первая инвентаризация: сравнивать не с чем, отчёт пуст.
	res, err := svc.Finalize(ctx, session.ID, "device-host", false)
	require.NoError(t, err)
	assert.Equal(t, models.SessionFinalizing, res.Status)
	assert.Equal(t, int64(5), res.Totals["SKU-100"])
	assert.Empty(t, res.Mismatches)

	stored := st.sessions[session.ID]
	assert.Equal(t, models.SessionFinalizing, stored.Status)
	assert.Equal(t, "device-host", stored.FinalizedBy)
	assert.WithinDuration(t, time.Now(), stored.FinalizedAt, 5*time.Second)
}

func TestFinalize_RepeatedFinalizingAllowed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	// Повторный finalize без lock допустим: отчёт можно перегенерировать.
	_, err = svc.Finalize(ctx, session.ID, "device-host", false)
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", false)
	require.NoError(t, err)

	res, err := svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)
	assert.Equal(t, models.SessionLocked, res.Status)
}

func TestFinalize_LockIsTerminal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)

	// Из locked выхода нет, даже для хоста.
	_, err = svc.Finalize(ctx, session.ID, "device-host", false)
	assert.ErrorIs(t, err, ErrSessionLocked)
	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	assert.ErrorIs(t, err, ErrSessionLocked)
}

func TestFinalize_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Finalize(context.Background(), "missing", "device-host", true)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestFinalize_TotalsRecomputedNotSnapshot(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, session.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:1", "device-host", "SKU-100", 5),
	})
	require.NoError(t, err)

	// Протухший снапшот не должен попасть в зафиксированные итоги:
	// финализация всегда пересчитывает журнал целиком.
	st.snapshots[session.ID].Totals["SKU-100"] = 999

	res, err := svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Totals["SKU-100"])
	assert.Equal(t, int64(5), st.snapshots[session.ID].Totals["SKU-100"])
}

// finalizeLockedSession прогоняет полную инвентаризацию и блокирует её.
func finalizeLockedSession(
	t *testing.T,
	svc Service,
	hostID string,
	events []models.CountEvent,
) *models.Session {
	t.Helper()
	ctx := context.Background()

	session, err := svc.Create(ctx, "Инвентаризация", hostID, "Анна")
	require.NoError(t, err)
	if len(events) > 0 {
		_, err = svc.Commit(ctx, session.ID, hostID, "Анна", events)
		require.NoError(t, err)
	}
	_, err = svc.Finalize(ctx, session.ID, hostID, true)
	require.NoError(t, err)
	return session
}

func TestFinalize_DiffAgainstPreviousLocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Первая инвентаризация: widget 5, box 2. Заблокирована.
	finalizeLockedSession(t, svc, "device-host", []models.CountEvent{
		countEvent("device-host:1", "device-host", "widget", 5),
		countEvent("device-host:2", "device-host", "box", 2),
	})

	// Вторая: widget 7, box 2, gadget 1.
	second, err := svc.Create(ctx, "Повторный подсчёт", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, second.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:3", "device-host", "widget", 7),
		countEvent("device-host:4", "device-host", "box", 2),
		countEvent("device-host:5", "device-host", "gadget", 1),
	})
	require.NoError(t, err)

	res, err := svc.Finalize(ctx, second.ID, "device-host", false)
	require.NoError(t, err)

	// box совпал и в отчёт не попал; порядок детерминирован по ItemKey.
	require.Len(t, res.Mismatches, 2)
	assert.Equal(t, models.Mismatch{ItemKey: "gadget", Current: 1, Previous: 0, Delta: 1}, res.Mismatches[0])
	assert.Equal(t, models.Mismatch{ItemKey: "widget", Current: 7, Previous: 5, Delta: 2}, res.Mismatches[1])
}

func TestFinalize_DiffMissingCurrentSideIsZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// В прошлой инвентаризации позиция была, в текущей не нашлась вовсе.
	finalizeLockedSession(t, svc, "device-host", []models.CountEvent{
		countEvent("device-host:1", "device-host", "obsolete", 4),
	})

	second, err := svc.Create(ctx, "Повторный подсчёт", "device-host", "Анна")
	require.NoError(t, err)

	res, err := svc.Finalize(ctx, second.ID, "device-host", false)
	require.NoError(t, err)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, models.Mismatch{ItemKey: "obsolete", Current: 0, Previous: 4, Delta: -4}, res.Mismatches[0])
}

func TestFinalize_DiffBaselineRecomputedWhenSnapshotLost(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	previous := finalizeLockedSession(t, svc, "device-host", []models.CountEvent{
		countEvent("device-host:1", "device-host", "widget", 5),
	})
	// Снапшот прошлой сессии потерян: база сравнения пересчитывается по её журналу.
	delete(st.snapshots, previous.ID)

	second, err := svc.Create(ctx, "Повторный подсчёт", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, second.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:2", "device-host", "widget", 7),
	})
	require.NoError(t, err)

	res, err := svc.Finalize(ctx, second.ID, "device-host", false)
	require.NoError(t, err)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, models.Mismatch{ItemKey: "widget", Current: 7, Previous: 5, Delta: 2}, res.Mismatches[0])
}

func TestFinalize_DiffAgainstMostRecentLocked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Две заблокированные инвентаризации: базой служит самая свежая.
	finalizeLockedSession(t, svc, "device-host", []models.CountEvent{
		countEvent("device-host:1", "device-host", "widget", 1),
	})
	finalizeLockedSession(t, svc, "device-host", []models.CountEvent{
		countEvent("device-host:2", "device-host", "widget", 5),
	})

	third, err := svc.Create(ctx, "Повторный подсчёт", "device-host", "Анна")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, third.ID, "device-host", "Анна", []models.CountEvent{
		countEvent("device-host:3", "device-host", "widget", 7),
	})
	require.NoError(t, err)

	res, err := svc.Finalize(ctx, third.ID, "device-host", false)
	require.NoError(t, err)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, int64(5), res.Mismatches[0].Previous)
}

func TestImportPacket_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	events := []models.CountEvent{
		packetEvent(session.ID, "device-b:1", "device-b", "SKU-100", 3),
		packetEvent(session.ID, "device-b:2", "device-b", "SKU-200", 1),
	}
	encoded, err := packet.Encode(packet.NewDataPacket(session.ID, "device-b", "Борис", events, nil, nil))
	require.NoError(t, err)

	res, err := svc.ImportPacket(ctx, session.ID, "device-host", encoded)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Applied)
	assert.Equal(t, 0, res.Duplicates)
	assert.Equal(t, "device-b", res.ActorID)
	assert.Equal(t, int64(3), res.Totals["SKU-100"])
	assert.Equal(t, int64(1), res.Totals["SKU-200"])

	// Ack-пакет декодируется и подтверждает все события исходного пакета.
	ack, err := packet.Decode(res.AckPacket)
	require.NoError(t, err)
	require.Equal(t, packet.KindData, ack.Kind)
	assert.Equal(t, session.ID, ack.Data.SessionID)
	assert.Equal(t, "device-host", ack.Data.ActorID)
	assert.ElementsMatch(t, []string{"device-b:1", "device-b:2"}, ack.Data.AckEventIDs)
	assert.Equal(t, int64(3), ack.Data.Totals["SKU-100"])
	assert.Empty(t, ack.Data.Events)

	// Участник пакета попал в ростер.
	state, err := svc.State(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, state.Participants, 2)
	assert.Equal(t, "Борис", state.Participants[1].DisplayName)
}

func TestImportPacket_SecondImportAcksDuplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	events := []models.CountEvent{
		packetEvent(session.ID, "device-b:1", "device-b", "SKU-100", 3),
		packetEvent(session.ID, "device-b:2", "device-b", "SKU-200", 1),
	}
	encoded, err := packet.Encode(packet.NewDataPacket(session.ID, "device-b", "Борис", events, nil, nil))
	require.NoError(t, err)

	_, err = svc.ImportPacket(ctx, session.ID, "device-host", encoded)
	require.NoError(t, err)

	// Пакет отсканировали второй раз: события поглощены, ack всё равно полный.
	res, err := svc.ImportPacket(ctx, session.ID, "device-host", encoded)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Applied)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, int64(3), res.Totals["SKU-100"])

	ack, err := packet.Decode(res.AckPacket)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"device-b:1", "device-b:2"}, ack.Data.AckEventIDs)
}

func TestImportPacket_NotHost(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	events := []models.CountEvent{
		packetEvent(session.ID, "device-c:1", "device-c", "SKU-100", 3),
	}
	encoded, err := packet.Encode(packet.NewDataPacket(session.ID, "device-c", "Вера", events, nil, nil))
	require.NoError(t, err)

	_, err = svc.ImportPacket(ctx, session.ID, "device-b", encoded)
	assert.ErrorIs(t, err, ErrNotHost)
	assert.Empty(t, st.events)
}

func TestImportPacket_WrongSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	target, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)
	other, err := svc.Create(ctx, "Склад Б", "device-host", "Анна")
	require.NoError(t, err)

	// Пакет собран для другой сессии: импорт отклоняется без записи.
	events := []models.CountEvent{
		packetEvent(other.ID, "device-b:1", "device-b", "SKU-100", 3),
	}
	encoded, err := packet.Encode(packet.NewDataPacket(other.ID, "device-b", "Борис", events, nil, nil))
	require.NoError(t, err)

	_, err = svc.ImportPacket(ctx, target.ID, "device-host", encoded)
	assert.ErrorIs(t, err, packet.ErrPacketSessionMismatch)
	assert.Empty(t, st.events)
}

func TestImportPacket_JoinPacketRejected(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	encoded, err := packet.Encode(packet.NewJoinPacket(*session))
	require.NoError(t, err)

	// Join-пакет не несёт событий леджера и в импорт не принимается.
	_, err = svc.ImportPacket(ctx, session.ID, "device-host", encoded)
	assert.ErrorIs(t, err, packet.ErrPacketMalformed)
	assert.Empty(t, st.events)
}

func TestImportPacket_GarbageRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	_, err = svc.ImportPacket(ctx, session.ID, "device-host", "совсем не пакет")
	assert.ErrorIs(t, err, packet.ErrPacketMalformed)
}

func TestImportPacket_LockedSession(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, "Склад А", "device-host", "Анна")
	require.NoError(t, err)

	events := []models.CountEvent{
		packetEvent(session.ID, "device-b:1", "device-b", "SKU-100", 3),
	}
	encoded, err := packet.Encode(packet.NewDataPacket(session.ID, "device-b", "Борис", events, nil, nil))
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, session.ID, "device-host", true)
	require.NoError(t, err)

	_, err = svc.ImportPacket(ctx, session.ID, "device-host", encoded)
	assert.ErrorIs(t, err, ErrSessionLocked)
	assert.Empty(t, st.events)
}

func TestImportPacket_SessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ImportPacket(context.Background(), "missing", "device-host", "STK1|x|y")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
