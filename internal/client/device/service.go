package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	httpclient "github.com/iudanet/stocktake/internal/client/api"
	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	ledgerstore "github.com/iudanet/stocktake/internal/storage"
	"github.com/iudanet/stocktake/internal/tally"
	"github.com/iudanet/stocktake/internal/validation"
)

// Ошибки сервиса устройства
var (
	// ErrNotJoined устройство не состоит в сессии подсчёта
	ErrNotJoined = errors.New("device has not joined a counting session")

	// ErrNoServer операция требует настроенного сервера синхронизации
	ErrNoServer = errors.New("no sync server configured")

	// ErrNothingPending в outbox нет несинхронизированных событий
	ErrNothingPending = errors.New("no pending events to sync")

	// ErrPendingEvents в outbox остались недоставленные события
	ErrPendingEvents = errors.New("outbox has undelivered events")
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс сервиса counting-устройства.
// Сервис связывает локальное хранилище (identity, счётчик, outbox, копия
// леджера), локальный сервис слияния и опционально HTTP клиент сервера.
// Устройство-хост работает полностью офлайн: его копия леджера и есть
// авторитетная точка слияния.
type Service interface {
	// Identity возвращает идентичность устройства, создавая её при первом
	// обращении. DeviceID входит в ключ каждого события и никогда не меняется
	Identity(ctx context.Context) (*storage.Identity, error)

	// CreateSession создает сессию подсчёта; устройство становится хостом
	CreateSession(ctx context.Context, name string) (*models.Session, error)

	// Join присоединяется к сессии на сервере
	Join(ctx context.Context, sessionID string) (*storage.Membership, error)

	// JoinFromPacket присоединяется к сессии по пакету приглашения
	JoinFromPacket(ctx context.Context, encoded string) (*storage.Membership, error)

	// InvitePacket кодирует пакет приглашения текущей сессии (только хост)
	InvitePacket(ctx context.Context) (string, error)

	// Leave покидает текущую сессию; недоставленный outbox блокирует
	// выход без force
	Leave(ctx context.Context, force bool) error

	// Record записывает дельту количества для позиции каталога
	Record(ctx context.Context, itemKey string, delta int64) (*models.CountEvent, error)

	// Scan записывает дельту по отсканированному коду через резолвер каталога
	Scan(ctx context.Context, code string, delta int64) (*ScanResult, error)

	// Sync отправляет outbox на сервер и принимает авторитетные итоги
	Sync(ctx context.Context) (*SyncResult, error)

	// ExportPacket кодирует outbox в пакет для оптической передачи хосту
	ExportPacket(ctx context.Context) (*ExportResult, error)

	// ImportPacket вливает пакет участника (только хост), возвращает ack
	ImportPacket(ctx context.Context, encoded string) (*ledger.ImportResult, error)

	// ApplyAck применяет ack-пакет хоста: чистит outbox, принимает итоги
	ApplyAck(ctx context.Context, encoded string) (*AckResult, error)

	// Status собирает наблюдаемое состояние устройства и сессии
	Status(ctx context.Context) (*Status, error)

	// Finalize фиксирует итоги сессии (только хост)
	Finalize(ctx context.Context, lock bool) (*ledger.FinalizeResult, error)

	// Upload передаёт зафиксированные итоги внешней системе учёта
	Upload(ctx context.Context) (string, error)
}

// Store объединяет всё, что сервису устройства нужно от локального
// хранилища: идентичность, членство, счётчик событий, outbox и полную
// копию леджера сессии. BoltDB реализация закрывает весь интерфейс.
type Store interface {
	storage.IdentityStorage
	storage.SessionStorage
	storage.PendingStorage
	tally.SequenceStore
	ledgerstore.Store
}

// ScanResult итог записи по отсканированному коду
type ScanResult struct {
	Event   *models.CountEvent // Event записанное событие
	ItemKey string             // ItemKey позиция, в которую легла дельта
	Matched bool               // Matched нашёлся ли код в каталоге
}

// SyncResult итог сетевой синхронизации outbox
type SyncResult struct {
	Totals     map[string]int64 // Totals авторитетные итоги сервера
	Pushed     int              // Pushed отправлено событий
	Applied    int              // Applied впервые записано на сервере
	Duplicates int              // Duplicates поглощено дубликатов
}

// ExportResult закодированный пакет outbox
type ExportResult struct {
	Encoded string // Encoded закодированный пакет
	Events  int    // Events количество событий в пакете
}

// AckResult итог применения ack-пакета
type AckResult struct {
	Totals map[string]int64 // Totals принятые итоги хоста (nil если пакет их не нёс)
	Acked  int              // Acked подтверждено и удалено из outbox
}

// Status наблюдаемое состояние устройства
type Status struct {
	Identity     *storage.Identity    // Identity идентичность устройства
	Membership   *storage.Membership  // Membership текущая сессия (nil вне сессии)
	Session      *models.Session      // Session локальная копия сессии
	Participants []models.Participant // Participants локальный ростер
	Totals       map[string]int64     // Totals итоги из снапшота
	Pending      int                  // Pending событий в outbox
}

type service struct {
	store    Store
	ledger   ledger.Service
	client   httpclient.ClientAPI
	resolver CatalogResolver
	uploader Uploader
	logger   *slog.Logger
	seq      *tally.DeviceSequence
}

// NewService создает сервис устройства. client, resolver и uploader
// опциональны: без client устройство работает полностью офлайн.
func NewService(store Store, ledgerSvc ledger.Service, client httpclient.ClientAPI, resolver CatalogResolver, uploader Uploader, logger *slog.Logger) Service {
	return &service{
		store:    store,
		ledger:   ledgerSvc,
		client:   client,
		resolver: resolver,
		uploader: uploader,
		logger:   logger,
	}
}

// Identity возвращает идентичность устройства, создавая её при первом
// обращении. Сгенерированный DeviceID не меняется никогда: он входит в
// ключ идемпотентности каждого события устройства.
func (s *service) Identity(ctx context.Context) (*storage.Identity, error) {
	identity, err := s.store.GetIdentity(ctx)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, storage.ErrIdentityNotFound) {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	identity = &storage.Identity{
		DeviceID:    uuid.New().String(),
		DisplayName: defaultDisplayName(),
		CreatedAt:   time.Now().Unix(),
	}
	if err := s.store.SaveIdentity(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to save identity: %w", err)
	}

	s.logger.Info("Device identity created", "device_id", identity.DeviceID)

	return identity, nil
}

// sequence лениво собирает генератор ключей событий поверх идентичности.
func (s *service) sequence(ctx context.Context) (*tally.DeviceSequence, error) {
	if s.seq != nil {
		return s.seq, nil
	}
	identity, err := s.Identity(ctx)
	if err != nil {
		return nil, err
	}
	s.seq = tally.NewDeviceSequence(identity.DeviceID, s.store)
	return s.seq, nil
}

// membership возвращает текущее членство или ErrNotJoined.
func (s *service) membership(ctx context.Context) (*storage.Membership, error) {
	m, err := s.store.GetMembership(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrMembershipNotFound) {
			return nil, ErrNotJoined
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// defaultDisplayName берёт имя хоста ОС; оператор видит его в ростере и
// может опознать устройство. Длинные имена обрезаются под лимит валидации.
func defaultDisplayName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "stocktake-device"
	}
	if utf8.RuneCountInString(host) > validation.MaxDisplayNameLen {
		runes := []rune(host)
		return string(runes[:validation.MaxDisplayNameLen])
	}
	return host
}
