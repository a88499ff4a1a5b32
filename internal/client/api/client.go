package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/stocktake/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента сервера синхронизации.
// Выделен в интерфейс, чтобы сервис устройства тестировался без сети.
type ClientAPI interface {
	// CreateSession создает новую сессию подсчёта на сервере
	CreateSession(ctx context.Context, req api.CreateSessionRequest) (*api.CreateSessionResponse, error)

	// JoinSession регистрирует устройство в ростере сессии
	JoinSession(ctx context.Context, sessionID string, req api.JoinSessionRequest) (*api.JoinSessionResponse, error)

	// GetState возвращает сессию, ростер и текущие итоги
	GetState(ctx context.Context, sessionID string) (*api.StateResponse, error)

	// Commit вливает батч событий в леджер сервера
	Commit(ctx context.Context, sessionID string, req api.CommitRequest) (*api.CommitResponse, error)

	// Finalize фиксирует итоги сессии (только хост)
	Finalize(ctx context.Context, sessionID string, req api.FinalizeRequest) (*api.FinalizeResponse, error)

	// ImportPacket отдаёт серверу пакет участника, возвращает ack-пакет
	ImportPacket(ctx context.Context, sessionID string, req api.ImportPacketRequest) (*api.ImportPacketResponse, error)
}

// StatusError несёт статус ответа сервера, когда тот вернул ошибку.
// Вызывающий код различает по нему конфликт (сессия заблокирована)
// и просто сбой сети.
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Client представляет HTTP клиент для взаимодействия с сервером.
// Сервис леджера не содержит внутренних повторов, поэтому политика retry
// живёт здесь: экспоненциальный backoff с jitter на сетевых сбоях и 5xx.
// Повторы безопасны - каждый коммит идемпотентен по ключам событий.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries uint64
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
	}
}

// CreateSession создает новую сессию подсчёта
func (c *Client) CreateSession(ctx context.Context, req api.CreateSessionRequest) (*api.CreateSessionResponse, error) {
	var resp api.CreateSessionResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/sessions", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create session request failed: %w", err)
	}
	return &resp, nil
}

// JoinSession регистрирует устройство в ростере сессии
func (c *Client) JoinSession(ctx context.Context, sessionID string, req api.JoinSessionRequest) (*api.JoinSessionResponse, error) {
	var resp api.JoinSessionResponse
	url := fmt.Sprintf("/api/v1/sessions/%s/join", sessionID)
	err := c.doRequest(ctx, http.MethodPost, url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("join session request failed: %w", err)
	}
	return &resp, nil
}

// GetState возвращает состояние сессии
func (c *Client) GetState(ctx context.Context, sessionID string) (*api.StateResponse, error) {
	var resp api.StateResponse
	url := fmt.Sprintf("/api/v1/sessions/%s", sessionID)
	err := c.doRequest(ctx, http.MethodGet, url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get state request failed: %w", err)
	}
	return &resp, nil
}

// Commit вливает батч событий в леджер сервера
func (c *Client) Commit(ctx context.Context, sessionID string, req api.CommitRequest) (*api.CommitResponse, error) {
	var resp api.CommitResponse
	url := fmt.Sprintf("/api/v1/sessions/%s/commit", sessionID)
	err := c.doRequest(ctx, http.MethodPost, url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("commit request failed: %w", err)
	}
	return &resp, nil
}

// Finalize фиксирует итоги сессии
func (c *Client) Finalize(ctx context.Context, sessionID string, req api.FinalizeRequest) (*api.FinalizeResponse, error) {
	var resp api.FinalizeResponse
	url := fmt.Sprintf("/api/v1/sessions/%s/finalize", sessionID)
	err := c.doRequest(ctx, http.MethodPost, url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("finalize request failed: %w", err)
	}
	return &resp, nil
}

// ImportPacket отдаёт серверу пакет участника, возвращает ack-пакет
func (c *Client) ImportPacket(ctx context.Context, sessionID string, req api.ImportPacketRequest) (*api.ImportPacketResponse, error) {
	var resp api.ImportPacketResponse
	url := fmt.Sprintf("/api/v1/sessions/%s/packets", sessionID)
	err := c.doRequest(ctx, http.MethodPost, url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("import packet request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос с повторами.
// Повторяются только сетевые сбои, 5xx и 429: ошибки 4xx детерминированы
// и повтор их не исправит.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyData []byte
	if body != nil {
		var err error
		bodyData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(500*time.Millisecond))
	backoff = retry.WithJitter(100*time.Millisecond, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return c.doOnce(ctx, method, path, bodyData, result)
	})
}

// doOnce выполняет один HTTP запрос
func (c *Client) doOnce(ctx context.Context, method, path string, bodyData []byte, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if bodyData != nil {
		bodyReader = bytes.NewReader(bodyData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if bodyData != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевой сбой: сервер мог быть недоступен мгновение
		return retry.RetryableError(fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.RetryableError(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}

		statusErr := &StatusError{
			Message:    message,
			StatusCode: resp.StatusCode,
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return retry.RetryableError(statusErr)
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
