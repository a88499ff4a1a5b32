package device

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/stocktake/pkg/api"
)

//go:generate moq -out uploader_mock.go . Uploader

// Uploader передаёт зафиксированные итоги сессии внешней системе учёта
// и возвращает её квитанцию о приёме.
type Uploader interface {
	Submit(ctx context.Context, sessionID string, totals map[string]int64) (receipt string, err error)
}

// HTTPUploader выгружает итоги одним POST с JSON-телом. Без ретраев:
// выгрузка запускается оператором вручную и безопасно повторяется.
type HTTPUploader struct {
	httpClient *http.Client
	url        string
}

func NewHTTPUploader(url string) *HTTPUploader {
	return &HTTPUploader{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		url:        url,
	}
}

type uploadPayload struct {
	SessionID  string         `json:"session_id"`
	Totals     []api.TotalDTO `json:"totals"`
	UploadedAt int64          `json:"uploaded_at"`
}

type uploadReceipt struct {
	Receipt string `json:"receipt"`
}

func (u *HTTPUploader) Submit(ctx context.Context, sessionID string, totals map[string]int64) (string, error) {
	body, err := json.Marshal(uploadPayload{
		SessionID:  sessionID,
		Totals:     api.TotalsToList(totals),
		UploadedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upstream rejected upload with status %d: %s", resp.StatusCode, string(respBody))
	}

	var receipt uploadReceipt
	if err := json.Unmarshal(respBody, &receipt); err != nil || receipt.Receipt == "" {
		// квитанцией считаем само тело ответа, если оно не наш JSON
		return string(respBody), nil
	}
	return receipt.Receipt, nil
}
