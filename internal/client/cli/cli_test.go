package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/client/device"
	"github.com/iudanet/stocktake/internal/client/iocli"
	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/ledger"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/packet"
)

// newMockIO собирает молчаливый IOMock; вывод доступен через *Calls()
func newMockIO() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
	}
}

// printedText склеивает весь вывод Println/Printf для проверок подстрок
func printedText(mockIO *iocli.IOMock) string {
	var sb strings.Builder
	for _, call := range mockIO.PrintlnCalls() {
		for _, a := range call.A {
			if s, ok := a.(string); ok {
				sb.WriteString(s)
				sb.WriteString("\n")
			}
		}
	}
	for _, call := range mockIO.PrintfCalls() {
		sb.WriteString(call.Format)
		for _, a := range call.A {
			if s, ok := a.(string); ok {
				sb.WriteString(s)
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestCli_runCount(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		RecordFunc: func(_ context.Context, itemKey string, delta int64) (*models.CountEvent, error) {
			return &models.CountEvent{
				EventID:  "dev:1",
				ItemKey:  itemKey,
				DeltaQty: delta,
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runCount(context.Background(), []string{"widget-blue", "12"})
	require.NoError(t, err)

	calls := mockDevice.RecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "widget-blue", calls[0].ItemKey)
	assert.Equal(t, int64(12), calls[0].Delta)
}

func TestCli_runCount_BadArgs(t *testing.T) {
	cli := New(newMockIO(), &device.ServiceMock{})

	err := cli.runCount(context.Background(), []string{"widget-blue"})
	assert.Error(t, err)

	err = cli.runCount(context.Background(), []string{"widget-blue", "dozen"})
	assert.Error(t, err)
}

func TestCli_runScan_Unmatched(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		ScanFunc: func(_ context.Context, code string, delta int64) (*device.ScanResult, error) {
			return &device.ScanResult{
				Event:   &models.CountEvent{EventID: "dev:2", ItemKey: code, DeltaQty: delta},
				ItemKey: code,
				Matched: false,
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	// qty по умолчанию 1
	err := cli.runScan(context.Background(), []string{"4601234567890"})
	require.NoError(t, err)

	calls := mockDevice.ScanCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(1), calls[0].Delta)

	assert.Contains(t, printedText(mockIO), "not found in catalog")
}

func TestCli_runShow_NotJoined(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		StatusFunc: func(_ context.Context) (*device.Status, error) {
			return &device.Status{
				Identity: &storage.Identity{DeviceID: "dev-1", DisplayName: "Counter"},
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runShow(context.Background())
	require.NoError(t, err)
	assert.Contains(t, printedText(mockIO), "Not in a counting session")
}

func TestCli_runShow_WithTotals(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		StatusFunc: func(_ context.Context) (*device.Status, error) {
			return &device.Status{
				Identity:   &storage.Identity{DeviceID: "dev-1", DisplayName: "Counter"},
				Membership: &storage.Membership{SessionID: "s-1", SessionName: "Warehouse A"},
				Session:    &models.Session{ID: "s-1", Status: models.SessionActive},
				Participants: []models.Participant{
					{DisplayName: "Host", Role: models.RoleHost, LastSeenAt: time.Now()},
				},
				Totals:  map[string]int64{"widget-blue": 5, "widget-red": -1},
				Pending: 3,
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runShow(context.Background())
	require.NoError(t, err)

	out := printedText(mockIO)
	assert.Contains(t, out, "Totals")
	assert.Contains(t, out, "Pending")
}

func TestFormatParticipant_Stale(t *testing.T) {
	now := time.Now()

	fresh := formatParticipant(models.Participant{
		DisplayName: "Fresh",
		Role:        models.RoleParticipant,
		LastSeenAt:  now.Add(-time.Minute),
	}, now)
	assert.NotContains(t, fresh, "last seen")

	stale := formatParticipant(models.Participant{
		DisplayName: "Stale",
		Role:        models.RoleParticipant,
		LastSeenAt:  now.Add(-time.Hour),
	}, now)
	assert.Contains(t, stale, "last seen")
}

func TestCli_runLeave(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		LeaveFunc: func(_ context.Context, force bool) error {
			assert.False(t, force)
			return nil
		},
	}
	c := New(mockIO, mockDevice)

	err := c.runLeave(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, mockDevice.LeaveCalls(), 1)
	assert.Contains(t, printedText(mockIO), "Left the session")
}

func TestCli_runLeave_PendingHint(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		LeaveFunc: func(_ context.Context, force bool) error {
			if !force {
				return device.ErrPendingEvents
			}
			return nil
		},
	}
	c := New(mockIO, mockDevice)

	// Без force выход блокируется с подсказкой, с -force проходит
	err := c.runLeave(context.Background(), nil)
	require.ErrorIs(t, err, device.ErrPendingEvents)
	assert.Contains(t, err.Error(), "-force")

	err = c.runLeave(context.Background(), []string{"-force"})
	require.NoError(t, err)
}

func TestCli_runFinalize_Declined(t *testing.T) {
	mockIO := newMockIO()
	mockIO.ConfirmFunc = func(prompt string) (bool, error) {
		return false, nil
	}
	mockDevice := &device.ServiceMock{}
	cli := New(mockIO, mockDevice)

	err := cli.runFinalize(context.Background(), []string{"-lock"})
	require.NoError(t, err)

	// Отказ от подтверждения ничего не финализирует
	assert.Empty(t, mockDevice.FinalizeCalls())
	assert.Contains(t, printedText(mockIO), "Aborted")
}

func TestCli_runFinalize_LockConfirmed(t *testing.T) {
	mockIO := newMockIO()
	mockIO.ConfirmFunc = func(prompt string) (bool, error) {
		return true, nil
	}
	mockDevice := &device.ServiceMock{
		FinalizeFunc: func(_ context.Context, lock bool) (*ledger.FinalizeResult, error) {
			return &ledger.FinalizeResult{
				Status: models.SessionLocked,
				Totals: map[string]int64{"widget-blue": 5},
				Mismatches: []models.Mismatch{
					{ItemKey: "widget-blue", Current: 5, Previous: 7, Delta: -2},
				},
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runFinalize(context.Background(), []string{"-lock"})
	require.NoError(t, err)

	calls := mockDevice.FinalizeCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Lock)
	assert.Contains(t, printedText(mockIO), "Mismatches")
}

func TestCli_runFinalize_UploadRequiresLock(t *testing.T) {
	mockDevice := &device.ServiceMock{
		FinalizeFunc: func(_ context.Context, lock bool) (*ledger.FinalizeResult, error) {
			return &ledger.FinalizeResult{
				Status: models.SessionFinalizing,
				Totals: map[string]int64{},
			}, nil
		},
	}
	cli := New(newMockIO(), mockDevice)

	err := cli.runFinalize(context.Background(), []string{"-upload"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestCli_runFinalize_LockAndUpload(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		FinalizeFunc: func(_ context.Context, lock bool) (*ledger.FinalizeResult, error) {
			return &ledger.FinalizeResult{
				Status: models.SessionLocked,
				Totals: map[string]int64{"widget-blue": 5},
			}, nil
		},
		UploadFunc: func(_ context.Context) (string, error) {
			return "receipt-42", nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runFinalize(context.Background(), []string{"-lock", "-yes", "-upload"})
	require.NoError(t, err)
	assert.Len(t, mockDevice.UploadCalls(), 1)
	assert.Contains(t, printedText(mockIO), "receipt-42")
}

func TestCli_runImport(t *testing.T) {
	mockIO := newMockIO()
	mockDevice := &device.ServiceMock{
		ImportPacketFunc: func(_ context.Context, encoded string) (*ledger.ImportResult, error) {
			return &ledger.ImportResult{
				AckPacket:  "STK1|ack|checksum00000000",
				ActorID:    "dev-2",
				Totals:     map[string]int64{"widget-blue": 5},
				Applied:    2,
				Duplicates: 1,
			}, nil
		},
	}
	cli := New(mockIO, mockDevice)

	err := cli.runImport(context.Background(), []string{"STK1|payload|checksum0000000"})
	require.NoError(t, err)

	calls := mockDevice.ImportPacketCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "STK1|payload|checksum0000000", calls[0].Encoded)
	assert.Contains(t, printedText(mockIO), "Ack Packet")
}

// readPacketText склеивает кадры чанкованного пакета из аргументов
func TestCli_readPacketText_Chunks(t *testing.T) {
	cli := New(newMockIO(), &device.ServiceMock{})

	encoded := "STK1|payload-that-spans-frames|checksum00000000"
	chunks := packet.Chunks(encoded, 16)
	require.Greater(t, len(chunks), 1)

	joined, err := cli.readPacketText(chunks, "")
	require.NoError(t, err)
	assert.Equal(t, encoded, joined)
}

// readPacketText читает кадры построчно до пустой строки
func TestCli_readPacketText_Interactive(t *testing.T) {
	encoded := "STK1|interactive-payload|checksum0000000"
	chunks := packet.Chunks(encoded, 20)
	require.Greater(t, len(chunks), 1)

	lines := append([]string{}, chunks...)
	lines = append(lines, "")
	var idx int

	mockIO := newMockIO()
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		line := lines[idx]
		idx++
		return line, nil
	}
	cli := New(mockIO, &device.ServiceMock{})

	joined, err := cli.readPacketText(nil, "Paste packet")
	require.NoError(t, err)
	assert.Equal(t, encoded, joined)
}
