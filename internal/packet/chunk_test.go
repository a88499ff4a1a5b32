package packet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func TestChunksJoin_RoundTrip(t *testing.T) {
	p := NewDataPacket("session-1", "device-a", "Анна", testEvents("session-1"),
		map[string]int64{"widget": 5}, nil)
	encoded, err := Encode(p)
	require.NoError(t, err)

	tests := []struct {
		name string
		size int
	}{
		{name: "single oversized frame", size: len(encoded) + 10},
		{name: "exact fit", size: len(encoded)},
		{name: "two frames", size: len(encoded)/2 + 1},
		{name: "many tiny frames", size: 16},
		{name: "non-positive size", size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunks(encoded, tt.size)
			require.NotEmpty(t, chunks)

			joined, err := Join(chunks)
			require.NoError(t, err)
			assert.Equal(t, encoded, joined)

			decoded, err := Decode(joined)
			require.NoError(t, err)
			assert.Equal(t, p, decoded)
		})
	}
}

func TestJoin_OrderIndependent(t *testing.T) {
	p := NewJoinPacket(models.Session{ID: "s1", Name: "Склад", HostID: "h1"})
	encoded, err := Encode(p)
	require.NoError(t, err)

	chunks := Chunks(encoded, 8)
	require.Greater(t, len(chunks), 2)

	// Кадры сканируются в произвольном порядке
	shuffled := make([]string, len(chunks))
	copy(shuffled, chunks)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	joined, err := Join(shuffled)
	require.NoError(t, err)
	assert.Equal(t, encoded, joined)
}

func TestJoin_AbsorbsRescannedFrames(t *testing.T) {
	p := NewJoinPacket(models.Session{ID: "s1", Name: "Склад", HostID: "h1"})
	encoded, err := Encode(p)
	require.NoError(t, err)

	chunks := Chunks(encoded, 16)
	// Один кадр отсканирован дважды
	chunks = append(chunks, chunks[0])

	joined, err := Join(chunks)
	require.NoError(t, err)
	assert.Equal(t, encoded, joined)
}

func TestJoin_FailsClosed(t *testing.T) {
	p := NewJoinPacket(models.Session{ID: "s1", Name: "Склад", HostID: "h1"})
	encoded, err := Encode(p)
	require.NoError(t, err)

	chunks := Chunks(encoded, 16)
	require.Greater(t, len(chunks), 2)

	tests := []struct {
		name   string
		chunks []string
	}{
		{name: "no chunks", chunks: nil},
		{name: "missing frame", chunks: chunks[1:]},
		{name: "foreign framing", chunks: []string{"QR|1/1|data"}},
		{name: "bad counter", chunks: []string{"STKC|x/2|data"}},
		{name: "index above total", chunks: []string{"STKC|3/2|data"}},
		{name: "zero index", chunks: []string{"STKC|0/1|data"}},
		{
			name:   "counter mismatch between frames",
			chunks: []string{"STKC|1/2|aa", "STKC|2/3|bb"},
		},
		{
			name:   "conflicting duplicate frame",
			chunks: []string{"STKC|1/2|aa", "STKC|2/2|bb", "STKC|1/2|zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Join(tt.chunks)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPacketMalformed)
		})
	}
}
