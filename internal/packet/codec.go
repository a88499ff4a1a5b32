package packet

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"golang.org/x/crypto/blake2b"
)

// Формат провода: "STK1|<base64url(flate(json))>|<контрольная сумма>".
// Контрольная сумма (усечённый BLAKE2b-256 от сжатых байт) ловит искажения
// оптического канала до того, как декодер возьмётся за JSON.
const (
	magic = "STK1"

	// checksumLen длина hex-суммы в символах (8 байт BLAKE2b)
	checksumLen = 16

	// maxDecodedSize потолок размера распакованного payload.
	// Защита от декомпрессионной бомбы в подсунутом пакете.
	maxDecodedSize = 4 << 20
)

// Encode сериализует пакет в самодостаточную текстовую строку для
// оптического канала. Для любого валидного p выполняется
// Decode(Encode(p)) == p с точностью до нормализации пустых коллекций.
func Encode(p Packet) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("failed to encode packet: %w", err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal packet: %w", err)
	}

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to init compressor: %w", err)
	}
	if _, err := fw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress packet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("failed to flush compressor: %w", err)
	}

	compressed := buf.Bytes()
	payload := base64.RawURLEncoding.EncodeToString(compressed)

	return magic + "|" + payload + "|" + checksum(compressed), nil
}

// Decode разбирает текстовый payload обратно в пакет. Падает закрыто:
// любое повреждение, усечение или неизвестная версия дают ErrPacketMalformed,
// частично декодированные данные наружу не выходят.
func Decode(text string) (Packet, error) {
	parts := strings.Split(strings.TrimSpace(text), "|")
	if len(parts) != 3 {
		return Packet{}, fmt.Errorf("%w: want 3 segments, got %d", ErrPacketMalformed, len(parts))
	}
	if parts[0] != magic {
		return Packet{}, fmt.Errorf("%w: unknown format prefix %q", ErrPacketMalformed, parts[0])
	}

	compressed, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Packet{}, fmt.Errorf("%w: bad base64 payload", ErrPacketMalformed)
	}

	if parts[2] != checksum(compressed) {
		return Packet{}, fmt.Errorf("%w: checksum verification failed", ErrPacketMalformed)
	}

	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()

	raw, err := io.ReadAll(io.LimitReader(fr, maxDecodedSize+1))
	if err != nil {
		return Packet{}, fmt.Errorf("%w: corrupted compressed payload", ErrPacketMalformed)
	}
	if len(raw) > maxDecodedSize {
		return Packet{}, fmt.Errorf("%w: decoded payload exceeds %d bytes", ErrPacketMalformed, maxDecodedSize)
	}

	var p Packet
	if err := json.Unmarshal(raw, &p); err != nil {
		return Packet{}, fmt.Errorf("%w: bad packet json", ErrPacketMalformed)
	}

	if err := p.Validate(); err != nil {
		return Packet{}, err
	}

	return p, nil
}

// DecodeForSession декодирует payload и отвергает пакет чужой сессии
// до любого обращения к леджеру.
func DecodeForSession(text, sessionID string) (Packet, error) {
	p, err := Decode(text)
	if err != nil {
		return Packet{}, err
	}
	if p.SessionID() != sessionID {
		return Packet{}, fmt.Errorf("%w: packet for session %q, target session %q",
			ErrPacketSessionMismatch, p.SessionID(), sessionID)
	}
	return p, nil
}

func checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:checksumLen/2])
}
