package packet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Оптический кадр вмещает единицы килобайт текста, а пакет данных верхней
// границы размера не имеет. Chunks/Join дают вызывающему коду разрезать
// закодированный пакет на кадры "STKC|i/n|<кусок>" и собрать его обратно;
// ядро никогда не предполагает передачу одним кадром.
const chunkMagic = "STKC"

// Chunks режет закодированный пакет на кадры не длиннее size символов
// полезной нагрузки каждый. Для size <= 0 возвращается один кадр целиком.
func Chunks(encoded string, size int) []string {
	if size <= 0 || size >= len(encoded) {
		return []string{chunkMagic + "|1/1|" + encoded}
	}

	total := (len(encoded) + size - 1) / size
	chunks := make([]string, 0, total)
	for i := 0; i < total; i++ {
		start := i * size
		end := start + size
		if end > len(encoded) {
			end = len(encoded)
		}
		chunks = append(chunks, fmt.Sprintf("%s|%d/%d|%s", chunkMagic, i+1, total, encoded[start:end]))
	}
	return chunks
}

// Join собирает кадры обратно в закодированный пакет. Порядок кадров не
// важен, повторно отсканированные кадры поглощаются. Недостающий кадр,
// расхождение счётчиков или кадр чужой нарезки дают ErrPacketMalformed.
func Join(chunks []string) (string, error) {
	if len(chunks) == 0 {
		return "", fmt.Errorf("%w: no chunks", ErrPacketMalformed)
	}

	total := 0
	pieces := make(map[int]string)

	for _, chunk := range chunks {
		parts := strings.SplitN(strings.TrimSpace(chunk), "|", 3)
		if len(parts) != 3 || parts[0] != chunkMagic {
			return "", fmt.Errorf("%w: bad chunk framing", ErrPacketMalformed)
		}

		idx, n, err := parseChunkCounter(parts[1])
		if err != nil {
			return "", err
		}
		if total == 0 {
			total = n
		} else if total != n {
			return "", fmt.Errorf("%w: chunk counter mismatch: %d vs %d", ErrPacketMalformed, total, n)
		}

		if existing, ok := pieces[idx]; ok {
			if existing != parts[2] {
				return "", fmt.Errorf("%w: conflicting chunk %d", ErrPacketMalformed, idx)
			}
			continue
		}
		pieces[idx] = parts[2]
	}

	if len(pieces) != total {
		return "", fmt.Errorf("%w: have %d of %d chunks", ErrPacketMalformed, len(pieces), total)
	}

	indexes := make([]int, 0, len(pieces))
	for idx := range pieces {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	var sb strings.Builder
	for _, idx := range indexes {
		sb.WriteString(pieces[idx])
	}
	return sb.String(), nil
}

func parseChunkCounter(s string) (idx, total int, err error) {
	slash := strings.IndexByte(s, '/')
	if slash <= 0 || slash == len(s)-1 {
		return 0, 0, fmt.Errorf("%w: bad chunk counter %q", ErrPacketMalformed, s)
	}
	idx, err = strconv.Atoi(s[:slash])
	if err != nil || idx < 1 {
		return 0, 0, fmt.Errorf("%w: bad chunk index %q", ErrPacketMalformed, s)
	}
	total, err = strconv.Atoi(s[slash+1:])
	if err != nil || total < 1 || idx > total {
		return 0, 0, fmt.Errorf("%w: bad chunk total %q", ErrPacketMalformed, s)
	}
	return idx, total, nil
}
