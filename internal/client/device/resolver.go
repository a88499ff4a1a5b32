package device

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:generate moq -out resolver_mock.go . CatalogResolver

// CatalogResolver сопоставляет отсканированный код (штрихкод, QR) с
// ключом товара. Резолвер подключается опционально: без него Scan
// использует код как есть.
type CatalogResolver interface {
	Resolve(ctx context.Context, code string) (itemKey string, ok bool, err error)
}

// CSVResolver резолвер по локальному CSV-справочнику вида "code,item_key".
// Файл читается целиком при первом обращении и дальше не перечитывается:
// справочник выгружается перед инвентаризацией и во время неё не меняется.
type CSVResolver struct {
	path string

	once    sync.Once
	loadErr error
	codes   map[string]string
}

func NewCSVResolver(path string) *CSVResolver {
	return &CSVResolver{path: path}
}

func (r *CSVResolver) Resolve(_ context.Context, code string) (string, bool, error) {
	r.once.Do(r.load)
	if r.loadErr != nil {
		return "", false, r.loadErr
	}

	itemKey, ok := r.codes[strings.TrimSpace(code)]
	return itemKey, ok, nil
}

func (r *CSVResolver) load() {
	f, err := os.Open(r.path)
	if err != nil {
		r.loadErr = fmt.Errorf("failed to open catalog: %w", err)
		return
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	codes := make(map[string]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			r.loadErr = fmt.Errorf("failed to parse catalog %s: %w", r.path, err)
			return
		}

		code := strings.TrimSpace(record[0])
		itemKey := strings.TrimSpace(record[1])
		if code == "" || itemKey == "" || code == "code" {
			// пустые строки и строка заголовка
			continue
		}
		codes[code] = itemKey
	}

	r.codes = codes
}
