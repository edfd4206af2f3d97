package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// EachSnapshotJSONL — читает JSONL снимков, невалидные строки считает и пропускает,
// для каждой валидной вызывает fn. Ошибка fn прерывает чтение.
// Пустые строки пропускаются.
func EachSnapshotJSONL(ctx context.Context, validator ports.PokemonValidator, ir io.Reader, fn func(*domain.Snapshot) error) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		snapshot, err := SnapshotFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}
		if err := fn(snapshot); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// ValidateJSONLStream — валидные снимки пишет в writer каноническим JSON, по одному в строке.
func ValidateJSONLStream(ctx context.Context, validator ports.PokemonValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	return EachSnapshotJSONL(ctx, validator, ir, func(s *domain.Snapshot) error {
		return writeLine(ow, s)
	})
}

func writeLine(ow io.Writer, s *domain.Snapshot) error {
	marshal, _ := json.Marshal(s) // маршалим в компактный JSON
	if _, err := ow.Write(marshal); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}
