package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
)

// SnapshotFromJSON — строгий разбор и валидация снимка избранного.
func SnapshotFromJSON(ctx context.Context, validator ports.PokemonValidator, raw []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.ValidateSnapshot(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// FavoritesFromJSON — разбор сохранённого списка имён (JSON-массив строк).
func FavoritesFromJSON(raw []byte) ([]string, error) {
	var names []string
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&names); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	return names, nil
}
