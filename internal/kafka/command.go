package kafka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/ctxmeta"
)

// ErrInvalidCommand — сообщение не является корректной командой; коммитится и пропускается.
var ErrInvalidCommand = errors.New("invalid favorite command")

const (
	ActionToggle = "toggle"
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Command — команда избранного из топика: {"action":"toggle|add|remove","name":"pikachu"}.
type Command struct {
	Action string `json:"action"`
	Name   string `json:"name"`
}

// ParseCommand — строгий разбор: неизвестные поля и данные после объекта запрещены.
func ParseCommand(raw []byte) (Command, error) {
	var cmd Command
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		return Command{}, fmt.Errorf("%w: invalid json: %v", ErrInvalidCommand, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return Command{}, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidCommand)
	}

	cmd.Action = domain.NormalizeName(cmd.Action)
	cmd.Name = domain.NormalizeName(cmd.Name)
	switch cmd.Action {
	case ActionToggle, ActionAdd, ActionRemove:
	default:
		return Command{}, fmt.Errorf("%w: unknown action %q", ErrInvalidCommand, cmd.Action)
	}
	if cmd.Name == "" {
		return Command{}, fmt.Errorf("%w: name is required", ErrInvalidCommand)
	}
	return cmd, nil
}

// CommandHandler — применяет команды к избранному.
// add/remove идемпотентны: переключают, только если состояние отличается.
type CommandHandler struct {
	favorites ports.FavoritesService
	log       ports.Logger
}

// NewCommandHandler — конструктор CommandHandler.
func NewCommandHandler(favorites ports.FavoritesService, log ports.Logger) *CommandHandler {
	return &CommandHandler{favorites: favorites, log: log}
}

// HandleMessage — разбор и применение одной команды.
// Ошибка контекста возвращается как временная (без коммита).
func (h *CommandHandler) HandleMessage(ctx context.Context, raw []byte) error {
	cmd, err := ParseCommand(raw)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx = ctxmeta.WithSource(ctx, ctxmeta.SourceKafka)

	member := h.favorites.IsFavorite(cmd.Name)
	switch {
	case cmd.Action == ActionToggle,
		cmd.Action == ActionAdd && !member,
		cmd.Action == ActionRemove && member:
		member = h.favorites.ToggleFavorite(ctx, cmd.Name)
		h.log.Infof(ctx, "favorite command applied action=%s name=%s favorite=%t", cmd.Action, cmd.Name, member)
	default:
		h.log.Infof(ctx, "favorite command no-op action=%s name=%s favorite=%t", cmd.Action, cmd.Name, member)
	}
	return nil
}
