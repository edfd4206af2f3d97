package ports

import (
	"context"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

// PokemonValidator — проверка удалённых записей и снимков на границе.
type PokemonValidator interface {
	Validate(ctx context.Context, p *domain.PokemonDetail) error
	ValidateSnapshot(ctx context.Context, s *domain.Snapshot) error
}
