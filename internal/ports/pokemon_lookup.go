package ports

import (
	"context"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

// PokemonLookup — удалённый поиск карточки по имени или id.
// Ошибка при отсутствии записи или сбое сети.
type PokemonLookup interface {
	Pokemon(ctx context.Context, nameOrID string) (*domain.PokemonDetail, error)
}

// PokeAPI — полный набор удалённых ресурсов, нужных каталогу.
type PokeAPI interface {
	PokemonLookup
	Species(ctx context.Context, nameOrID string) (*domain.Species, error)
	EvolutionChain(ctx context.Context, id int) (*domain.EvolutionChain, error)
	Pokedex(ctx context.Context, id int) (*domain.Pokedex, error)
	Regions(ctx context.Context) ([]domain.NamedResource, error)
	Types(ctx context.Context) ([]domain.NamedResource, error)
}
