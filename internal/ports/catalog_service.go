package ports

import (
	"context"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

// CatalogService — чтение каталога для потребителей.
type CatalogService interface {
	DetailPage(ctx context.Context, nameOrID string) (*domain.DetailPage, error)
	Search(ctx context.Context, query string) (*domain.PokemonDetail, error)
	Regions() []domain.Region
	RegionPokemon(ctx context.Context, pokedexID, limit, offset int) (*domain.Pokedex, error)
	Types(ctx context.Context) ([]domain.NamedResource, error)
}
