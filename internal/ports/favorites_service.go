package ports

import (
	"context"

	"github.com/Gunvolt24/pokedex/internal/domain"
)

// FavoritesService — то, что видят потребители избранного (экраны, HTTP, CLI, Kafka).
type FavoritesService interface {
	Favorites() []string
	FavoritesData() map[string]domain.Snapshot
	Snapshot(nameOrID string) (domain.Snapshot, bool)
	IsFavorite(nameOrID string) bool
	ToggleFavorite(ctx context.Context, nameOrID string) bool
	Reload(ctx context.Context)
}
