package app

import (
	"context"

	"github.com/Gunvolt24/pokedex/config"
	cachemem "github.com/Gunvolt24/pokedex/internal/cache/memory"
	"github.com/Gunvolt24/pokedex/internal/pokeapi"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/internal/usecase"
	"github.com/Gunvolt24/pokedex/pkg/validate"
)

// Services — доменный слой, общий для сервера и CLI.
type Services struct {
	Favorites *usecase.FavoritesStore
	Catalog   *usecase.CatalogService
}

// NewServices — собирает клиент PokeAPI, кэш карточек, избранное (с первичной загрузкой) и каталог.
func NewServices(ctx context.Context, cfg *config.Config, kv ports.KVStore, log ports.Logger) *Services {
	validator := validate.NewPokemonValidator()

	client := pokeapi.NewClient(pokeapi.Config{
		BaseURL: cfg.PokeAPI.BaseURL,
		Timeout: cfg.PokeAPI.Timeout,
		RPS:     cfg.PokeAPI.RPS,
		Burst:   cfg.PokeAPI.Burst,
	}, validator)

	favorites := usecase.OpenFavoritesStore(ctx, kv, client, log, validator, usecase.FavoritesOptions{
		FavoritesKey:    cfg.Favorites.Key,
		SnapshotPrefix:  cfg.Favorites.SnapshotPrefix,
		FetchTimeout:    cfg.Favorites.FetchTimeout,
		LoadConcurrency: cfg.Favorites.LoadConcurrency,
	})

	cache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	catalog := usecase.NewCatalogService(client, cache, favorites, log)

	return &Services{Favorites: favorites, Catalog: catalog}
}
