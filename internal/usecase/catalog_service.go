package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
)

// Проверка, что CatalogService удовлетворяет интерфейсу CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService — чтение каталога: поиск, карточка, регионы, типы (без знаний о транспорте).
type CatalogService struct {
	api       ports.PokeAPI          // удалённый сервис
	cache     ports.PokemonCache     // кэш карточек
	favorites ports.FavoritesService // избранное (флаг и офлайн-снимки)
	log       ports.Logger
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	api ports.PokeAPI,
	cache ports.PokemonCache,
	favorites ports.FavoritesService,
	log ports.Logger,
) *CatalogService {
	return &CatalogService{
		api:       api,
		cache:     cache,
		favorites: favorites,
		log:       log,
	}
}

// Pokemon — карточка по имени или id: сначала кэш, при промахе — удалённый сервис с записью в кэш.
func (s *CatalogService) Pokemon(ctx context.Context, nameOrID string) (*domain.PokemonDetail, error) {
	key := domain.NormalizeName(nameOrID)
	if key == "" {
		return nil, domain.ErrEmptyQuery
	}

	if p, found := s.cache.Get(ctx, key); found {
		s.log.Infof(ctx, "cache hit for pokemon=%s", key)
		return p, nil
	}
	s.log.Infof(ctx, "cache miss for pokemon=%s", key)

	start := time.Now()
	p, err := s.api.Pokemon(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "api.Pokemon failed pokemon=%s err=%v", key, err)
		return nil, err
	}
	if setErr := s.cache.Set(ctx, p); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed pokemon=%s err=%v", key, setErr)
	}

	s.log.Infof(ctx, "api fetch pokemon=%s took=%s", key, time.Since(start))
	return p, nil
}

// Search — нормализует запрос и ищет по имени или id.
func (s *CatalogService) Search(ctx context.Context, query string) (*domain.PokemonDetail, error) {
	return s.Pokemon(ctx, query)
}

// DetailPage — собранная карточка: характеристики, описание, эволюции, флаг избранного.
// При недоступности сервиса возвращает офлайн-карточку из снимка избранного, если он есть.
// Описание и эволюции — best-effort: их ошибки логируются, карточка отдаётся без них.
func (s *CatalogService) DetailPage(ctx context.Context, nameOrID string) (*domain.DetailPage, error) {
	key := domain.NormalizeName(nameOrID)
	p, err := s.Pokemon(ctx, key)
	if err != nil {
		if snapshot, ok := s.offlineSnapshot(key); ok {
			s.log.Warnf(ctx, "serving offline page pokemon=%s err=%v", key, err)
			return domain.OfflineDetailPage(snapshot), nil
		}
		return nil, err
	}

	page := domain.NewDetailPage(p)
	page.Favorite = s.favorites.IsFavorite(p.Name) || s.favorites.IsFavorite(key)

	species, err := s.api.Species(ctx, p.Name)
	if err != nil {
		s.log.Warnf(ctx, "api.Species failed pokemon=%s err=%v", p.Name, err)
		return page, nil
	}
	page.Description = species.Description(domain.DescriptionLanguage)

	if species.EvolutionChain == nil {
		return page, nil
	}
	chainID, ok := domain.ChainIDFromURL(species.EvolutionChain.URL)
	if !ok {
		s.log.Warnf(ctx, "bad evolution chain url=%q pokemon=%s", species.EvolutionChain.URL, p.Name)
		return page, nil
	}
	chain, err := s.api.EvolutionChain(ctx, chainID)
	if err != nil {
		s.log.Warnf(ctx, "api.EvolutionChain failed id=%d err=%v", chainID, err)
		return page, nil
	}
	page.Evolutions = chain.Chain.Names()
	return page, nil
}

// offlineSnapshot — снимок по имени; для числового id ищется снимок с таким id.
func (s *CatalogService) offlineSnapshot(key string) (domain.Snapshot, bool) {
	if key == "" {
		return domain.Snapshot{}, false
	}
	if snapshot, ok := s.favorites.Snapshot(key); ok {
		return snapshot, true
	}
	if !domain.IsNumericID(key) {
		return domain.Snapshot{}, false
	}
	id, _ := strconv.Atoi(key)
	for _, snapshot := range s.favorites.FavoritesData() {
		if snapshot.ID == id {
			return snapshot, true
		}
	}
	return domain.Snapshot{}, false
}

// Regions — фиксированный список регионов.
func (s *CatalogService) Regions() []domain.Region {
	return slices.Clone(domain.Regions)
}

// RegionPokemon — страница регионального покедекса.
// pokedexID <= 0 — Kanto; limit <= 0 — все записи начиная с offset.
func (s *CatalogService) RegionPokemon(ctx context.Context, pokedexID, limit, offset int) (*domain.Pokedex, error) {
	if pokedexID <= 0 {
		pokedexID = domain.DefaultPokedexID
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must be >= 0, got %d", offset)
	}

	dex, err := s.api.Pokedex(ctx, pokedexID)
	if err != nil {
		s.log.Warnf(ctx, "api.Pokedex failed id=%d err=%v", pokedexID, err)
		return nil, err
	}

	entries := dex.PokemonEntries
	if offset >= len(entries) {
		entries = nil
	} else {
		entries = entries[offset:]
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return &domain.Pokedex{
		ID:             dex.ID,
		Name:           dex.Name,
		PokemonEntries: append([]domain.PokedexEntry{}, entries...),
	}, nil
}

// Types — список типов (категорий).
func (s *CatalogService) Types(ctx context.Context) ([]domain.NamedResource, error) {
	types, err := s.api.Types(ctx)
	if err != nil {
		s.log.Warnf(ctx, "api.Types failed err=%v", err)
		return nil, err
	}
	return types, nil
}
