package usecase

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/metrics"
	"github.com/Gunvolt24/pokedex/pkg/validate"
)

// Проверка, что FavoritesStore удовлетворяет интерфейсу FavoritesService.
var _ ports.FavoritesService = (*FavoritesStore)(nil)

const (
	// DefaultFavoritesKey — ключ сохранённого списка имён (JSON-массив строк).
	DefaultFavoritesKey = "@pokedex_favorites_v1"
	// DefaultSnapshotPrefix — префикс ключей снимков; полный ключ = префикс + имя.
	DefaultSnapshotPrefix = "@pokedex_pokemon_cache_v1:"
)

// FavoritesOptions — настройки хранилища избранного.
type FavoritesOptions struct {
	FavoritesKey    string
	SnapshotPrefix  string
	FetchTimeout    time.Duration // таймаут фонового запроса снимка
	LoadConcurrency int           // параллельных чтений снимков при загрузке
}

// DefaultFavoritesOptions — значения по умолчанию.
func DefaultFavoritesOptions() FavoritesOptions {
	return FavoritesOptions{
		FavoritesKey:    DefaultFavoritesKey,
		SnapshotPrefix:  DefaultSnapshotPrefix,
		FetchTimeout:    10 * time.Second,
		LoadConcurrency: 8,
	}
}

func (o FavoritesOptions) withDefaults() FavoritesOptions {
	def := DefaultFavoritesOptions()
	if o.FavoritesKey == "" {
		o.FavoritesKey = def.FavoritesKey
	}
	if o.SnapshotPrefix == "" {
		o.SnapshotPrefix = def.SnapshotPrefix
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = def.FetchTimeout
	}
	if o.LoadConcurrency <= 0 {
		o.LoadConcurrency = def.LoadConcurrency
	}
	return o
}

var tracer = otel.Tracer("github.com/Gunvolt24/pokedex/internal/usecase")

// FavoritesStore — владелец списка избранного и кэша снимков.
//
// Список — единственный источник истины о членстве; снимки — best-effort кэш.
// Ошибки хранилища и удалённого сервиса логируются и не возвращаются вызывающему,
// изменение в памяти никогда не откатывается.
//
// Переключения сериализуются (opMu). Фоновый запрос снимка фиксирует результат
// только если поколение имени не изменилось с момента добавления.
type FavoritesStore struct {
	kv        ports.KVStore
	lookup    ports.PokemonLookup
	log       ports.Logger
	validator ports.PokemonValidator
	opts      FavoritesOptions

	opMu sync.Mutex // сериализует Load/Toggle и фиксацию снимков

	mu        sync.RWMutex // защищает поля ниже
	favorites []string
	cache     map[string]domain.Snapshot
	gens      map[string]uint64

	pending sync.WaitGroup // фоновые запросы снимков
}

// NewFavoritesStore — DI-конструктор. Состояние пустое до Load.
func NewFavoritesStore(
	kv ports.KVStore,
	lookup ports.PokemonLookup,
	log ports.Logger,
	validator ports.PokemonValidator,
	opts FavoritesOptions,
) *FavoritesStore {
	return &FavoritesStore{
		kv:        kv,
		lookup:    lookup,
		log:       log,
		validator: validator,
		opts:      opts.withDefaults(),
		favorites: []string{},
		cache:     make(map[string]domain.Snapshot),
		gens:      make(map[string]uint64),
	}
}

// OpenFavoritesStore — конструктор + первичная загрузка из хранилища.
func OpenFavoritesStore(
	ctx context.Context,
	kv ports.KVStore,
	lookup ports.PokemonLookup,
	log ports.Logger,
	validator ports.PokemonValidator,
	opts FavoritesOptions,
) *FavoritesStore {
	s := NewFavoritesStore(kv, lookup, log, validator, opts)
	s.Load(ctx)
	return s
}

// Load — читает список и снимки из хранилища и перезаписывает состояние в памяти.
// Любая ошибка чтения или разбора списка даёт пустое избранное.
func (s *FavoritesStore) Load(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "FavoritesStore.Load")
	defer span.End()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	start := time.Now()
	names := s.readFavorites(ctx)
	cache := s.readSnapshots(ctx, names)

	s.mu.Lock()
	s.favorites = names
	s.cache = cache
	s.mu.Unlock()

	metrics.FavoritesCount.Set(float64(len(names)))
	span.SetAttributes(attribute.Int("favorites.count", len(names)), attribute.Int("favorites.snapshots", len(cache)))
	s.log.Infof(ctx, "favorites loaded count=%d snapshots=%d took=%s", len(names), len(cache), time.Since(start))
}

// Reload — повторная загрузка.
func (s *FavoritesStore) Reload(ctx context.Context) { s.Load(ctx) }

func (s *FavoritesStore) readFavorites(ctx context.Context) []string {
	raw, ok, err := s.kv.Get(ctx, s.opts.FavoritesKey)
	if err != nil {
		metrics.KVErrors.WithLabelValues("get").Inc()
		s.log.Errorf(ctx, "kv.Get favorites failed key=%s err=%v", s.opts.FavoritesKey, err)
		return []string{}
	}
	if !ok {
		return []string{}
	}

	stored, err := validate.FavoritesFromJSON([]byte(raw))
	if err != nil {
		metrics.KVErrors.WithLabelValues("parse").Inc()
		s.log.Warnf(ctx, "favorites parse failed key=%s err=%v", s.opts.FavoritesKey, err)
		return []string{}
	}

	names := make([]string, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, n := range stored {
		n = domain.NormalizeName(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}

// readSnapshots — параллельное чтение снимков; ошибки по отдельным именам пропускаются.
func (s *FavoritesStore) readSnapshots(ctx context.Context, names []string) map[string]domain.Snapshot {
	results := make([]*domain.Snapshot, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.LoadConcurrency)
	for i, name := range names {
		g.Go(func() error {
			key := s.snapshotKey(name)
			raw, ok, err := s.kv.Get(gctx, key)
			if err != nil {
				metrics.KVErrors.WithLabelValues("get").Inc()
				s.log.Warnf(gctx, "kv.Get snapshot failed key=%s err=%v", key, err)
				return nil
			}
			if !ok {
				return nil
			}
			snapshot, err := validate.SnapshotFromJSON(gctx, s.validator, []byte(raw))
			if err != nil {
				metrics.KVErrors.WithLabelValues("parse").Inc()
				s.log.Warnf(gctx, "snapshot parse failed key=%s err=%v", key, err)
				return nil
			}
			results[i] = snapshot
			return nil
		})
	}
	_ = g.Wait() // горутины не возвращают ошибок

	cache := make(map[string]domain.Snapshot, len(names))
	for i, snapshot := range results {
		if snapshot != nil {
			cache[names[i]] = *snapshot
		}
	}
	return cache
}

// IsFavorite — проверка членства по нормализованному имени.
func (s *FavoritesStore) IsFavorite(nameOrID string) bool {
	name := domain.NormalizeName(nameOrID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, name)
}

// Favorites — копия списка имён в порядке добавления.
func (s *FavoritesStore) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// FavoritesData — копия отображения имя → снимок.
func (s *FavoritesStore) FavoritesData() map[string]domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Snapshot, len(s.cache))
	for name, snapshot := range s.cache {
		out[name] = snapshot.Clone()
	}
	return out
}

// Snapshot — снимок одного избранного.
func (s *FavoritesStore) Snapshot(nameOrID string) (domain.Snapshot, bool) {
	name := domain.NormalizeName(nameOrID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.cache[name]
	if !ok {
		return domain.Snapshot{}, false
	}
	return snapshot.Clone(), true
}

// ToggleFavorite — добавить или убрать имя; возвращает новое членство.
// При добавлении снимок запрашивается в фоне и вызывающего не блокирует.
func (s *FavoritesStore) ToggleFavorite(ctx context.Context, nameOrID string) bool {
	name := domain.NormalizeName(nameOrID)
	if name == "" {
		s.log.Warnf(ctx, "toggle favorite skipped: empty name")
		return false
	}

	ctx, span := tracer.Start(ctx, "FavoritesStore.ToggleFavorite",
		trace.WithAttributes(attribute.String("pokemon.name", name)))
	defer span.End()

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	idx := slices.Index(s.favorites, name)
	removing := idx >= 0
	if removing {
		s.favorites = slices.Delete(slices.Clone(s.favorites), idx, idx+1)
	} else {
		s.favorites = append(slices.Clone(s.favorites), name)
	}
	s.gens[name]++
	gen := s.gens[name]
	list := slices.Clone(s.favorites)
	s.mu.Unlock()

	metrics.FavoritesCount.Set(float64(len(list)))
	s.persistFavorites(ctx, list)

	if removing {
		key := s.snapshotKey(name)
		if err := s.kv.Remove(ctx, key); err != nil {
			metrics.KVErrors.WithLabelValues("remove").Inc()
			s.log.Errorf(ctx, "kv.Remove snapshot failed key=%s err=%v", key, err)
		}

		s.mu.Lock()
		delete(s.cache, name)
		s.mu.Unlock()

		metrics.FavoritesToggles.WithLabelValues("removed").Inc()
		span.SetAttributes(attribute.String("favorites.action", "removed"))
		s.log.Infof(ctx, "favorite removed name=%s", name)
		return false
	}

	s.pending.Add(1)
	go s.fetchSnapshot(context.WithoutCancel(ctx), name, gen)

	metrics.FavoritesToggles.WithLabelValues("added").Inc()
	span.SetAttributes(attribute.String("favorites.action", "added"))
	s.log.Infof(ctx, "favorite added name=%s", name)
	return true
}

// persistFavorites — перезапись всего списка.
func (s *FavoritesStore) persistFavorites(ctx context.Context, list []string) {
	raw, err := json.Marshal(list)
	if err != nil {
		s.log.Errorf(ctx, "favorites marshal failed err=%v", err)
		return
	}
	if err := s.kv.Set(ctx, s.opts.FavoritesKey, string(raw)); err != nil {
		metrics.KVErrors.WithLabelValues("set").Inc()
		s.log.Errorf(ctx, "kv.Set favorites failed key=%s err=%v", s.opts.FavoritesKey, err)
	}
}

// fetchSnapshot — запрос карточки и запись снимка в хранилище и кэш.
// Результат отбрасывается, если имя успели убрать или переключить заново.
func (s *FavoritesStore) fetchSnapshot(ctx context.Context, name string, gen uint64) {
	defer s.pending.Done()

	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	p, err := s.lookup.Pokemon(fetchCtx, name)
	if err != nil {
		metrics.SnapshotFetches.WithLabelValues("failed").Inc()
		s.log.Warnf(ctx, "snapshot fetch failed name=%s err=%v", name, err)
		return
	}
	snapshot := domain.SnapshotOf(p)

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !s.current(name, gen) {
		metrics.SnapshotFetches.WithLabelValues("stale").Inc()
		s.log.Infof(ctx, "snapshot dropped as stale name=%s", name)
		return
	}

	key := s.snapshotKey(name)
	raw, err := json.Marshal(snapshot)
	if err == nil {
		if setErr := s.kv.Set(ctx, key, string(raw)); setErr != nil {
			metrics.KVErrors.WithLabelValues("set").Inc()
			s.log.Errorf(ctx, "kv.Set snapshot failed key=%s err=%v", key, setErr)
		}
	} else {
		s.log.Errorf(ctx, "snapshot marshal failed name=%s err=%v", name, err)
	}

	s.mu.Lock()
	s.cache[name] = snapshot
	s.mu.Unlock()

	metrics.SnapshotFetches.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "snapshot cached name=%s id=%d", name, snapshot.ID)
}

func (s *FavoritesStore) current(name string, gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[name] == gen && slices.Contains(s.favorites, name)
}

func (s *FavoritesStore) snapshotKey(name string) string {
	return s.opts.SnapshotPrefix + name
}

// Wait — дождаться завершения фоновых запросов снимков.
func (s *FavoritesStore) Wait() { s.pending.Wait() }

// Close — то же, что Wait; для единообразного завершения в bootstrap.
func (s *FavoritesStore) Close() error {
	s.pending.Wait()
	return nil
}
