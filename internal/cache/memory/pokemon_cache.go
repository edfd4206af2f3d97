package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/internal/ports"
	"github.com/Gunvolt24/pokedex/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу PokemonCache.
var _ ports.PokemonCache = (*LRUCacheTTL)(nil)

// entry — одна карточка; доступна по имени и по строковому id.
type entry struct {
	keys      []string
	pokemon   *domain.PokemonDetail
	expiresAt time.Time
}

// LRUCacheTTL — LRU-кэш карточек с TTL (скользящим: продлевается при попадании).
// Ёмкость считается в карточках, а не в ключах.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, key string) (*domain.PokemonDetail, bool) {
	key = domain.NormalizeName(key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return clonePokemon(ent.pokemon), true
}

// Set — сохраняет карточку под нормализованным именем и под id.
func (c *LRUCacheTTL) Set(_ context.Context, p *domain.PokemonDetail) error {
	if p == nil || p.ID <= 0 || p.Name == "" {
		return nil
	}
	keys := []string{domain.NormalizeName(p.Name), domain.NormalizeID(p.ID)}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	// старые записи под любым из ключей заменяются одной новой
	for _, k := range keys {
		if elem, ok := c.index[k]; ok {
			c.removeElement(elem)
		}
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		keys:      keys,
		pokemon:   clonePokemon(p),
		expiresAt: c.expiryFrom(now),
	})
	for _, k := range keys {
		c.index[k] = elem
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Len — число карточек в кэше.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
