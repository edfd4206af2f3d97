package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/pokedex/internal/domain"
	"github.com/Gunvolt24/pokedex/pkg/metrics"
)

// evictLRU — удаляет наименее используемую карточку.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// removeElement — удаляет элемент из списка и все его ключи из индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		for _, k := range ent.keys {
			if c.index[k] == elem {
				delete(c.index, k)
			}
		}
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			continue
		}
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(c.ll.Len()))
			continue
		}
		return
	}
}

// clonePokemon — копия карточки, чтобы внешние изменения
// не отражались на данных внутри кэша.
func clonePokemon(p *domain.PokemonDetail) *domain.PokemonDetail {
	if p == nil {
		return nil
	}
	cloned := *p
	if p.Sprites != nil {
		cloned.Sprites = domain.SnapshotOf(p).Sprites
	}
	cloned.Types = append([]domain.TypeSlot(nil), p.Types...)
	cloned.Stats = append([]domain.StatEntry(nil), p.Stats...)
	cloned.Moves = append([]domain.MoveEntry(nil), p.Moves...)
	cloned.Abilities = append([]domain.AbilityEntry(nil), p.Abilities...)
	return &cloned
}
