package tq

import (
	"errors"
	"iter"

	"github.com/motoki317/tq/internal/list"
)

// slot is a key paired with its value. Slots live only in the recent and
// frequent segments; the ghost segment stores bare keys.
type slot[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed size 2Q cache.
// It keeps up to its size live entries, plus up to size/2 additional bare
// key instances on the ghost list.
//
// The zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	maxRecent   int
	maxFrequent int
	maxGhost    int

	// recent: front = most recently inserted, back = oldest.
	recent *list.List[slot[K, V]]
	// frequent: front = most recently used, back = least recently used.
	frequent *list.List[slot[K, V]]
	// ghost: front = most recently evicted from recent.
	ghost *list.List[K]

	// Key indexes into the segment lists. A key is present in at most one
	// of recentIdx and frequentIdx, and ghostIdx never overlaps either.
	recentIdx   map[K]*list.Element[slot[K, V]]
	frequentIdx map[K]*list.Element[slot[K, V]]
	ghostIdx    map[K]*list.Element[K]

	stats HitStats
}

// New creates a Cache which holds at most size live entries.
//
// By default a quarter of the cache (at least one slot) is reserved for
// entries seen only once, the rest for frequently used entries, and up to
// size/2 recently evicted keys are remembered on the ghost list. The split
// can be tuned with WithRecentRatio and WithGhostRatio.
func New[K comparable, V any](size int, options ...Option) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, errors.New("size needs to be greater than 0")
	}

	config := defaultConfig()
	for _, option := range options {
		option(&config)
	}
	if config.recentRatio < 0 || config.recentRatio > 1 {
		return nil, errors.New("recent ratio needs to be between 0 and 1")
	}
	if config.ghostRatio < 0 || config.ghostRatio > 1 {
		return nil, errors.New("ghost ratio needs to be between 0 and 1")
	}

	// Determine the segment sizes
	maxRecent := max(1, int(float64(size)*config.recentRatio))
	maxFrequent := size - maxRecent
	maxGhost := int(float64(size) * config.ghostRatio)

	return &Cache[K, V]{
		maxRecent:   maxRecent,
		maxFrequent: maxFrequent,
		maxGhost:    maxGhost,
		recent:      list.New[slot[K, V]](),
		frequent:    list.New[slot[K, V]](),
		ghost:       list.New[K](),
		recentIdx:   make(map[K]*list.Element[slot[K, V]], maxRecent),
		frequentIdx: make(map[K]*list.Element[slot[K, V]], maxFrequent),
		ghostIdx:    make(map[K]*list.Element[K], maxGhost),
	}, nil
}

// Contains reports whether the cache holds a live entry for key.
// It does not update segment order.
func (c *Cache[K, V]) Contains(key K) bool {
	if _, ok := c.recentIdx[key]; ok {
		return true
	}
	_, ok := c.frequentIdx[key]
	return ok
}

// Peek returns the value for key without updating segment order.
// Use it for reads that must not disturb recency, such as diagnostics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if e, ok := c.recentIdx[key]; ok {
		return e.Value.value, true
	}
	if e, ok := c.frequentIdx[key]; ok {
		return e.Value.value, true
	}
	var zero V
	return zero, false
}

// Get looks up a key's value from the cache.
// A hit in the frequent segment moves the entry to the most recently used
// position. A hit in the recent segment leaves its insertion order
// untouched: promotion into frequent happens only through the ghost list,
// not through repeated reads.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	ref, ok := c.GetRef(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *ref, true
}

// GetRef is like Get, but returns a pointer to the stored value so the
// caller can mutate it in place. The pointer stays valid until the entry is
// evicted or deleted.
func (c *Cache[K, V]) GetRef(key K) (*V, bool) {
	if e, ok := c.recentIdx[key]; ok {
		c.stats.RecentHits++
		return &e.Value.value, true
	}
	if e, ok := c.frequentIdx[key]; ok {
		c.frequent.MoveToFront(e)
		c.stats.FrequentHits++
		return &e.Value.value, true
	}
	c.stats.Misses++
	return nil, false
}

// Set adds a value to the cache. If the key was already present, its value
// is replaced in place and the previous value is returned. A single
// classification decides between replace and insert; the key is never
// searched twice.
func (c *Cache[K, V]) Set(key K, value V) (prev V, replaced bool) {
	switch e := c.Entry(key).(type) {
	case *OccupiedEntry[K, V]:
		return e.Set(value), true
	case *VacantEntry[K, V]:
		e.Insert(value)
	}
	return prev, false
}

// Delete removes the provided key from the cache and returns its value.
// Unlike a capacity eviction, an explicit delete never records the key on
// the ghost list.
func (c *Cache[K, V]) Delete(key K) (V, bool) {
	if e, ok := c.recentIdx[key]; ok {
		delete(c.recentIdx, key)
		return c.recent.Remove(e).value, true
	}
	if e, ok := c.frequentIdx[key]; ok {
		delete(c.frequentIdx, key)
		return c.frequent.Remove(e).value, true
	}
	var zero V
	return zero, false
}

// DeleteIf deletes all entries that match the predicate.
// Like Delete, it never records keys on the ghost list.
func (c *Cache[K, V]) DeleteIf(predicate func(key K, value V) bool) {
	deleteIf(c.frequent, c.frequentIdx, predicate)
	deleteIf(c.recent, c.recentIdx, predicate)
}

func deleteIf[K comparable, V any](
	l *list.List[slot[K, V]],
	idx map[K]*list.Element[slot[K, V]],
	predicate func(key K, value V) bool,
) {
	for e := l.Front(); e != nil; {
		next := e.Next()
		if predicate(e.Value.key, e.Value.value) {
			delete(idx, e.Value.key)
			l.Remove(e)
		}
		e = next
	}
}

// Purge removes all values and ghost keys from the cache.
// Capacities are retained for reuse.
func (c *Cache[K, V]) Purge() {
	c.recent.Init()
	c.frequent.Init()
	c.ghost.Init()
	clear(c.recentIdx)
	clear(c.frequentIdx)
	clear(c.ghostIdx)
}

// Len returns the number of live entries. Ghost keys are not counted.
func (c *Cache[K, V]) Len() int {
	return c.recent.Len() + c.frequent.Len()
}

// IsEmpty reports whether the cache holds no live entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// All returns an iterator over all key-value pairs currently in the cache,
// recent entries first (newest to oldest), then frequent entries (most to
// least recently used). Ghost keys are never yielded. The iterator does not
// update segment order and may be ranged over multiple times.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := c.recent.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.key, e.Value.value) {
				return
			}
		}
		for e := c.frequent.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.key, e.Value.value) {
				return
			}
		}
	}
}

// evictRecent drops the oldest recent entry and records its key on the
// ghost list, aging out the oldest ghost key first if needed.
func (c *Cache[K, V]) evictRecent() {
	back := c.recent.Back()
	if back == nil {
		return
	}
	s := c.recent.Remove(back)
	delete(c.recentIdx, s.key)
	if c.ghost.Len()+1 > c.maxGhost {
		if old := c.ghost.Back(); old != nil {
			delete(c.ghostIdx, c.ghost.Remove(old))
		}
	}
	c.ghostIdx[s.key] = c.ghost.PushFront(s.key)
	c.stats.Evictions++
}

// evictFrequent drops the least recently used frequent entry. It is
// discarded for good; the ghost list only records evictions from recent.
func (c *Cache[K, V]) evictFrequent() {
	back := c.frequent.Back()
	if back == nil {
		return
	}
	s := c.frequent.Remove(back)
	delete(c.frequentIdx, s.key)
	c.stats.Evictions++
}
