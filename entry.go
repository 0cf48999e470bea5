package tq

import (
	"github.com/motoki317/tq/internal/list"
)

// Entry is a view into a single cache slot, implemented by exactly two
// types: *OccupiedEntry if the key holds a live entry, *VacantEntry
// otherwise. Callers type switch on it for slot-specific operations, or use
// OrInsert / OrInsertWith directly.
//
// An Entry borrows the cache it came from: no other method of the cache may
// be called between obtaining the view and its last use. A view is spent
// once it removes or inserts its slot.
type Entry[K comparable, V any] interface {
	// Key returns the key this view was obtained for.
	Key() K
	// OrInsert inserts the given value if the slot is vacant, and returns a
	// pointer to the stored value.
	OrInsert(value V) *V
	// OrInsertWith is like OrInsert, but computes the value only if the
	// slot is vacant.
	OrInsertWith(fn func() V) *V
}

var (
	_ Entry[int, int] = (*OccupiedEntry[int, int])(nil)
	_ Entry[int, int] = (*VacantEntry[int, int])(nil)
)

// PeekEntry classifies the key's slot without updating segment order.
// Use it to inspect-or-default when the read must not disturb LRU order.
func (c *Cache[K, V]) PeekEntry(key K) Entry[K, V] {
	if e, ok := c.frequentIdx[key]; ok {
		return &OccupiedEntry[K, V]{cache: c, elem: e, frequent: true}
	}
	if e, ok := c.recentIdx[key]; ok {
		return &OccupiedEntry[K, V]{cache: c, elem: e}
	}
	if g, ok := c.ghostIdx[key]; ok {
		return &VacantEntry[K, V]{cache: c, key: key, ghost: g}
	}
	return &VacantEntry[K, V]{cache: c, key: key}
}

// Entry classifies the key's slot for in-place manipulation. A hit in the
// frequent segment is moved to the most recently used position before the
// view is returned, so any access through Entry counts as a use, exactly
// like Get.
func (c *Cache[K, V]) Entry(key K) Entry[K, V] {
	entry := c.PeekEntry(key)
	if o, ok := entry.(*OccupiedEntry[K, V]); ok && o.frequent {
		c.frequent.MoveToFront(o.elem)
	}
	return entry
}

// OccupiedEntry is a view into a live cache slot.
type OccupiedEntry[K comparable, V any] struct {
	cache    *Cache[K, V]
	elem     *list.Element[slot[K, V]]
	frequent bool
}

// Key returns the key of the slot.
func (e *OccupiedEntry[K, V]) Key() K {
	return e.elem.Value.key
}

// Get returns the value of the slot.
func (e *OccupiedEntry[K, V]) Get() V {
	return e.elem.Value.value
}

// Ref returns a pointer to the value for in-place mutation.
func (e *OccupiedEntry[K, V]) Ref() *V {
	return &e.elem.Value.value
}

// Set replaces the value of the slot and returns the previous value.
// The slot keeps its segment and position.
func (e *OccupiedEntry[K, V]) Set(value V) V {
	old := e.elem.Value.value
	e.elem.Value.value = value
	return old
}

// Remove deletes the slot from its segment and returns the key and value.
// The ghost list is not touched. The view is spent afterwards.
func (e *OccupiedEntry[K, V]) Remove() (K, V) {
	c := e.cache
	s := e.elem.Value
	if e.frequent {
		c.frequent.Remove(e.elem)
		delete(c.frequentIdx, s.key)
	} else {
		c.recent.Remove(e.elem)
		delete(c.recentIdx, s.key)
	}
	return s.key, s.value
}

// OrInsert returns a pointer to the existing value; the slot is occupied,
// so nothing is inserted.
func (e *OccupiedEntry[K, V]) OrInsert(V) *V {
	return e.Ref()
}

// OrInsertWith returns a pointer to the existing value without calling fn.
func (e *OccupiedEntry[K, V]) OrInsertWith(func() V) *V {
	return e.Ref()
}

// VacantEntry is a view into a cache slot that holds no live entry.
type VacantEntry[K comparable, V any] struct {
	cache *Cache[K, V]
	key   K
	// ghost is non-nil if the key is remembered by the ghost list.
	ghost *list.Element[K]
}

// Key returns the key that would be used when inserting through the view.
func (e *VacantEntry[K, V]) Key() K {
	return e.key
}

// Insert stores value under the view's key and returns a pointer to the
// stored value. The view is spent afterwards.
//
// If the key was remembered by the ghost list, this is its second touch
// within the ghost window: the key is removed from ghost and the new entry
// goes straight to the front of frequent, evicting the least recently used
// frequent entry if needed. Otherwise the entry goes to the front of
// recent, evicting the oldest recent entry into ghost if needed.
func (e *VacantEntry[K, V]) Insert(value V) *V {
	c := e.cache
	if e.ghost != nil {
		c.ghost.Remove(e.ghost)
		delete(c.ghostIdx, e.key)
		if c.frequent.Len()+1 > c.maxFrequent {
			c.evictFrequent()
		}
		el := c.frequent.PushFront(slot[K, V]{key: e.key, value: value})
		c.frequentIdx[e.key] = el
		c.stats.Promotions++
		return &el.Value.value
	}

	if c.recent.Len()+1 > c.maxRecent {
		c.evictRecent()
	}
	el := c.recent.PushFront(slot[K, V]{key: e.key, value: value})
	c.recentIdx[e.key] = el
	return &el.Value.value
}

// OrInsert inserts the given value and returns a pointer to it.
func (e *VacantEntry[K, V]) OrInsert(value V) *V {
	return e.Insert(value)
}

// OrInsertWith computes a value with fn, inserts it and returns a pointer
// to it.
func (e *VacantEntry[K, V]) OrInsertWith(fn func() V) *V {
	return e.Insert(fn())
}
