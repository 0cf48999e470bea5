package tq

import (
	"fmt"
)

type HitStats struct {
	// RecentHits is the number of promoting reads served from the recent
	// segment.
	RecentHits uint64
	// FrequentHits is the number of promoting reads served from the
	// frequent segment.
	FrequentHits uint64
	// Misses is the number of promoting reads that found nothing.
	Misses uint64
	// Promotions is the number of inserts that hit the ghost list and went
	// straight to the frequent segment.
	Promotions uint64
	// Evictions is the number of entries dropped to make room, from either
	// segment.
	Evictions uint64
}

type SizeStats struct {
	// Size is the current number of live entries in the cache.
	Size int
	// Capacity is the maximum number of live entries. Ghost keys are not
	// part of it.
	Capacity int
}

// Stats represents cache metrics.
type Stats struct {
	HitStats
	SizeStats
}

// String returns formatted string.
func (s Stats) String() string {
	return fmt.Sprintf(
		"RecentHits: %d, FrequentHits: %d, Misses: %d, Promotions: %d, Evictions: %d, Hit Ratio: %f, Size: %d, Capacity: %d",
		s.RecentHits, s.FrequentHits, s.Misses, s.Promotions, s.Evictions,
		s.HitRatio(),
		s.Size, s.Capacity,
	)
}

// HitRatio returns the ratio of promoting reads served from the cache.
func (s Stats) HitRatio() float64 {
	total := s.RecentHits + s.FrequentHits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.RecentHits+s.FrequentHits) / float64(total)
}

// Stats returns cache metrics.
// Only promoting reads (Get and GetRef) count towards hits and misses;
// Peek, Contains and PeekEntry are non-perturbing by definition and are not
// recorded. It is useful for monitoring performance and tuning the cache
// size and segment split.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		HitStats: c.stats,
		SizeStats: SizeStats{
			Size:     c.Len(),
			Capacity: c.maxRecent + c.maxFrequent,
		},
	}
}
