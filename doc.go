// Package tq provides a generic 2Q cache.
//
// 2Q is an enhancement over the standard LRU cache in that it tracks
// recently and frequently used entries separately. A burst of accesses to
// many new keys ("scan pollution") only churns the recent segment and cannot
// evict entries that are genuinely popular. The policy follows the paper
// "2Q: A Low Overhead High-Performance Buffer Management Replacement
// Algorithm" (http://www.vldb.org/conf/1994/P439.PDF).
//
// The cache is split into three segments:
//
//   - recent holds entries seen once, in insertion order. Reads do not
//     reorder it.
//   - frequent holds entries confirmed by a second touch, in LRU order.
//   - ghost holds bare keys recently evicted from recent, to detect that
//     second touch. Ghost keys carry no values and do not count towards Len.
//
// New entries start in recent. When recent overflows, the oldest entry is
// dropped and its key is recorded in ghost. Inserting a key that is still
// remembered by ghost places it directly at the front of frequent.
//
// Cache is not safe for concurrent use; wrap it with your own lock if it is
// shared between goroutines. Entry views additionally assume exclusive
// access: between obtaining a view via Cache.Entry or Cache.PeekEntry and
// its last use, no other method of the same cache may be called.
package tq
