// Package cache implements a bounded LRU of rendered search results. The
// driver purges it whenever the tree changes, so an entry is only served
// while the tree is exactly as it was when the entry was stored.
package cache

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
)

// Query identifies a search. Point searches have Lo == Hi and Range false.
type Query struct {
	Lo, Hi float64
	Range  bool
}

// Result is a rendered search result. Match is false when the search found
// nothing, in which case Text is empty.
type Result struct {
	Text  string
	Match bool
}

// Cache maps queries to their rendered result. It is not safe for
// concurrent use. A Cache with capacity 0 stores nothing.
type Cache struct {
	lru *freelru.LRU[Query, Result]

	// Stats
	hits   uint64
	misses uint64
	purges uint64
}

// New creates a cache holding up to capacity results.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return &Cache{}, nil
	}
	size := uint32(math.MaxUint32)
	if uint64(capacity) < math.MaxUint32 {
		size = uint32(capacity)
	}

	lru, err := freelru.New[Query, Result](size, hashQuery)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: lru}, nil
}

func hashQuery(q Query) uint32 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(q.Lo))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(q.Hi))
	if q.Range {
		buf[16] = 1
	}
	return uint32(xxhash.Sum64(buf[:]))
}

// Get returns the stored result for q.
func (c *Cache) Get(q Query) (Result, bool) {
	if c.lru == nil {
		c.misses++
		return Result{}, false
	}
	result, ok := c.lru.Get(q)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

// Put stores the result for q, evicting the least recently used entry when
// full.
func (c *Cache) Put(q Query, result Result) {
	if c.lru == nil {
		return
	}
	c.lru.Add(q, result)
}

// Purge drops every entry. It reports whether anything was dropped.
func (c *Cache) Purge() bool {
	if c.lru == nil || c.lru.Len() == 0 {
		return false
	}
	c.lru.Purge()
	c.purges++
	return true
}

// Len returns the number of stored results.
func (c *Cache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

type Stats struct {
	Hits   uint64
	Misses uint64
	Purges uint64
}

// Stats returns cache statistics
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits,
		Misses: c.misses,
		Purges: c.purges,
	}
}
