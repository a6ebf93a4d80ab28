package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheBasics(t *testing.T) {
	t.Parallel()

	c, err := New(10)
	require.NoError(t, err)

	point := Query{Lo: 3, Hi: 3}
	rng := Query{Lo: 3, Hi: 3, Range: true}

	// Test cache miss
	_, hit := c.Get(point)
	assert.False(t, hit, "Expected cache miss for point query")

	c.Put(point, Result{Text: "c", Match: true})
	result, hit := c.Get(point)
	assert.True(t, hit, "Expected cache hit for point query")
	assert.Equal(t, Result{Text: "c", Match: true}, result)

	_, hit = c.Get(rng)
	assert.False(t, hit, "range and point queries are distinct keys")

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, Stats{Hits: 1, Misses: 2}, c.Stats())
}

func TestCachePurge(t *testing.T) {
	t.Parallel()

	c, err := New(10)
	require.NoError(t, err)

	assert.False(t, c.Purge(), "purging an empty cache is a no-op")

	for i := 0; i < 5; i++ {
		c.Put(Query{Lo: float64(i), Hi: float64(i)}, Result{Text: fmt.Sprint(i), Match: true})
	}
	assert.True(t, c.Purge())
	assert.Equal(t, 0, c.Len())

	_, hit := c.Get(Query{Lo: 1, Hi: 1})
	assert.False(t, hit)
	assert.Equal(t, uint64(1), c.Stats().Purges)
}

func TestCacheEviction(t *testing.T) {
	t.Parallel()

	c, err := New(16)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		c.Put(Query{Lo: float64(i), Hi: float64(i + 1), Range: true}, Result{Text: fmt.Sprint(i), Match: true})
	}
	assert.LessOrEqual(t, c.Len(), 16)

	// The most recent entry always survives.
	result, hit := c.Get(Query{Lo: 99, Hi: 100, Range: true})
	assert.True(t, hit)
	assert.Equal(t, "99", result.Text)
}

func TestCacheDisabled(t *testing.T) {
	t.Parallel()

	c, err := New(0)
	require.NoError(t, err)

	c.Put(Query{Lo: 1, Hi: 1}, Result{})
	_, hit := c.Get(Query{Lo: 1, Hi: 1})
	assert.False(t, hit)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Purge())
	assert.Equal(t, Stats{Misses: 1}, c.Stats())
}
