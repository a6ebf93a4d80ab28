package bptree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oracle is a brute-force model of the tree: an ordered set of distinct
// (key, value) pairs.
type oracle struct {
	pairs *btree.BTreeG[Pair]
}

func newOracle() *oracle {
	return &oracle{pairs: btree.NewG[Pair](8, func(a, b Pair) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Value < b.Value
	})}
}

func (o *oracle) insert(key float64, value string) {
	o.pairs.ReplaceOrInsert(Pair{Key: key, Value: value})
}

func (o *oracle) lookup(key float64) map[string]struct{} {
	values := make(map[string]struct{})
	o.pairs.AscendGreaterOrEqual(Pair{Key: key}, func(p Pair) bool {
		if p.Key != key {
			return false
		}
		values[p.Value] = struct{}{}
		return true
	})
	return values
}

func (o *oracle) rangeLookup(lo, hi float64) []Pair {
	var pairs []Pair
	if lo > hi {
		return pairs
	}
	o.pairs.AscendGreaterOrEqual(Pair{Key: lo}, func(p Pair) bool {
		if p.Key > hi {
			return false
		}
		pairs = append(pairs, p)
		return true
	})
	return pairs
}

func asSet(values ValueSet) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func TestPropertiesAgainstOracle(t *testing.T) {
	tests := []struct {
		name    string
		order   int
		inserts int
		keys    int // size of the key space, small values force duplicates
		values  int
	}{
		{name: "order4_sparse", order: 4, inserts: 2000, keys: 100000, values: 1000},
		{name: "order4_dense_duplicates", order: 4, inserts: 2000, keys: 40, values: 5},
		{name: "order5_dense_duplicates", order: 5, inserts: 1500, keys: 25, values: 3},
		{name: "order16_mixed", order: 16, inserts: 3000, keys: 500, values: 20},
		{name: "order64_single_key", order: 64, inserts: 500, keys: 1, values: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(len(tt.name))))
			tree := New(tt.order)
			model := newOracle()

			height := 0
			for i := 0; i < tt.inserts; i++ {
				key := float64(rng.Intn(tt.keys)) / 2
				value := fmt.Sprintf("v%d", rng.Intn(tt.values))
				tree.Insert(key, value)
				model.insert(key, value)

				require.GreaterOrEqual(t, tree.Height(), height, "height decreased at insert %d", i)
				height = tree.Height()
				if i%97 == 0 {
					require.NoError(t, tree.Verify(), "invariants broken at insert %d", i)
				}
			}
			require.NoError(t, tree.Verify())
			assert.Equal(t, tt.inserts, tree.Len())

			// Sorted leaves.
			c := tree.Cursor()
			prev, n := 0.0, 0
			for ok := c.First(); ok; ok = c.Next() {
				if n > 0 {
					require.LessOrEqual(t, prev, c.Key())
				}
				prev = c.Key()
				n++
			}
			assert.Equal(t, tt.inserts, n)

			// Insert/lookup agreement, set semantics, and the no-match contract.
			for k := -1; k <= tt.keys; k++ {
				key := float64(k) / 2
				got := tree.Lookup(key)
				assert.Len(t, asSet(got), len(got), "lookup(%v) returned duplicates", key)
				assert.Equal(t, model.lookup(key), asSet(got), "lookup(%v)", key)
			}
			assert.True(t, tree.Lookup(0.25).Empty())

			// Range correctness.
			for i := 0; i < 200; i++ {
				lo := float64(rng.Intn(tt.keys+2)-1) / 2
				hi := lo + float64(rng.Intn(tt.keys/4+2))/2
				if i%10 == 0 {
					lo, hi = hi, lo
				}
				got := tree.RangeLookup(lo, hi)
				want := model.rangeLookup(lo, hi)
				assert.ElementsMatch(t, want, []Pair(got), "rangeLookup(%v, %v)", lo, hi)
			}
		})
	}
}
