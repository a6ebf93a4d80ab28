package bptree

import "math"

// Lookup returns every distinct value stored under key. The result is empty
// when no record has the key.
func (t *Tree) Lookup(key float64) ValueSet {
	if math.IsNaN(key) {
		return nil
	}

	var values collector[string]
	for leaf := t.seekLeaf(key); leaf != nil; leaf = leaf.next {
		for _, r := range leaf.records {
			if r.key == key {
				values.add(r.val)
			}
		}

		// Equal keys may continue in the next leaf only while this one
		// ends at or below key.
		if len(leaf.records) == 0 || leaf.lastKey() > key {
			break
		}
	}
	return values.items
}

// RangeLookup returns every distinct (key, value) pair with lo <= key <= hi,
// ordered by key. The result is empty when nothing matches or lo > hi.
func (t *Tree) RangeLookup(lo, hi float64) PairSet {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil
	}

	var pairs collector[Pair]
	c := t.Cursor()
	for ok := c.Seek(lo); ok && c.Key() <= hi; ok = c.Next() {
		pairs.add(Pair{Key: c.Key(), Value: c.Value()})
	}
	return pairs.items
}

// seekLeaf descends from the root to the leftmost leaf that can hold key.
func (t *Tree) seekLeaf(key float64) *leafNode {
	n := t.root
	for h := t.height; h > 0; h-- {
		branch := n.(*branchNode)
		n = branch.entries[branch.seekIndex(key)].child
	}
	return n.(*leafNode)
}
