package bptree

// ValueSet is the result of an exact-key lookup: distinct values in the
// order they were first met in the leaves. An empty set means no record has
// the key; it is never represented by a placeholder value.
type ValueSet []string

// Empty reports whether the lookup matched nothing.
func (s ValueSet) Empty() bool {
	return len(s) == 0
}

// Contains reports whether v is in the set.
func (s ValueSet) Contains(v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Pair is a key and one of its values.
type Pair struct {
	Key   float64
	Value string
}

// PairSet is the result of a range lookup: distinct pairs in key order.
type PairSet []Pair

// Empty reports whether the range matched nothing.
func (s PairSet) Empty() bool {
	return len(s) == 0
}

// Contains reports whether p is in the set.
func (s PairSet) Contains(p Pair) bool {
	for _, x := range s {
		if x == p {
			return true
		}
	}
	return false
}

// collector accumulates distinct items while preserving first-seen order.
type collector[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

func (c *collector[T]) add(item T) {
	if c.seen == nil {
		c.seen = make(map[T]struct{})
	}
	if _, ok := c.seen[item]; ok {
		return
	}
	c.seen[item] = struct{}{}
	c.items = append(c.items, item)
}
