package bptree

import "math"

// Cursor provides ordered forward iteration over the records of a Tree by
// walking the leaf sibling chain.
//
// A cursor is bound to the tree's state when it is positioned. Any Insert or
// Reset afterwards invalidates it; reposition with First or Seek.
type Cursor struct {
	tree    *Tree
	leaf    *leafNode // Current leaf
	index   int       // Position within leaf
	version uint64    // Tree version the position was taken at
	valid   bool
}

// Cursor creates a new cursor. It starts invalid; call First or Seek to
// position it.
func (t *Tree) Cursor() *Cursor {
	return &Cursor{tree: t}
}

// First positions the cursor at the smallest record. Returns false if the
// tree is empty.
func (c *Cursor) First() bool {
	n := c.tree.root
	for h := c.tree.height; h > 0; h-- {
		n = n.(*branchNode).entries[0].child
	}
	return c.position(n.(*leafNode), 0)
}

// Seek positions the cursor at the first record whose key is >= key.
// Among equal keys it lands on the earliest inserted one. Returns false if
// no such record exists.
func (c *Cursor) Seek(key float64) bool {
	if math.IsNaN(key) {
		c.valid = false
		return false
	}

	leaf := c.tree.seekLeaf(key)
	i := 0
	for i < len(leaf.records) && leaf.records[i].key < key {
		i++
	}
	if !c.position(leaf, i) {
		return false
	}

	// The seek leaf can end before key; skip forward to the first match.
	for c.valid && c.Key() < key {
		c.Next()
	}
	return c.valid
}

// Next advances to the next record in key order. Returns false when the
// cursor moves past the last record or has been invalidated.
func (c *Cursor) Next() bool {
	if !c.Valid() {
		return false
	}
	return c.position(c.leaf, c.index+1)
}

// Valid reports whether the cursor is positioned on a record and the tree
// has not been modified since.
func (c *Cursor) Valid() bool {
	return c.valid && c.version == c.tree.version
}

// Key returns the key at the cursor. Only meaningful while Valid.
func (c *Cursor) Key() float64 {
	if !c.Valid() {
		return 0
	}
	return c.leaf.records[c.index].key
}

// Value returns the value at the cursor. Only meaningful while Valid.
func (c *Cursor) Value() string {
	if !c.Valid() {
		return ""
	}
	return c.leaf.records[c.index].val
}

// position moves to record i of leaf, following the sibling chain when i is
// past the end of the leaf.
func (c *Cursor) position(leaf *leafNode, i int) bool {
	c.version = c.tree.version
	for leaf != nil && i >= len(leaf.records) {
		leaf = leaf.next
		i = 0
	}
	if leaf == nil {
		c.leaf = nil
		c.index = 0
		c.valid = false
		return false
	}

	c.leaf = leaf
	c.index = i
	c.valid = true
	return true
}
