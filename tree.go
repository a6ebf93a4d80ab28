// Package bptree implements an in-memory B+ tree over float64 keys with
// string values. A key may hold any number of values; lookups return them as
// a set.
//
// A Tree is not safe for concurrent use. Callers that share one between
// goroutines must serialize every call, reads included.
package bptree

import (
	"fmt"
	"math"
)

// Tree is an in-memory B+ tree of order m: every node holds at most m-1
// entries once an insertion completes. Records live only in leaves, which
// are linked left to right for range scans.
type Tree struct {
	order  int
	root   node
	height int // number of branch levels above the leaves
	len    int

	// version is bumped by every mutation so cursors can detect that the
	// leaves they point at may have been split underneath them.
	version uint64

	logger Logger
}

// New creates an empty tree. Orders below MinOrder are clamped to it and odd
// orders are rounded up to the next even value.
func New(order int, opts ...Option) *Tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order = NormalizeOrder(order)
	return &Tree{
		order:  order,
		root:   newLeaf(order),
		logger: o.logger,
	}
}

// Order returns the normalized order of the tree.
func (t *Tree) Order() int {
	return t.order
}

// Height returns the number of branch levels above the leaf level. It is 0
// while the root is a leaf.
func (t *Tree) Height() int {
	return t.height
}

// Len returns the number of records stored, duplicates included.
func (t *Tree) Len() int {
	return t.len
}

// Reset drops every record, keeping the order.
func (t *Tree) Reset() {
	t.root = newLeaf(t.order)
	t.height = 0
	t.len = 0
	t.version++
}

// Insert adds a record. Existing records with the same key are kept; the new
// one is placed after them. Insert panics if key is NaN, since NaN has no
// position in the key order.
func (t *Tree) Insert(key float64, value string) {
	if math.IsNaN(key) {
		panic(fmt.Sprintf("bptree: insert of NaN key with value %q", value))
	}

	t.version++
	t.len++

	right := t.insert(t.root, record{key: key, val: value}, t.height)
	if right == nil {
		return
	}

	// The split reached the root: grow a level.
	root := newBranch(t.order)
	root.entries = append(root.entries,
		separator{key: t.root.firstKey(), child: t.root},
		separator{key: right.firstKey(), child: right},
	)
	t.root = root
	t.height++

	t.logger.Info("root split", "height", t.height, "len", t.len, "order", t.order)
}

// insert places r in the subtree rooted at n, which sits height levels above
// the leaves. It returns the new right sibling of n if n had to split, or nil.
func (t *Tree) insert(n node, r record, height int) node {
	if height == 0 {
		leaf := n.(*leafNode)
		leaf.insertAt(leaf.insertPosition(r.key), r)
		return t.splitIfFull(leaf)
	}

	branch := n.(*branchNode)
	i := branch.childIndex(r.key)
	if i == 0 && r.key < branch.entries[0].key {
		// New minimum along the leftmost path.
		branch.entries[0].key = r.key
	}

	right := t.insert(branch.entries[i].child, r, height-1)
	if right == nil {
		return nil
	}

	branch.insertAt(i+1, separator{key: right.firstKey(), child: right})
	return t.splitIfFull(branch)
}

func (t *Tree) splitIfFull(n node) node {
	if n.count() < t.order {
		return nil
	}
	return n.split(t.order)
}
