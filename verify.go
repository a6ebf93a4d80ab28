package bptree

import (
	"fmt"
)

// Verify walks the whole tree and checks its structural invariants:
//   - entries are sorted within every node and across the leaf level
//   - no node holds order or more entries, and none is empty
//   - every separator key equals the minimum key of its child's subtree
//   - every leaf sits exactly Height levels below the root
//   - the sibling chain visits the leaves in order and ends with nil
//   - the number of records equals Len
//
// The first violation found is returned wrapped around one of the Err*
// sentinels.
func (t *Tree) Verify() error {
	if t.height == 0 {
		root, ok := t.root.(*leafNode)
		if !ok {
			return fmt.Errorf("root at height 0: %w", ErrWrongShape)
		}
		if len(root.records) == 0 {
			if t.len != 0 {
				return fmt.Errorf("empty root with len %d: %w", t.len, ErrCount)
			}
			if root.next != nil {
				return fmt.Errorf("root leaf has a sibling: %w", ErrLeafChain)
			}
			return nil
		}
	}

	v := verifier{order: t.order}
	if _, err := v.walk(t.root, t.height, true); err != nil {
		return err
	}

	// The sibling chain must list exactly the leaves found by the walk.
	leaf := v.leaves[0]
	for i, want := range v.leaves {
		if leaf != want {
			return fmt.Errorf("leaf %d: chain diverges from tree order: %w", i, ErrLeafChain)
		}
		leaf = leaf.next
	}
	if leaf != nil {
		return fmt.Errorf("rightmost leaf has a sibling: %w", ErrLeafChain)
	}

	if v.records != t.len {
		return fmt.Errorf("found %d records, len is %d: %w", v.records, t.len, ErrCount)
	}
	return nil
}

type verifier struct {
	order   int
	leaves  []*leafNode
	records int
	last    float64
	started bool
}

// walk checks the subtree at n and returns its minimum key.
func (v *verifier) walk(n node, height int, root bool) (float64, error) {
	if height == 0 {
		leaf, ok := n.(*leafNode)
		if !ok {
			return 0, fmt.Errorf("branch at leaf level: %w", ErrHeight)
		}
		if err := v.checkCount(leaf, height); err != nil {
			return 0, err
		}
		return v.visitLeaf(leaf)
	}

	branch, ok := n.(*branchNode)
	if !ok {
		return 0, fmt.Errorf("leaf at height %d: %w", height, ErrHeight)
	}
	if err := v.checkCount(branch, height); err != nil {
		return 0, err
	}
	if root && branch.count() < 2 {
		return 0, fmt.Errorf("root branch with %d entries: %w", branch.count(), ErrWrongShape)
	}

	for i, e := range branch.entries {
		if i > 0 && e.key < branch.entries[i-1].key {
			return 0, fmt.Errorf("height %d entry %d: %w", height, i, ErrUnsorted)
		}
		lowest, err := v.walk(e.child, height-1, false)
		if err != nil {
			return 0, err
		}
		if lowest != e.key {
			return 0, fmt.Errorf("height %d entry %d: separator %v, child minimum %v: %w",
				height, i, e.key, lowest, ErrSeparator)
		}
	}
	return branch.entries[0].key, nil
}

func (v *verifier) checkCount(n node, height int) error {
	if n.count() == 0 {
		return fmt.Errorf("height %d: %w", height, ErrEmptyNode)
	}
	if n.count() >= v.order {
		return fmt.Errorf("height %d: %d entries with order %d: %w", height, n.count(), v.order, ErrOverfull)
	}
	return nil
}

func (v *verifier) visitLeaf(leaf *leafNode) (float64, error) {
	for i, r := range leaf.records {
		if v.started && r.key < v.last {
			return 0, fmt.Errorf("leaf %d record %d: key %v after %v: %w",
				len(v.leaves), i, r.key, v.last, ErrUnsorted)
		}
		v.last = r.key
		v.started = true
	}
	v.leaves = append(v.leaves, leaf)
	v.records += len(leaf.records)
	return leaf.firstKey(), nil
}
