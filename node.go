package bptree

// record is a leaf entry pairing a key with a stored value.
type record struct {
	key float64
	val string
}

// separator is a branch entry. key is the minimum key reachable in child.
type separator struct {
	key   float64
	child node
}

// node is either a *leafNode or a *branchNode.
type node interface {
	// count returns the number of entries held by the node
	count() int
	// firstKey returns the key of the first entry
	firstKey() float64
	// split moves the upper half of the entries into a new right sibling
	// and returns it. Only called when count() == order.
	split(order int) node
}

// leafNode holds record entries. next is the leaf immediately to the right
// in key order; it is a traversal link only, the parent branch owns the node.
type leafNode struct {
	records []record
	next    *leafNode
}

// branchNode holds separator entries, each owning its child.
type branchNode struct {
	entries []separator
}

func newLeaf(order int) *leafNode {
	return &leafNode{records: make([]record, 0, order)}
}

func newBranch(order int) *branchNode {
	return &branchNode{entries: make([]separator, 0, order)}
}

func (n *leafNode) count() int {
	return len(n.records)
}

func (n *leafNode) firstKey() float64 {
	return n.records[0].key
}

func (n *leafNode) lastKey() float64 {
	return n.records[len(n.records)-1].key
}

// insertPosition returns the first position whose key is strictly greater
// than key, so equal keys keep arrival order.
func (n *leafNode) insertPosition(key float64) int {
	i := 0
	for i < len(n.records) && n.records[i].key <= key {
		i++
	}
	return i
}

func (n *leafNode) insertAt(i int, r record) {
	n.records = append(n.records, record{})
	copy(n.records[i+1:], n.records[i:])
	n.records[i] = r
}

// split keeps the first order/2 records and splices the new right leaf into
// the sibling chain.
func (n *leafNode) split(order int) node {
	mid := order / 2

	right := newLeaf(order)
	right.records = append(right.records, n.records[mid:]...)

	clear(n.records[mid:])
	n.records = n.records[:mid]

	right.next = n.next
	n.next = right
	return right
}

func (n *branchNode) count() int {
	return len(n.entries)
}

func (n *branchNode) firstKey() float64 {
	return n.entries[0].key
}

// childIndex selects the branch to descend into for key: the smallest i
// such that i+1 is out of range or entries[i+1].key > key.
func (n *branchNode) childIndex(key float64) int {
	i := 0
	for i+1 < len(n.entries) && n.entries[i+1].key <= key {
		i++
	}
	return i
}

// seekIndex is childIndex backed off over separators equal to key. Records
// equal to a separator key may also sit at the tail of the left neighbour
// after a leaf split, so lookups must start there.
func (n *branchNode) seekIndex(key float64) int {
	i := n.childIndex(key)
	for i > 0 && n.entries[i].key == key {
		i--
	}
	return i
}

func (n *branchNode) insertAt(i int, s separator) {
	n.entries = append(n.entries, separator{})
	copy(n.entries[i+1:], n.entries[i:])
	n.entries[i] = s
}

func (n *branchNode) split(order int) node {
	mid := order / 2

	right := newBranch(order)
	right.entries = append(right.entries, n.entries[mid:]...)

	clear(n.entries[mid:])
	n.entries = n.entries[:mid]
	return right
}
