package ordertree

import (
	"github.com/holiman/uint256"
)

// Tree is an order-statistics red-black tree keyed by Address and
// ordered by each resident node's Payload.Balance (ties broken by
// insertion order). It owns all node storage.
//
// The zero value is not usable; construct with New.
type Tree struct {
	root, nilNode *node

	size         uint64
	totalBalance *uint256.Int

	// nextSeq is the insertion sequence counter handed out to each new
	// node so that equal-balance ties route right (FIFO: the next
	// insert sorts after, never before, an existing equal balance).
	nextSeq uint64

	// index holds exactly the tree-resident addresses (invariant 3/4
	// from spec.md §3: tree residency is membership in this map, not
	// in payloads).
	index map[Address]*node

	// payloads holds every address ever passed to Insert, regardless
	// of current residency — the registry's "registered but inactive"
	// bookkeeping lives here, not in the tree structure itself.
	payloads map[Address]Payload
}

// New returns an empty Tree.
func New() *Tree {
	t := &Tree{
		totalBalance: uint256.NewInt(0),
		index:        make(map[Address]*node),
		payloads:     make(map[Address]Payload),
	}
	t.nilNode = &node{color: Black}
	t.nilNode.parent = t.nilNode
	t.nilNode.left = t.nilNode
	t.nilNode.right = t.nilNode
	t.root = t.nilNode
	return t
}

// Count returns the number of tree-resident addresses. O(1).
func (t *Tree) Count() uint64 {
	return t.size
}

// TotalBalance returns the sum of the balances of all tree-resident
// addresses. The returned value is a copy; mutating it does not
// affect the tree. O(1).
func (t *Tree) TotalBalance() *uint256.Int {
	return new(uint256.Int).Set(t.totalBalance)
}

// IsSentinel reports whether id is the reserved "no key" value. Pure,
// no allocation.
func (t *Tree) IsSentinel(id Address) bool {
	return id == sentinelAddress
}

// isNil reports whether n is the tree's sentinel nil node.
func (t *Tree) isNil(n *node) bool {
	return n == t.nilNode
}

// min walks left from n to the smallest-keyed node in n's subtree.
func (t *Tree) min(n *node) *node {
	for !t.isNil(n.left) {
		n = n.left
	}
	return n
}

// max walks right from n to the largest-keyed node in n's subtree.
func (t *Tree) max(n *node) *node {
	for !t.isNil(n.right) {
		n = n.right
	}
	return n
}

// successorNode returns the in-order successor of n, or nilNode if n
// is the maximum.
func (t *Tree) successorNode(n *node) *node {
	if !t.isNil(n.right) {
		return t.min(n.right)
	}
	p := n.parent
	for !t.isNil(p) && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessorNode returns the in-order predecessor of n, or nilNode if
// n is the minimum.
func (t *Tree) predecessorNode(n *node) *node {
	if !t.isNil(n.left) {
		return t.max(n.left)
	}
	p := n.parent
	for !t.isNil(p) && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v, re-parenting v but leaving u's own child pointers untouched
// (the caller is expected to be mid-deletion and discard u).
func (t *Tree) transplant(u, v *node) {
	switch {
	case t.isNil(u.parent):
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// rotateLeft performs the textbook CLRS left rotation around x,
// promoting x's right child into x's position.
func (t *Tree) rotateLeft(x *node) {
	y := x.right
	x.right = y.left
	if !t.isNil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case t.isNil(x.parent):
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight performs the textbook CLRS right rotation around x,
// promoting x's left child into x's position.
func (t *Tree) rotateRight(x *node) {
	y := x.left
	x.left = y.right
	if !t.isNil(y.right) {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case t.isNil(x.parent):
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertRaw descends from the root to find the leaf position for n
// (ordered by n's own payload balance, tie-broken by insertion
// sequence) and links it in, without touching color or running any
// fixup. n.seq must already be assigned and distinct from every other
// resident node's, so the comparison is a strict total order: an
// equal balance always routes right of whatever is already resident.
func (t *Tree) insertRaw(n *node) {
	parent := t.nilNode
	cur := t.root
	for !t.isNil(cur) {
		parent = cur
		if less(n.payload.Balance, n.seq, cur.payload.Balance, cur.seq) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = parent
	n.left, n.right = t.nilNode, t.nilNode
	switch {
	case t.isNil(parent):
		t.root = n
	case less(n.payload.Balance, n.seq, parent.payload.Balance, parent.seq):
		parent.left = n
	default:
		parent.right = n
	}
}

// First returns the tree-resident address with the smallest
// (balance, insertion sequence) order, or false if the tree is empty.
func (t *Tree) First() (Address, bool) {
	if t.isNil(t.root) {
		return sentinelAddress, false
	}
	return t.min(t.root).id, true
}

// Last returns the tree-resident address with the largest
// (balance, insertion sequence) order, or false if the tree is empty.
func (t *Tree) Last() (Address, bool) {
	if t.isNil(t.root) {
		return sentinelAddress, false
	}
	return t.max(t.root).id, true
}

// Next returns the in-order successor of id. It requires id to be a
// non-sentinel address (returning ErrNullKey otherwise); if id is not
// currently tree-resident, behavior is the documented "may return
// false" case from spec.md §4.1.
func (t *Tree) Next(id Address) (Address, bool, error) {
	if t.IsSentinel(id) {
		return sentinelAddress, false, ErrNullKey
	}
	n, ok := t.index[id]
	if !ok {
		return sentinelAddress, false, nil
	}
	s := t.successorNode(n)
	if t.isNil(s) {
		return sentinelAddress, false, nil
	}
	return s.id, true, nil
}

// Prev returns the in-order predecessor of id, with the same
// preconditions and non-resident behavior as Next.
func (t *Tree) Prev(id Address) (Address, bool, error) {
	if t.IsSentinel(id) {
		return sentinelAddress, false, ErrNullKey
	}
	n, ok := t.index[id]
	if !ok {
		return sentinelAddress, false, nil
	}
	p := t.predecessorNode(n)
	if t.isNil(p) {
		return sentinelAddress, false, nil
	}
	return p.id, true, nil
}

// Exists reports whether id is tree-resident. This is the stronger of
// the two readings spec.md discusses ("any payload stored" vs
// "tree-resident"); §9's Design Notes call tree-residency the intended
// semantics, and that is what index membership gives directly.
func (t *Tree) Exists(id Address) bool {
	_, ok := t.index[id]
	return ok
}

// GetPayload returns the stored payload for id if it has ever been
// inserted (regardless of tree residency), or the zero Payload
// otherwise. Total function, no allocation, no error.
func (t *Tree) GetPayload(id Address) Payload {
	return t.payloads[id]
}

// BalanceOf returns GetPayload(id).Balance, or a zero balance if id is
// unknown.
func (t *Tree) BalanceOf(id Address) *uint256.Int {
	p, ok := t.payloads[id]
	if !ok || p.Balance == nil {
		return uint256.NewInt(0)
	}
	return p.Balance
}

// Node returns a structural snapshot of the tree-resident node at id,
// or ErrNotFound if id is not tree-resident.
func (t *Tree) Node(id Address) (NodeView, error) {
	n, ok := t.index[id]
	if !ok {
		return NodeView{}, errNotFound(id)
	}
	v := NodeView{ID: n.id, Color: n.color}
	if !t.isNil(n.parent) {
		v.Parent = n.parent.id
	}
	if !t.isNil(n.left) {
		v.Left = n.left.id
	}
	if !t.isNil(n.right) {
		v.Right = n.right.id
	}
	return v, nil
}
