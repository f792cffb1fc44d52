package ordertree

import (
	"fmt"

	"github.com/holiman/uint256"
)

// isBlack reports whether n is black, treating the sentinel nil node
// as black (red-black property 3).
func (t *Tree) isBlack(n *node) bool {
	return t.isNil(n) || n.color == Black
}

// isRed reports whether n is a real (non-nil) red node.
func (t *Tree) isRed(n *node) bool {
	return !t.isNil(n) && n.color == Red
}

// resetSentinel re-initializes the shared nil node after a deletion.
// deleteFixup may have temporarily written a real parent into
// nilNode.parent (the classic CLRS "virtual NIL" trick, needed because
// the fixup may start from a nil replacement child); this restores the
// sentinel to its resting state so the next call starts clean.
func (t *Tree) resetSentinel() {
	t.nilNode.parent = t.nilNode
	t.nilNode.left = t.nilNode
	t.nilNode.right = t.nilNode
	t.nilNode.color = Black
}

// Insert adds id with the given payload.
//
// If payload.Balance is zero (or nil, treated as zero), the payload is
// recorded so GetPayload/BalanceOf can see it, but no node is linked
// into the tree: Count and TotalBalance are untouched and the address
// does not participate in ordering. This is the zero-balance exclusion
// invariant (spec.md §3 invariant 3 / §8 P4).
//
// Returns ErrNullKey for the sentinel address, or ErrExists if id is
// already tree-resident. Neither error mutates tree state.
func (t *Tree) Insert(id Address, payload Payload) error {
	if t.IsSentinel(id) {
		return ErrNullKey
	}
	if t.Exists(id) {
		return errExists(id)
	}
	if payload.Balance == nil {
		payload.Balance = uint256.NewInt(0)
	}
	t.payloads[id] = payload

	if payload.Balance.IsZero() {
		return nil
	}

	n := &node{id: id, payload: payload, color: Red, seq: t.nextSeq}
	t.nextSeq++
	t.insertRaw(n)
	t.insertFixup(n)

	t.index[id] = n
	t.size++
	t.totalBalance.Add(t.totalBalance, payload.Balance)
	return nil
}

// insertFixup restores the red-black properties after inserting red
// node z, via the classic CLRS recolor/rotate cases.
func (t *Tree) insertFixup(z *node) {
	for t.isRed(z.parent) {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if t.isRed(y) {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if t.isRed(y) {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = Black
}

// Remove unlinks id from the tree.
//
// Returns ErrNullKey for the sentinel address, or ErrNotFound if id is
// not tree-resident. The stored payload is left in place (see
// SPEC_FULL.md §11 — payload retention after remove); the node is
// dropped from index, which is what lets Exists distinguish "removed"
// from "still resident", and its structural links are cleared.
func (t *Tree) Remove(id Address) error {
	if t.IsSentinel(id) {
		return ErrNullKey
	}
	z, ok := t.index[id]
	if !ok {
		return errNotFound(id)
	}

	var x *node
	y := z
	yOriginalColor := y.color

	switch {
	case t.isNil(z.left):
		x = z.right
		t.transplant(z, z.right)
	case t.isNil(z.right):
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.min(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == Black {
		t.deleteFixup(x)
	}
	t.resetSentinel()

	delete(t.index, id)
	t.size--
	t.totalBalance.Sub(t.totalBalance, z.payload.Balance)

	z.parent, z.left, z.right = nil, nil, nil
	return nil
}

// deleteFixup restores the red-black properties after the physical
// removal of a black node, propagating the "double black" defect
// upward via the four classic CLRS cases until it can be absorbed by a
// rotation/recolor or reaches the root.
func (t *Tree) deleteFixup(x *node) {
	for x != t.root && t.isBlack(x) {
		if x == x.parent.left {
			w := x.parent.right
			if t.isRed(w) {
				// case 1: sibling is red
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if t.isBlack(w.left) && t.isBlack(w.right) {
				// case 2: sibling and its children are black
				w.color = Red
				x = x.parent
			} else {
				if t.isBlack(w.right) {
					// case 3: sibling's far child is black
					w.left.color = Black
					w.color = Red
					t.rotateRight(w)
					w = x.parent.right
				}
				// case 4: sibling's far child is red
				w.color = x.parent.color
				x.parent.color = Black
				w.right.color = Black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if t.isRed(w) {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if t.isBlack(w.right) && t.isBlack(w.left) {
				w.color = Red
				x = x.parent
			} else {
				if t.isBlack(w.left) {
					w.right.color = Black
					w.color = Red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.left.color = Black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = Black
}

// traverseInOrder recursively visits the subtree rooted at n in
// ascending order, stopping early if f returns false.
func (t *Tree) traverseInOrder(n *node, f func(*node) bool) bool {
	if !t.isNil(n.left) && !t.traverseInOrder(n.left, f) {
		return false
	}
	if !f(n) {
		return false
	}
	if !t.isNil(n.right) && !t.traverseInOrder(n.right, f) {
		return false
	}
	return true
}

// IsTreeValid checks the BST ordering invariant and all red-black
// invariants (spec.md §8 P1/P2): root is black, no red node has a red
// child, and every root-to-nil path carries the same black height.
// Never called on a hot path — only from tests and the fuzz harness,
// matching "should be unreachable" framing for invariant violations.
func (t *Tree) IsTreeValid() error {
	if t.nilNode.color != Black {
		return fmt.Errorf("ordertree: sentinel nil node is not black")
	}
	if !t.isNil(t.root.parent) {
		return fmt.Errorf("ordertree: root parent is not sentinel nil node")
	}
	if !t.isBlack(t.root) {
		return fmt.Errorf("ordertree: root node is not black")
	}

	var (
		err        error
		haveFirst  bool
		prevBal    *uint256.Int
		prevSeq    uint64
		blackCount int
		firstLeaf  = true
	)

	t.traverseInOrder(t.root, func(n *node) bool {
		if haveFirst {
			if !less(prevBal, prevSeq, n.payload.Balance, n.seq) {
				err = fmt.Errorf("ordertree: ordering violated at %s", n.id)
				return false
			}
		}
		haveFirst = true
		prevBal, prevSeq = n.payload.Balance, n.seq

		if t.isRed(n) && t.isRed(n.left) {
			err = fmt.Errorf("ordertree: red node %s has red left child", n.id)
			return false
		}
		if t.isRed(n) && t.isRed(n.right) {
			err = fmt.Errorf("ordertree: red node %s has red right child", n.id)
			return false
		}

		if !t.isNil(n.left) && !t.isNil(n.right) {
			return true // only check black-height at leaves/unary nodes
		}
		bc := 0
		for cur := n; !t.isNil(cur); cur = cur.parent {
			if t.isBlack(cur) {
				bc++
			}
		}
		if firstLeaf {
			blackCount = bc
			firstLeaf = false
			return true
		}
		if bc != blackCount {
			err = fmt.Errorf("ordertree: black-height mismatch at %s", n.id)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	if uint64(len(t.index)) != t.size {
		return fmt.Errorf("ordertree: index size %d does not match count %d", len(t.index), t.size)
	}
	return nil
}

// String renders the tree resident nodes in ascending order, one per
// line, for ad-hoc debug printing and fuzz-failure logs.
func (t *Tree) String() string {
	if t.isNil(t.root) {
		return "Empty Tree"
	}
	out := ""
	t.traverseInOrder(t.root, func(n *node) bool {
		out += n.String() + "\n"
		return true
	})
	return out
}
