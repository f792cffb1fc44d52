// Package ordertree implements an order-statistics red-black tree
// keyed by an opaque account Address and ordered by a mutable Balance.
//
// The tree is a self-balancing binary search tree (CLRS-style
// red-black tree) whose ordering key is derived from each node's
// payload rather than supplied independently, so nodes are addressed
// by Address and re-sorted by removing, editing the payload, and
// re-inserting. A distinguished zero Address is reserved as the
// sentinel "no key" value and may never be inserted.
//
// Accounts whose balance is zero are tracked (their payload is
// retrievable via GetPayload) but are not linked into the ordered
// structure: they do not contribute to Count, TotalBalance, or
// traversal order. See Tree.Insert.
//
// Not thread-safe. The caller is responsible for serializing access,
// e.g. with a single sync.RWMutex guarding the whole Tree.
package ordertree

import "fmt"

// Color is the two-state color of a red-black tree node.
//
// Encoded as a distinct type rather than a bare bool so that "NIL is
// black" reads as an explicit invariant rather than an accidental
// zero-value bool.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

// String returns a short human-readable rendering of the color, used
// by Tree.String and debug logging.
func (c Color) String() string {
	if c == Black {
		return "B"
	}
	return "R"
}

// node is a single tree-resident element. Non-resident (zero-balance
// or never-inserted) accounts have no node; their payload, if any,
// lives only in Tree.payloads.
//
// seq is the node's insertion sequence number, assigned once from
// Tree.nextSeq and never reused even across Remove/re-Insert; it
// exists solely to tie-break nodes of equal balance so that ties
// resolve in FIFO order rather than by address.
type node struct {
	parent, left, right *node
	color               Color
	id                  Address
	payload             Payload
	seq                 uint64
}

// String renders "address: payload [color]", mirroring the teacher's
// node rendering convention for ad-hoc debug printing.
func (n *node) String() string {
	return fmt.Sprintf("%s: %s [%s]", n.id, n.payload, n.color)
}
