package ordertree

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Address is the opaque, 160-bit account identifier the tree is keyed
// by. It is a direct alias for go-ethereum's common.Address, the
// reference representation spec.md calls for.
//
// The all-zero Address is reserved as the sentinel "no key" value and
// must never be passed to Insert.
type Address = common.Address

// Payload is the per-account data carried by the tree, and the sole
// source of ordering information (Balance). Active is set by
// registry.Registry on deposit and cleared on withdrawal, so a
// withdrawn-to-zero account and one that was never deposited into both
// read false; UpdatedAt is the one extensible field carried for the registry's
// audit log. The tree itself never writes it — it is stamped by
// registry.Registry from a monotonic logical counter on every
// mutating call, 0 if never set.
type Payload struct {
	Balance   *uint256.Int
	Active    bool
	UpdatedAt int64
}

// String renders the payload for debug output and node rendering.
func (p Payload) String() string {
	bal := "<nil>"
	if p.Balance != nil {
		bal = p.Balance.Dec()
	}
	return fmt.Sprintf("{balance:%s active:%t}", bal, p.Active)
}

// NodeView is a read-only snapshot of a tree-resident node's
// structural position, returned by Tree.Node. Parent/Left/Right are
// the sentinel zero Address when absent.
type NodeView struct {
	ID                  Address
	Parent, Left, Right Address
	Color               Color
}

// sentinelAddress is the reserved "no key" value.
var sentinelAddress Address

// less reports whether node a sorts strictly before node b under the
// tree's (balance, insertion sequence) order: balance is primary, the
// monotonic sequence number each node is stamped with at Insert time
// is the tie-break. Two nodes never share a sequence number, so this
// is already a strict total order.
//
// The tie-break is insertion order, not address order: equal balances
// route right, giving stable FIFO among ties in ascending iteration
// (the later-inserted of two equal-balance accounts always sorts
// after the earlier one, regardless of how their addresses compare).
func less(aBalance *uint256.Int, aSeq uint64, bBalance *uint256.Int, bSeq uint64) bool {
	if c := aBalance.Cmp(bBalance); c != 0 {
		return c < 0
	}
	return aSeq < bSeq
}
