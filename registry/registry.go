// Package registry implements AccountRegistry, a facade over ordertree
// that maps account identifiers to balances and routes every mutation
// through the remove-modify-reinsert re-sort idiom.
package registry

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ledgerfold/acctrbtree/internal/metrics"
	"github.com/ledgerfold/acctrbtree/internal/xlog"
	"github.com/ledgerfold/acctrbtree/ordertree"
)

var log = xlog.New("registry")

// Address re-exports ordertree.Address so callers need not import
// ordertree directly just to name an account identifier.
type Address = ordertree.Address

// Registry is an AccountRegistry: a thin adapter over an ordertree.Tree
// that maintains per-identifier payloads and aggregate totals.
//
// Not thread-safe. A caller driving a Registry from more than one
// goroutine must guard every call with its own sync.RWMutex.
type Registry struct {
	tree *ordertree.Tree

	// clock is a monotonic logical counter, not a wall-clock timestamp,
	// so that UpdatedAt stamping stays deterministic under the fuzz and
	// property tests: it increments once per mutating call.
	clock int64
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{tree: ordertree.New()}
}

// Deposit adds delta to id's current balance, registering id for the
// first time if this is its first deposit. Implements the
// remove-modify-reinsert re-sort idiom: if id is already tree-resident
// its node is removed, the payload's balance is bumped, and it is
// reinserted at its new sorted position; a never-seen or
// currently-zero-balance id is simply inserted fresh.
//
// Returns the account's new balance. A nil delta is treated as a
// caller bug and rejected with an error rather than silently
// corrupting the aggregate total.
func (r *Registry) Deposit(id ordertree.Address, delta *uint256.Int) (*uint256.Int, error) {
	if delta == nil {
		return nil, fmt.Errorf("registry: nil deposit delta for %s", id)
	}

	payload := r.tree.GetPayload(id)
	if payload.Balance == nil {
		payload.Balance = uint256.NewInt(0)
	}

	if r.tree.Exists(id) {
		if err := r.tree.Remove(id); err != nil {
			return nil, fmt.Errorf("registry: deposit to %s: %w", id, err)
		}
	}

	payload.Balance = new(uint256.Int).Add(payload.Balance, delta)
	payload.Active = true
	payload.UpdatedAt = r.tick()

	if err := r.tree.Insert(id, payload); err != nil {
		return nil, fmt.Errorf("registry: deposit to %s: %w", id, err)
	}

	log.Info("deposit", "id", id, "delta", delta.Dec(), "balance", payload.Balance.Dec())
	r.refreshMetrics()
	return new(uint256.Int).Set(payload.Balance), nil
}

// WithdrawAll zeroes id's balance and unlinks it from the tree
// (registry/tree duality: the account stays registered — GetPayload
// still answers for it — but is no longer tree-resident, since
// zero-balance accounts never participate in ordering).
//
// Returns the amount withdrawn. If id was never tree-resident (no
// balance to withdraw), returns ordertree.ErrNotFound and leaves state
// unchanged.
func (r *Registry) WithdrawAll(id ordertree.Address) (*uint256.Int, error) {
	withdrawn := r.tree.BalanceOf(id)
	if err := r.tree.Remove(id); err != nil {
		return nil, fmt.Errorf("registry: withdraw from %s: %w", id, err)
	}

	payload := r.tree.GetPayload(id)
	payload.Balance = uint256.NewInt(0)
	payload.Active = false
	payload.UpdatedAt = r.tick()
	if err := r.tree.Insert(id, payload); err != nil {
		// Insert of a zero balance only fails on ErrNullKey/ErrExists,
		// neither reachable here: Remove just proved id non-sentinel
		// and non-resident.
		return nil, fmt.Errorf("registry: withdraw from %s: %w", id, err)
	}

	log.Info("withdraw_all", "id", id, "amount", withdrawn.Dec())
	r.refreshMetrics()
	return withdrawn, nil
}

// TopN returns up to n account identifiers in descending balance
// order (richest first). n <= 0 returns an empty slice.
func (r *Registry) TopN(n int) []ordertree.Address {
	if n <= 0 {
		return []ordertree.Address{}
	}
	out := make([]ordertree.Address, 0, n)
	id, ok := r.tree.Last()
	for ok && len(out) < n {
		out = append(out, id)
		id, ok, _ = r.tree.Prev(id)
	}
	return out
}

// BottomN returns up to n account identifiers in ascending balance
// order (poorest first). n <= 0 returns an empty slice.
func (r *Registry) BottomN(n int) []ordertree.Address {
	if n <= 0 {
		return []ordertree.Address{}
	}
	out := make([]ordertree.Address, 0, n)
	id, ok := r.tree.First()
	for ok && len(out) < n {
		out = append(out, id)
		id, ok, _ = r.tree.Next(id)
	}
	return out
}

// Count returns the number of tree-resident accounts.
func (r *Registry) Count() uint64 { return r.tree.Count() }

// TotalBalance returns the sum of all tree-resident balances.
func (r *Registry) TotalBalance() *uint256.Int { return r.tree.TotalBalance() }

// GetPayload returns id's stored payload, or the zero Payload if id
// has never been deposited into.
func (r *Registry) GetPayload(id ordertree.Address) ordertree.Payload { return r.tree.GetPayload(id) }

// BalanceOf returns id's current balance, zero if unknown.
func (r *Registry) BalanceOf(id ordertree.Address) *uint256.Int { return r.tree.BalanceOf(id) }

// Exists reports whether id is tree-resident (has a non-zero balance).
func (r *Registry) Exists(id ordertree.Address) bool { return r.tree.Exists(id) }

// tick advances and returns the registry's logical clock, used to stamp
// Payload.UpdatedAt on every mutating call for the audit log.
func (r *Registry) tick() int64 {
	r.clock++
	return r.clock
}

func (r *Registry) refreshMetrics() {
	metrics.AccountCount.Set(float64(r.tree.Count()))
	total, _ := new(big.Float).SetInt(r.tree.TotalBalance().ToBig()).Float64()
	metrics.TotalBalanceWei.Set(total)
}
