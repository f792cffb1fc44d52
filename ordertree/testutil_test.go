package ordertree

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// addr returns the i-th distinct non-zero test address, matching the
// addr(i) notation spec.md's concrete scenarios use.
func addr(i int64) Address {
	return common.BigToAddress(big.NewInt(i))
}

// bal is a small helper for building *uint256.Int literals in tests.
func bal(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}
