package ordertree_test

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ledgerfold/acctrbtree/ordertree"
)

func ExampleTree_Insert() {
	tr := ordertree.New()

	tr.Insert(common.BigToAddress(big.NewInt(1)), ordertree.Payload{Balance: uint256.NewInt(30)})
	tr.Insert(common.BigToAddress(big.NewInt(2)), ordertree.Payload{Balance: uint256.NewInt(10)})
	tr.Insert(common.BigToAddress(big.NewInt(3)), ordertree.Payload{Balance: uint256.NewInt(20)})

	fmt.Println(tr.Count())
	fmt.Println(tr.TotalBalance())

	// Output:
	// 3
	// 60
}

func ExampleTree_First() {
	tr := ordertree.New()

	for i := int64(1); i <= 3; i++ {
		tr.Insert(common.BigToAddress(big.NewInt(i)), ordertree.Payload{Balance: uint256.NewInt(uint64(i) * 10)})
	}

	first, _ := tr.First()
	last, _ := tr.Last()
	fmt.Printf("%x\n", first[:])
	fmt.Printf("%x\n", last[:])

	// Output:
	// 0000000000000000000000000000000000000001
	// 0000000000000000000000000000000000000003
}
