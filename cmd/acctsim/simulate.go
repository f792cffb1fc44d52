package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/ledgerfold/acctrbtree/registry"
)

// newSimulateCmd runs the ascending-deposits / balance-bump /
// withdraw scenario end to end in a single process, as a runnable
// demonstration of the re-sort idiom (no persistence between
// invocations is needed since the whole scenario lives in one run).
func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted deposit/withdraw scenario and print the resulting leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := registry.New()

			for i := int64(1); i <= 20; i++ {
				if _, err := r.Deposit(testAddr(i), uint256.NewInt(uint64(i)*10)); err != nil {
					return fmt.Errorf("simulate: deposit %d: %w", i, err)
				}
			}
			log.Info("ascending deposits complete", "count", r.Count(), "total", r.TotalBalance().Dec())

			if _, err := r.Deposit(testAddr(3), uint256.NewInt(15)); err != nil {
				return fmt.Errorf("simulate: balance bump: %w", err)
			}
			log.Info("balance bump applied", "account", testAddr(3))

			withdrawn, err := r.WithdrawAll(testAddr(8))
			if err != nil {
				return fmt.Errorf("simulate: withdraw: %w", err)
			}
			log.Info("withdrew account", "account", testAddr(8), "amount", withdrawn.Dec())

			fmt.Printf("leaderboard (count=%d, total=%s):\n", r.Count(), r.TotalBalance().Dec())
			printLeaderboard(r, r.TopN(20))
			return nil
		},
	}
}

func testAddr(i int64) registry.Address {
	return common.BigToAddress(big.NewInt(i))
}
