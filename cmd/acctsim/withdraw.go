package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/ledgerfold/acctrbtree/registry"
)

func newWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <address>",
		Short: "Withdraw an account's full balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := common.HexToAddress(args[0])

			r := registry.New()
			amount, err := r.WithdrawAll(id)
			if err != nil {
				return fmt.Errorf("withdraw: %w", err)
			}
			fmt.Printf("%s withdrew: %s\n", id, amount.Dec())
			return nil
		},
	}
}
