package main

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"github.com/ledgerfold/acctrbtree/registry"
)

func newDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <address> <amount>",
		Short: "Deposit amount into address, creating the account if new",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := common.HexToAddress(args[0])
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			r := registry.New()
			newBalance, err := r.Deposit(id, amount)
			if err != nil {
				return fmt.Errorf("deposit: %w", err)
			}
			fmt.Printf("%s new balance: %s\n", id, newBalance.Dec())
			return nil
		},
	}
}

func parseAmount(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("amount %q is not a valid base-10 integer", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("amount %q overflows 256 bits", s)
	}
	return v, nil
}
