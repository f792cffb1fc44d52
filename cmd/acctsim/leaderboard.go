package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgerfold/acctrbtree/registry"
)

func newLeaderboardCmd() *cobra.Command {
	var top int
	var bottom bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the top (or bottom) N accounts by balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := registry.New()
			var ids []registry.Address
			if bottom {
				ids = r.BottomN(top)
			} else {
				ids = r.TopN(top)
			}
			printLeaderboard(r, ids)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of accounts to print")
	cmd.Flags().BoolVar(&bottom, "bottom", false, "print the poorest accounts instead of the richest")
	return cmd
}
