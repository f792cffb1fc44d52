// Command acctsim is a small demonstrator that drives an
// AccountRegistry through scripted deposits/withdrawals and prints the
// resulting leaderboard. It exists to exercise the registry/tree pair
// end to end; it is not part of the core library.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ledgerfold/acctrbtree/internal/xlog"
	"github.com/ledgerfold/acctrbtree/registry"
)

var log = xlog.New("acctsim")

var metricsAddr string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "acctsim",
		Short: "Drive an order-statistics account registry and print its leaderboard",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if metricsAddr == "" {
				return
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			go func() {
				if err := http.ListenAndServe(metricsAddr, mux); err != nil {
					log.Error("metrics server stopped", "err", err)
				}
			}()
			log.Info("serving metrics", "addr", metricsAddr)
		},
	}
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (empty disables)")

	root.AddCommand(newDepositCmd())
	root.AddCommand(newWithdrawCmd())
	root.AddCommand(newLeaderboardCmd())
	root.AddCommand(newSimulateCmd())
	return root
}

func printLeaderboard(r *registry.Registry, ids []registry.Address) {
	for i, id := range ids {
		fmt.Printf("%2d. %s  balance=%s\n", i+1, id, r.BalanceOf(id).Dec())
	}
}
