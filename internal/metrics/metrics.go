// Package metrics registers the Prometheus gauges the acctsim
// demonstrator exposes. The registry package (not the tree) updates
// them after every mutating call; they are ambient observability for
// the demonstrator process, never read by core logic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AccountCount = promauto.NewGauge(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "acctsim_account_count",
		Help: "The number of tree-resident accounts in the registry.",
	})

	TotalBalanceWei = promauto.NewGauge(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "acctsim_total_balance_wei",
		Help: "The sum of tree-resident account balances, as a float64 (precision-lossy above 2^53).",
	})
)
