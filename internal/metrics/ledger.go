package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trustchain",
		Subsystem: "ledger",
		Name:      "append_total",
		Help:      "Count of block append attempts.",
	}, []string{"status"})
	ledgerAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "ledger",
		Name:      "append_duration_seconds",
		Help:      "Duration of block appends.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ledgerVerifyChainTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trustchain",
		Subsystem: "ledger",
		Name:      "verify_chain_total",
		Help:      "Count of full chain audits.",
	}, []string{"result"})
	ledgerVerifyChainDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "ledger",
		Name:      "verify_chain_duration_seconds",
		Help:      "Duration of full chain audits.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
	}, []string{"result"})
	ledgerVerifyChainBlocks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "ledger",
		Name:      "verify_chain_blocks",
		Help:      "Number of blocks walked per chain audit.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	})
)

// Ledger tracks metrics for ledger write and audit operations.
type Ledger struct{}

// NewLedger creates a Ledger metrics collector.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveAppend records a block append attempt.
func (m Ledger) ObserveAppend(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerAppendTotal.WithLabelValues(status).Inc()
	ledgerAppendDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveVerifyChain records a full chain audit outcome.
func (m Ledger) ObserveVerifyChain(valid bool, blocks int, started time.Time) {
	result := "valid"
	if !valid {
		result = "invalid"
	}

	ledgerVerifyChainTotal.WithLabelValues(result).Inc()
	ledgerVerifyChainDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
	ledgerVerifyChainBlocks.Observe(float64(blocks))
}
