package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backfillRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trustchain",
		Subsystem: "backfill",
		Name:      "runs_total",
		Help:      "Count of backfill runs.",
	}, []string{"status"})
	backfillRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "backfill",
		Name:      "run_duration_seconds",
		Help:      "Duration of backfill runs.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"status"})
	backfillRunRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "backfill",
		Name:      "run_records",
		Help:      "Number of records processed per backfill run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	backfillRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trustchain",
		Subsystem: "backfill",
		Name:      "records_total",
		Help:      "Count of individual record registrations.",
	}, []string{"status"})
	backfillRecordDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trustchain",
		Subsystem: "backfill",
		Name:      "record_duration_seconds",
		Help:      "Duration of registering a single record.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Backfill tracks metrics for the backfill job.
type Backfill struct{}

// NewBackfill creates a Backfill metrics collector.
func NewBackfill() *Backfill {
	return &Backfill{}
}

// ObserveRun records a whole backfill run.
func (m Backfill) ObserveRun(err error, records int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	backfillRunsTotal.WithLabelValues(status).Inc()
	backfillRunDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	backfillRunRecords.Observe(float64(records))
}

// ObserveRecord records the registration of one record.
func (m Backfill) ObserveRecord(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	backfillRecordsTotal.WithLabelValues(status).Inc()
	backfillRecordDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
