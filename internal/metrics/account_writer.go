package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	accountWriterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airdrop",
		Subsystem: "account_writer",
		Name:      "flush_total",
		Help:      "Count of account batch flushes.",
	}, []string{"status"})

	accountWriterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "airdrop",
		Subsystem: "account_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of an account batch flush including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	accountWriterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "airdrop",
		Subsystem: "account_writer",
		Name:      "flush_size",
		Help:      "Number of accounts per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	accountWriterRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airdrop",
		Subsystem: "account_writer",
		Name:      "retries_total",
		Help:      "Count of retried account flushes.",
	})
)

// AccountWriter tracks metrics for the batched account writer.
type AccountWriter struct{}

// NewAccountWriter constructs an AccountWriter collector.
func NewAccountWriter() *AccountWriter {
	return &AccountWriter{}
}

// ObserveFlush records a flush of rows accounts.
func (m AccountWriter) ObserveFlush(err error, rows int, started time.Time) {
	status := statusOf(err)
	accountWriterFlushTotal.WithLabelValues(status).Inc()
	accountWriterFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	accountWriterFlushSize.Observe(float64(rows))
}

// ObserveRetry records a retried flush attempt.
func (m AccountWriter) ObserveRetry() {
	accountWriterRetriesTotal.Inc()
}
