// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	pipelineRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "runs_total",
		Help:      "Count of pipeline runs over a ledger export.",
	}, []string{"source", "status"})

	pipelineRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "run_duration_seconds",
		Help:      "Duration of a pipeline run.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	pipelineRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "rows_total",
		Help:      "Count of validated ledger rows by verdict.",
	}, []string{"source", "status"})

	pipelineLineErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "line_errors_total",
		Help:      "Count of failed row checks.",
	}, []string{"source"})

	pipelineCompileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "compile_duration_seconds",
		Help:      "Duration of the balance compilation step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	pipelineAccounts = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "accounts",
		Help:      "Number of unique destination accounts of the last run.",
	}, []string{"source"})

	pipelineDistributedAmount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "airdrop",
		Subsystem: "pipeline",
		Name:      "distributed_amount",
		Help:      "Total distributed amount of the last run in whole destination units.",
	}, []string{"source"})
)

// Pipeline tracks metrics for pipeline runs over one source file.
type Pipeline struct {
	source string
}

// NewPipeline constructs a Pipeline collector for source.
func NewPipeline(source string) *Pipeline {
	if source == "" {
		source = "unknown"
	}
	return &Pipeline{source: source}
}

// ObserveRun records a run outcome and duration.
func (m Pipeline) ObserveRun(err error, started time.Time) {
	status := statusOf(err)
	pipelineRunsTotal.WithLabelValues(m.source, status).Inc()
	pipelineRunDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
}

// ObserveValidation records row verdicts and line errors.
func (m Pipeline) ObserveValidation(valid, invalid, lineErrors int) {
	pipelineRowsTotal.WithLabelValues(m.source, "valid").Add(float64(valid))
	pipelineRowsTotal.WithLabelValues(m.source, "invalid").Add(float64(invalid))
	pipelineLineErrorsTotal.WithLabelValues(m.source).Add(float64(lineErrors))
}

// ObserveCompilation records the compile step. total is expressed in the
// smallest destination unit and scaled down by 10^decimals for the gauge.
func (m Pipeline) ObserveCompilation(err error, accounts int, total decimal.Decimal, decimals int32, started time.Time) {
	pipelineCompileDuration.WithLabelValues(m.source, statusOf(err)).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	pipelineAccounts.WithLabelValues(m.source).Set(float64(accounts))
	pipelineDistributedAmount.WithLabelValues(m.source).Set(total.Shift(-decimals).InexactFloat64())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
