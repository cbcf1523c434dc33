package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "healthconnect_wallet"

var (
	// LedgerOpsTotal counts wallet store operations by type and result.
	LedgerOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Total wallet ledger operations by type and result.",
		},
		[]string{"op", "result"},
	)

	// LedgerOpDuration observes operation latency by type.
	LedgerOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_operation_duration_seconds",
			Help:      "Wallet ledger operation duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"op"},
	)

	// AppendConflictsTotal counts optimistic version conflicts that forced a re-read.
	AppendConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_append_conflicts_total",
			Help:      "Appends retried because the wallet version moved underneath them.",
		},
	)

	// DistributionsTotal counts payment distributions by payment type and outcome.
	DistributionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "distributions_total",
			Help:      "Payment distributions by payment type and outcome.",
		},
		[]string{"payment_type", "outcome"},
	)

	// CommissionAmountTotal sums the platform commission retained, in major currency units.
	CommissionAmountTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_amount_total",
			Help:      "Platform commission computed on distributed payments.",
		},
		[]string{"payment_type"},
	)

	// WithdrawalsTotal counts withdrawal requests by result.
	WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Withdrawal requests by result.",
		},
		[]string{"result"},
	)

	// HTTPRequestsTotal counts HTTP requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes HTTP latency by route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		LedgerOpsTotal,
		LedgerOpDuration,
		AppendConflictsTotal,
		DistributionsTotal,
		CommissionAmountTotal,
		WithdrawalsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// ObserveOp starts timing a ledger operation. The returned func records the
// duration and counts the operation under result "ok" or "error".
func ObserveOp(op string) func(err error) {
	start := time.Now()
	return func(err error) {
		result := "ok"
		if err != nil {
			result = "error"
		}
		LedgerOpsTotal.WithLabelValues(op, result).Inc()
		LedgerOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
