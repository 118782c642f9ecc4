package rpcclient

import (
	"time"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics used in monitoring service.
var (
	callsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of successfully completed RPC calls",
			Name:      "calls_completed_total",
			Namespace: "chiarpc",
		},
		[]string{"method"},
	)

	callFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of failed RPC calls by failure kind",
			Name:      "call_failures_total",
			Namespace: "chiarpc",
		},
		[]string{"method", "kind"},
	)

	callDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Help:      "RPC call round trip time in seconds",
			Name:      "call_duration_seconds",
			Namespace: "chiarpc",
		},
		[]string{"method"},
	)
)

func addCallCompleted(method string) {
	callsCompleted.WithLabelValues(method).Inc()
}

func addCallFailure(method string, kind chiarpc.Kind) {
	callFailures.WithLabelValues(method, kind.String()).Inc()
}

func addCallDuration(method string, d time.Duration) {
	callDuration.WithLabelValues(method).Observe(d.Seconds())
}

func init() {
	prometheus.MustRegister(
		callsCompleted,
		callFailures,
		callDuration,
	)
}
