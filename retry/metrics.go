package retry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for observing retry behavior. The "name" label
// identifies the retried operation so several Retryers can share the
// collectors.

var (
	// retryAttempts counts attempts by operation name and outcome
	// ("success" or "failure").
	retryAttempts = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "retry_attempts_total",
		Help: "The total number of retry attempts, by outcome",
	}, []string{"name", "outcome"})

	// retryElapsed measures the elapsed time since the first attempt, as
	// observed at each attempt.
	retryElapsed = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "retry_elapsed_seconds",
		Help: "The time elapsed since the first attempt, observed per attempt",
		Buckets: []float64{
			0.001, // 1ms
			0.01,  // 10ms
			0.1,   // 100ms
			1,     // 1s
			10,    // 10s
			60,    // 1m
			300,   // 5m
		},
	}, []string{"name"})
)

// NewMetricsListener returns a listener that records every attempt to the
// package's Prometheus collectors under the given operation name.
func NewMetricsListener[T any](name string) Listener[T] {
	return ListenerFunc[T](func(_ context.Context, attempt Attempt[T], _ int, elapsed time.Duration) {
		outcome := "success"
		if attempt.HasFailure() {
			outcome = "failure"
		}

		retryAttempts.WithLabelValues(name, outcome).Inc()
		retryElapsed.WithLabelValues(name).Observe(elapsed.Seconds())
	})
}
