// Package metrics exposes Prometheus collectors for lazy chain evaluation.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeCancel  = "cancel"
)

type Collector struct {
	// ExecutionDuration tracks timed executions by outcome
	ExecutionDuration *prometheus.HistogramVec
	// RetryAttempts counts retry attempts by outcome
	RetryAttempts *prometheus.CounterVec
	// Timeouts counts operations abandoned by a timeout
	Timeouts prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		ExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rop_execution_duration_seconds",
				Help:    "Duration of timed chain executions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		RetryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rop_retry_attempts_total",
				Help: "Total number of retry attempts",
			},
			[]string{"outcome"},
		),
		Timeouts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rop_timeouts_total",
				Help: "Total number of operations that timed out",
			},
		),
	}
}

func (c *Collector) ObserveExecution(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.ExecutionDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) RetryAttempt(outcome string) {
	if c == nil {
		return
	}
	c.RetryAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) TimedOut() {
	if c == nil {
		return
	}
	c.Timeouts.Inc()
}
