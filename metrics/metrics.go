// Package metrics exposes close-outcome instrumentation for closers.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/closer"
)

var (
	registerOnce sync.Once

	closeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "closer",
			Subsystem: "close",
			Name:      "total",
			Help:      "Total close attempts by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)
	closeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "closer",
			Subsystem: "close",
			Name:      "duration_seconds",
			Help:      "Close duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

// Register registers the collectors with the default registry. Safe to call
// any number of times.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(closeTotal, closeDuration)
	})
}

// Record counts one close attempt for resource.
func Record(resource string, duration time.Duration, err error) {
	Register()
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	closeTotal.WithLabelValues(resource, outcome).Inc()
	closeDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// Instrument decorates c so every close attempt is recorded under
// resource. The close result passes through unchanged.
func Instrument(resource string, c closer.Closer) closer.Closer {
	return closer.Func(func() error {
		start := time.Now()
		err := c.Close()
		Record(resource, time.Since(start), err)
		return err
	})
}
