// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus collectors for balancing outcomes.
// Batch runs export them once in text format (node_exporter textfile style).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/chembalance/balancer"
	"github.com/katalvlaran/chembalance/fallback"
)

const namespace = "chembalance"

// Collector counts outcomes and times Chain.Solve calls. It implements
// fallback.Observer and owns a private registry.
type Collector struct {
	registry  *prometheus.Registry
	equations *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ fallback.Observer = (*Collector)(nil)

// New creates a Collector with its collectors registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		equations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "equations_total",
				Help:      "Equations processed, by producing method, local balancer result and final status.",
			},
			[]string{"method", "local_result", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Time spent solving one equation, fallback included.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"method"},
		),
	}
	c.registry.MustRegister(c.equations, c.duration)

	return c
}

// Observe records one outcome.
func (c *Collector) Observe(o fallback.Outcome, elapsed time.Duration) {
	local := "ok"
	if o.LocalErr != nil {
		local = balancer.KindOf(o.LocalErr).String()
	}
	status := "ok"
	if o.Failed {
		status = "failed"
	}
	c.equations.WithLabelValues(string(o.Method), local, status).Inc()
	c.duration.WithLabelValues(string(o.Method)).Observe(elapsed.Seconds())
}

// Registry returns the private registry for gathering or serving.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
