// Package metric exposes Prometheus metrics for long-running (watch-mode)
// materialization.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts completed materialization runs.
	RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semschema",
		Name:      "runs_total",
		Help:      "Completed schema materialization runs.",
	})

	// RunFailuresTotal counts runs aborted by a classification, minting,
	// parse, or write error.
	RunFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "semschema",
		Name:      "run_failures_total",
		Help:      "Schema materialization runs that failed.",
	})

	// TriplesEmitted reports the triple count of the most recent
	// successful run.
	TriplesEmitted = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "semschema",
		Name:      "triples_emitted",
		Help:      "Triples emitted by the most recent successful run.",
	})
)
