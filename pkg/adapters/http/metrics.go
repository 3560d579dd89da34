package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	renders     prometheus.Counter
	renderNodes prometheus.Histogram
	gatherer    prometheus.Gatherer
}

// newMetrics registers the server's collectors on reg. When reg is also a
// Gatherer (a *prometheus.Registry is), /metrics serves from it; otherwise
// the process-wide default gatherer is used.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "canopy_renders_total",
			Help: "Total number of tree renders served",
		}),
		renderNodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "canopy_render_nodes",
			Help:    "Tree size (node count) of served renders",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	reg.MustRegister(m.renders, m.renderNodes)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}
