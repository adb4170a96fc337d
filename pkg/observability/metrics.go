package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus metrics for the view layer. It owns
// its registry so tests can build collectors without duplicate
// registration panics.
type Collector struct {
	registry *prometheus.Registry

	// Collaborator API metrics
	Fetches       *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Assembly metrics
	GraphsAssembled *prometheus.CounterVec
	AssemblyErrors  prometheus.Counter

	// Render metrics
	NodesRendered prometheus.Gauge
	EdgesRendered prometheus.Gauge
}

// NewCollector creates a metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_fetches_total",
			Help:      "Total collaborator API fetches",
		},
		[]string{"endpoint", "status"},
	)

	fetchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_fetch_duration_seconds",
			Help:      "Collaborator API fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	graphsAssembled := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_assembled_total",
			Help:      "Total graphs assembled, by source payload shape",
		},
		[]string{"source"},
	)

	assemblyErrors := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assembly_errors_total",
			Help:      "Total malformed payloads rejected during assembly",
		},
	)

	nodesRendered := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes_rendered",
			Help:      "Nodes in the currently rendered graph",
		},
	)

	edgesRendered := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges_rendered",
			Help:      "Edges in the currently rendered graph",
		},
	)

	registry.MustRegister(fetches, fetchDuration, graphsAssembled, assemblyErrors, nodesRendered, edgesRendered)

	return &Collector{
		registry:        registry,
		Fetches:         fetches,
		FetchDuration:   fetchDuration,
		GraphsAssembled: graphsAssembled,
		AssemblyErrors:  assemblyErrors,
		NodesRendered:   nodesRendered,
		EdgesRendered:   edgesRendered,
	}
}

// Registry returns the collector's registry for serving /metrics
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveFetch records one collaborator fetch
func (c *Collector) ObserveFetch(endpoint string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	c.Fetches.WithLabelValues(endpoint, status).Inc()
	c.FetchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// ObserveRender records the size of the currently rendered graph
func (c *Collector) ObserveRender(nodes, edges int) {
	c.NodesRendered.Set(float64(nodes))
	c.EdgesRendered.Set(float64(edges))
}
