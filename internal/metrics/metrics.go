package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the service on its own prometheus registry,
// so independent instances never collide, one per test if need be.
type Registry struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRateLimited     prometheus.Counter

	// Topology
	TopologyRegions            prometheus.Gauge
	TopologyEdges              prometheus.Gauge
	TopologyLoadedAt           prometheus.Gauge
	TopologySkippedConnections prometheus.Counter
	TopologyDuplicateRegions   prometheus.Counter
	TopologyLoadsTotal         *prometheus.CounterVec
	StateLookupsTotal          *prometheus.CounterVec

	registry *prometheus.Registry
}

func NewRegistry() *Registry {
	r := &Registry{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "observatory_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		HTTPRateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "observatory_http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
		TopologyRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "observatory_topology_regions",
			Help: "Number of regions in the published topology",
		}),
		TopologyEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "observatory_topology_edges",
			Help: "Number of traffic edges in the published topology",
		}),
		TopologyLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "observatory_topology_loaded_timestamp_seconds",
			Help: "Unix time the published topology was built",
		}),
		TopologySkippedConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "observatory_topology_skipped_connections_total",
			Help: "Connections dropped because an endpoint was not a direct child",
		}),
		TopologyDuplicateRegions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "observatory_topology_duplicate_regions_total",
			Help: "Regions dropped because the name was already registered",
		}),
		TopologyLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_topology_loads_total",
				Help: "Topology builds by result",
			},
			[]string{"result"},
		),
		StateLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observatory_state_lookups_total",
				Help: "Region lookups by result (hit or miss)",
			},
			[]string{"result"},
		),
		registry: prometheus.NewRegistry(),
	}

	r.registry.MustRegister(
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		r.HTTPRateLimited,
		r.TopologyRegions,
		r.TopologyEdges,
		r.TopologyLoadedAt,
		r.TopologySkippedConnections,
		r.TopologyDuplicateRegions,
		r.TopologyLoadsTotal,
		r.StateLookupsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }
