// Package observability holds the service's Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aquasite"

// Metrics holds the Prometheus counters and histograms for the site pipeline.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: route, status

	// Pipeline metrics, labelled by dataset or region key.
	RowsIngested            *prometheus.CounterVec
	SitesNormalized         *prometheus.CounterVec
	SitesWithoutCoordinates *prometheus.CounterVec
	PipelineDuration        *prometheus.HistogramVec
	PipelineErrors          *prometheus.CounterVec // labels: kind={not_found,parse,internal}

	// Kafka snapshot metrics.
	SitesPublished prometheus.Counter
	PublishErrors  prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.RowsIngested,
		m.SitesNormalized,
		m.SitesWithoutCoordinates,
		m.PipelineDuration,
		m.PipelineErrors,
		m.SitesPublished,
		m.PublishErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by route and status code.",
		}, []string{"route", "status"}),
		RowsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_ingested_total",
			Help:      "CSV data rows read per dataset.",
		}, []string{"dataset"}),
		SitesNormalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sites_normalized_total",
			Help:      "Sites produced per dataset.",
		}, []string{"dataset"}),
		SitesWithoutCoordinates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sites_without_coordinates_total",
			Help:      "Sites whose source coordinate was missing or unconvertible.",
		}, []string{"dataset"}),
		PipelineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of one region pipeline run.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"region"}),
		PipelineErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_errors_total",
			Help:      "Failed pipeline runs by error kind.",
		}, []string{"kind"}),
		SitesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sites_published_total",
			Help:      "Site snapshots written to Kafka.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_errors_total",
			Help:      "Failed Kafka snapshot writes.",
		}),
	}
}
