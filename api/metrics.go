package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the API.
type Metrics struct {
	// Registry owns these metrics, it is served on /metrics.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	projections     *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

// NewMetrics registers the API metrics in a dedicated registry, so that it
// can be called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "invest_request_duration_seconds",
				Help:    "Duration of requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		projections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invest_projections_total",
				Help: "Total projections computed, by frequency.",
			},
			[]string{"frequency"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invest_rejected_investments_total",
				Help: "Total investments rejected, by offending field.",
			},
			[]string{"field"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "invest_projection_cache_hits_total",
			Help: "Total projections served from the cache.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "invest_projection_cache_misses_total",
			Help: "Total projections missing from the cache.",
		}),
	}
}

// RecordRequestDuration records the duration of a request on route.
func (m *Metrics) RecordRequestDuration(route string, d time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// IncrProjection counts a computed projection.
func (m *Metrics) IncrProjection(frequency string) { m.projections.WithLabelValues(frequency).Inc() }

// IncrRejection counts an investment rejected because of field.
func (m *Metrics) IncrRejection(field string) { m.rejections.WithLabelValues(field).Inc() }

func (m *Metrics) IncrCacheHit()  { m.cacheHits.Inc() }
func (m *Metrics) IncrCacheMiss() { m.cacheMisses.Inc() }
