// Package metrics provides Prometheus metrics for the analysis service
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the analysis service
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Analysis metrics
	AnalysesTotal        prometheus.Counter
	AnalysisErrorsTotal  prometheus.Counter
	AnalysisDuration     prometheus.Histogram
	ClassificationsTotal *prometheus.CounterVec

	// Cache metrics
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// Recommendation metrics
	RecommendationItemsTotal prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{}

	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemaadvisor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schemaadvisor_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.AnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schemaadvisor_analyses_total",
			Help: "Total number of page analyses performed",
		},
	)

	m.AnalysisErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schemaadvisor_analysis_errors_total",
			Help: "Total number of failed page analyses",
		},
	)

	m.AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schemaadvisor_analysis_duration_seconds",
			Help:    "Duration of page analyses in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
		},
	)

	m.ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schemaadvisor_classifications_total",
			Help: "Total number of page classifications by detected type",
		},
		[]string{"page_type"},
	)

	m.CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schemaadvisor_cache_hits_total",
			Help: "Total number of analyses served from cache",
		},
	)

	m.CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schemaadvisor_cache_misses_total",
			Help: "Total number of analyses not found in cache",
		},
	)

	m.RecommendationItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schemaadvisor_recommendation_items_total",
			Help: "Total number of schema recommendation items issued",
		},
	)

	return m
}

// RecordAnalysis records a completed analysis with its classified type.
func (m *Metrics) RecordAnalysis(pageType string, duration time.Duration, recommendations int) {
	m.AnalysesTotal.Inc()
	m.AnalysisDuration.Observe(duration.Seconds())
	if pageType != "" {
		m.ClassificationsTotal.WithLabelValues(pageType).Inc()
	}
	m.RecommendationItemsTotal.Add(float64(recommendations))
}

// RecordCacheHit counts an analysis served from cache.
func (m *Metrics) RecordCacheHit() {
	m.CacheHitsTotal.Inc()
}

// RecordCacheMiss counts an analysis that had to be computed.
func (m *Metrics) RecordCacheMiss() {
	m.CacheMissesTotal.Inc()
}

// HTTPMiddleware returns a Gin middleware recording request metrics.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, statusClass(c.Writer.Status()),
		).Inc()
		m.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Handler returns the Prometheus scrape endpoint wrapped for Gin.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
