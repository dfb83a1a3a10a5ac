package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the API and
// the upstream clients.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: method, path, status
	RequestDuration *prometheus.HistogramVec // labels: method, path

	// Upstream fetch metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: service={regobs,aps,varsom}, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: service

	RegistrationsSubmitted prometheus.Counter
	ImagesUploaded         prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.RegistrationsSubmitted,
		m.ImagesUploaded,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowreg",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "snowreg",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowreg",
			Name:      "upstream_requests_total",
			Help:      "Upstream service requests by service and outcome.",
		}, []string{"service", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "snowreg",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream service request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"service"}),
		RegistrationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snowreg",
			Name:      "registrations_submitted_total",
			Help:      "Total registrations submitted to the observation service.",
		}),
		ImagesUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snowreg",
			Name:      "images_uploaded_total",
			Help:      "Total image attachments uploaded.",
		}),
	}
}

// GinMiddleware records request counts and durations per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RegistrationSubmitted counts one accepted registration.
func (m *Metrics) RegistrationSubmitted() {
	m.RegistrationsSubmitted.Inc()
}

// ImageUploaded counts one stored image attachment.
func (m *Metrics) ImageUploaded() {
	m.ImagesUploaded.Inc()
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(service string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamRequests.WithLabelValues(service, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
}
