package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for review writes, rating aggregation and search.
// All methods are safe on a nil receiver.
type Metrics struct {
	// Review writes by operation: create, edit, delete
	ReviewWrites *prometheus.CounterVec

	// Aggregation failures on the write path by strategy
	AggregationFailures *prometheus.CounterVec

	// Background recompute attempts by outcome
	RecomputeRetries *prometheus.CounterVec

	// Profiles corrected by the reconciliation sweep
	SweepCorrections prometheus.Counter

	// Search latency by mode: filter, text
	SearchLatency *prometheus.HistogramVec

	// HTTP requests by method, route and status
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg. Tests pass a fresh prometheus.NewRegistry().
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReviewWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexconnect_review_writes_total",
			Help: "Committed review writes by operation",
		}, []string{"op"}),

		AggregationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexconnect_rating_aggregation_failures_total",
			Help: "Rating aggregations that failed after the review write committed",
		}, []string{"strategy"}),

		RecomputeRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexconnect_rating_recompute_jobs_total",
			Help: "Background rating recompute jobs by outcome",
		}, []string{"outcome"}), // outcome: "enqueued", "succeeded", "failed"

		SweepCorrections: factory.NewCounter(prometheus.CounterOpts{
			Name: "lexconnect_rating_sweep_corrections_total",
			Help: "Lawyer ratings corrected by the reconciliation sweep",
		}),

		SearchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lexconnect_search_duration_seconds",
			Help:    "Duration of directory searches by mode",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"mode"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lexconnect_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lexconnect_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncReviewWrite(op string) {
	if m != nil {
		m.ReviewWrites.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) IncAggregationFailure(strategy string) {
	if m != nil {
		m.AggregationFailures.WithLabelValues(strategy).Inc()
	}
}

func (m *Metrics) IncRecompute(outcome string) {
	if m != nil {
		m.RecomputeRetries.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) AddSweepCorrections(n int) {
	if m != nil && n > 0 {
		m.SweepCorrections.Add(float64(n))
	}
}

func (m *Metrics) ObserveSearch(mode string, d time.Duration) {
	if m != nil {
		m.SearchLatency.WithLabelValues(mode).Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}
