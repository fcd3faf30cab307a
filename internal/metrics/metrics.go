package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for matchday
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Scheduler Metrics
	SchedulerRunDuration    prometheus.Histogram
	SchedulerMatchesScanned prometheus.Counter
	SchedulerMatchFailures  prometheus.Counter
	NotificationsCreated    prometheus.CounterVec
	NotificationsDelivered  prometheus.CounterVec
	MembershipsExpiredTotal prometheus.Counter
	JobDuration             prometheus.HistogramVec

	// Voting Metrics
	VotesTotal         prometheus.CounterVec
	VotesRejectedTotal prometheus.CounterVec
}

// NewMetricsRegistry registers every metric with the default Prometheus registerer.
// It must be called once per process.
func NewMetricsRegistry() *MetricsRegistry {
	return NewMetricsRegistryWith(prometheus.DefaultRegisterer)
}

// NewMetricsRegistryWith registers every metric with reg. Tests pass a fresh
// prometheus.NewRegistry() so that registries can be created repeatedly.
func NewMetricsRegistryWith(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchday_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchday_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "matchday_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		// Scheduler Metrics
		SchedulerRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "matchday_scheduler_pass_duration_seconds",
				Help:    "Duration of one deadline scheduler pass in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
		),
		SchedulerMatchesScanned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "matchday_scheduler_matches_scanned_total",
				Help: "Total matches examined by the deadline scheduler",
			},
		),
		SchedulerMatchFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "matchday_scheduler_match_failures_total",
				Help: "Total matches whose milestone processing failed",
			},
		),
		NotificationsCreated: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchday_notifications_created_total",
				Help: "Total notifications created by type",
			},
			[]string{"type"},
		),
		NotificationsDelivered: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchday_notifications_delivered_total",
				Help: "Total announcer deliveries by outcome",
			},
			[]string{"outcome"},
		),
		MembershipsExpiredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "matchday_memberships_expired_total",
				Help: "Total memberships moved to EXPIRED",
			},
		),
		JobDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchday_job_duration_seconds",
				Help:    "Background job execution time in seconds",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
			[]string{"job_name"},
		),

		// Voting Metrics
		VotesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchday_votes_total",
				Help: "Total accepted votes by status",
			},
			[]string{"status"},
		),
		VotesRejectedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchday_votes_rejected_total",
				Help: "Total rejected votes by error code",
			},
			[]string{"code"},
		),
	}
}
