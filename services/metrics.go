package services

import "github.com/prometheus/client_golang/prometheus"

var (
	backendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of backend reads by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)
	backendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Duration of backend reads",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	metadataParseFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_parse_failures_total",
			Help: "Entries whose metadata string was not a JSON object",
		},
		[]string{"kind"},
	)
	oneTimeTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "one_time_task_transitions_total",
			Help: "One-time quest visits and claims",
		},
		[]string{"status"},
	)
)

// Collectors lists the service metrics for registration in main.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		backendRequestsTotal,
		backendRequestDuration,
		metadataParseFailures,
		oneTimeTransitions,
	}
}
