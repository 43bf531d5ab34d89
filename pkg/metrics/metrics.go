package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	SlowQueryCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of slow database queries",
		},
	)

	// Milestone status transitions, labeled by target status.
	MilestoneTransitionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milestone_transition_count",
			Help: "Total number of milestone status transitions",
		},
		[]string{"status"},
	)

	ScheduleGenerationCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_generation_count",
			Help: "Total number of milestone schedules generated",
		},
	)

	WebhookDeliveryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_delivery_count",
			Help: "Total number of webhook notification deliveries",
		},
		[]string{"event", "outcome"}, // outcome: success, failed, skipped
	)

	WebhookDeliveryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webhook_delivery_latency_ms",
			Help:    "Webhook delivery latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"event"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func IncrementSlowQuery() {
	SlowQueryCount.Inc()
}

func IncrementMilestoneTransition(status string) {
	MilestoneTransitionCount.WithLabelValues(status).Inc()
}

func IncrementScheduleGeneration() {
	ScheduleGenerationCount.Inc()
}

func RecordWebhookDelivery(event, outcome string, duration time.Duration) {
	WebhookDeliveryCount.WithLabelValues(event, outcome).Inc()
	if outcome == "success" {
		WebhookDeliveryLatency.WithLabelValues(event).Observe(float64(duration.Milliseconds()))
	}
}
