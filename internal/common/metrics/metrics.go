// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	MatchesComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_matches_computed_total",
			Help: "Total number of candidate/posting pairs scored",
		},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_notifications_sent_total",
			Help: "Total notification sends by outcome",
		},
		[]string{"status"},
	)

	DispatchRecipients = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_dispatch_recipients",
			Help:    "Recipients retained per dispatch after threshold and cap",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		},
	)
)
