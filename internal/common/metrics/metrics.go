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

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	DecisionNoticeEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_notice_evaluations_total",
			Help: "Decision notice evaluations by benefit and result",
		},
		[]string{"benefit", "result"},
	)

	DecisionNoticeScenarios = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_notice_scenarios_total",
			Help: "Resolved decision notice scenarios by benefit",
		},
		[]string{"benefit", "scenario"},
	)

	DecisionNoticeValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_notice_validation_failures_total",
			Help: "Answers rejected by a catalog condition",
		},
		[]string{"benefit", "condition_id"},
	)

	CatalogDefects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decision_notice_catalog_defects_total",
			Help: "Cases for which no catalog condition resolved",
		},
		[]string{"benefit"},
	)
)

// Evaluation results recorded against DecisionNoticeEvaluations.
const (
	ResultValid        = "valid"
	ResultInvalid      = "invalid"
	ResultNotGenerated = "not_generated"
	ResultDefect       = "defect"
)
