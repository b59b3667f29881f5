// internal/workers/decision-notice/validate-decision-notice/handler.go
package validatedecisionnotice

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/observability"
	"tribunal-workers/internal/decisionnotice"
	"tribunal-workers/internal/decisionnotice/predicate"
	"tribunal-workers/internal/workers/decision-notice/jobsupport"
)

const TaskType = "validate-decision-notice"

type Handler struct {
	config       *Config
	engine       *decisionnotice.Engine
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, engine *decisionnotice.Engine, obs *observability.Observability, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()
	ctx, span := h.obs.StartJob(ctx, TaskType, job.Key)
	defer span.End()

	input, err := jobsupport.ParseCase(job)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, jobsupport.EngineError(err, input))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
	h.obs.RecordJobProcessed(ctx, TaskType, "completed")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "completed")
}

// execute returns an invalid output for answers the adjudicator can fix and
// an error for everything else.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := h.engine.Validate(input)
	jobsupport.RecordEvaluation(input, input.GenerateNotice == predicate.Yes, err)

	output := &Output{
		IsValid:          true,
		ValidationErrors: []string{},
		EvaluationID:     uuid.New().String(),
	}

	if verr, ok := decisionnotice.AsValidationError(err); ok {
		h.logger.Info("decision notice answers are inconsistent", map[string]interface{}{
			"caseId":      input.CaseID,
			"conditionId": verr.ConditionID,
		})
		output.IsValid = false
		output.ValidationErrors = verr.Messages
		output.ConditionID = verr.ConditionID
		return output, nil
	}
	if err != nil {
		jobsupport.LogDefect(h.logger, err, input)
		return nil, err
	}
	return output, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	observability.RecordJobError(ctx, string(stdErr.Code), stdErr)
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	h.errorHandler.HandleJobError(context.Background(), client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
