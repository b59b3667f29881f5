// internal/workers/data-access/record-decision-outcome/handler.go
package recorddecisionoutcome

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"tribunal-workers/internal/common/database"
	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/validation"
	"tribunal-workers/internal/workers/data-access/record-decision-outcome/queries"
)

const TaskType = "record-decision-outcome"

type Handler struct {
	config       *Config
	db           *sql.DB
	guard        *database.Guard
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, db *sql.DB, guard *database.Guard, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		guard:        guard,
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

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	vars, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("parse variables: %v", err))
	}
	if result := validation.ValidateInput(vars, GetInputSchema()); !result.Valid {
		return nil, errors.NewInputSchemaInvalidError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return nil, errors.NewInputSchemaInvalidError(fmt.Sprintf("decode input: %v", err))
	}
	return &input, nil
}

// execute writes one audit row per evaluation. The redis guard short-cuts
// retries of jobs that already wrote; the unique evaluation_id column is
// the final arbiter.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	acquired, err := h.guard.Acquire(ctx, input.EvaluationID)
	if err != nil {
		return nil, errors.NewAuditGuardFailedError(err)
	}

	if !acquired {
		id, err := queries.FindOutcome(ctx, h.db, h.config.Table, input.EvaluationID)
		switch {
		case err == nil:
			h.logger.Info("evaluation already recorded", map[string]interface{}{
				"evaluationId": input.EvaluationID,
				"auditId":      id,
			})
			return &Output{AuditID: id, EvaluationID: input.EvaluationID, Duplicate: true}, nil
		case stderrors.Is(err, sql.ErrNoRows):
			// guard outlived a failed write
		default:
			return nil, h.storeError(ctx, err)
		}
	}

	rec, err := h.buildRecord(input)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	id, inserted, err := queries.InsertOutcome(ctx, h.db, h.config.Table, rec)
	if err != nil {
		if relErr := h.guard.Release(context.Background(), input.EvaluationID); relErr != nil {
			h.logger.Warn("failed to release audit guard", map[string]interface{}{
				"evaluationId": input.EvaluationID,
				"error":        relErr.Error(),
			})
		}
		return nil, h.storeError(ctx, err)
	}

	h.logger.Info("decision outcome recorded", map[string]interface{}{
		"evaluationId": input.EvaluationID,
		"caseId":       input.CaseID,
		"auditId":      id,
		"inserted":     inserted,
	})

	return &Output{AuditID: id, EvaluationID: input.EvaluationID, Duplicate: !inserted}, nil
}

func (h *Handler) buildRecord(input *Input) (*queries.OutcomeRecord, error) {
	validationErrors := input.ValidationErrors
	if validationErrors == nil {
		validationErrors = []string{}
	}
	errorsJSON, err := json.Marshal(validationErrors)
	if err != nil {
		return nil, fmt.Errorf("marshal validation errors: %w", err)
	}
	resultJSON, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return &queries.OutcomeRecord{
		ID:                 uuid.New().String(),
		EvaluationID:       input.EvaluationID,
		CaseID:             input.CaseID,
		Benefit:            input.Benefit,
		Generated:          input.Generated,
		Valid:              input.IsValid,
		PointsTotal:        input.PointsTotal,
		PointsConditionID:  input.PointsConditionID,
		OutcomeConditionID: input.OutcomeConditionID,
		Award:              input.Award,
		Scenario:           input.Scenario,
		Entitled:           input.Entitled,
		ValidationErrors:   errorsJSON,
		Result:             resultJSON,
	}, nil
}

func (h *Handler) storeError(ctx context.Context, err error) error {
	var opErr *net.OpError
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		return errors.NewStoreTimeoutError("postgres")
	case stderrors.Is(err, sql.ErrConnDone), stderrors.As(err, &opErr):
		return errors.NewDatabaseConnectionFailedError(err)
	default:
		return errors.NewAuditInsertFailedError(h.config.Table, err)
	}
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errorHandler.HandleJobError(context.Background(), client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
