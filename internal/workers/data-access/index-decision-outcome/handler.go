// internal/workers/data-access/index-decision-outcome/handler.go
package indexdecisionoutcome

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/validation"
)

const TaskType = "index-decision-outcome"

type Handler struct {
	config       *Config
	client       *elasticsearch.Client
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		client:       client,
		errorHandler: errors.NewErrorHandler(scoped),
		logger:       scoped,
		now:          time.Now,
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

// execute indexes under the evaluation id, so a retried job overwrites its
// own document.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	body, err := json.Marshal(BuildDocument(input, h.now()))
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	req := esapi.IndexRequest{
		Index:      h.config.Index,
		DocumentID: input.EvaluationID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, h.client)
	if err != nil {
		return nil, h.indexError(ctx, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, h.indexError(ctx, fmt.Errorf("%s: %s", res.Status(), strings.TrimSpace(string(raw))))
	}

	var ack struct {
		ID     string `json:"_id"`
		Result string `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return nil, h.indexError(ctx, fmt.Errorf("decode response: %w", err))
	}

	h.logger.Info("decision outcome indexed", map[string]interface{}{
		"evaluationId": input.EvaluationID,
		"index":        h.config.Index,
		"result":       ack.Result,
	})

	return &Output{
		Indexed:    true,
		IndexName:  h.config.Index,
		DocumentID: input.EvaluationID,
		Result:     ack.Result,
	}, nil
}

func (h *Handler) indexError(ctx context.Context, err error) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewStoreTimeoutError("elasticsearch")
	}
	return errors.NewOutcomeIndexFailedError(h.config.Index, err)
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
