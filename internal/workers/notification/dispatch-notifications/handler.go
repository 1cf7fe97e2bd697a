// internal/workers/notification/dispatch-notifications/handler.go
package dispatchnotifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "internmatch/internal/common/errors"
	"internmatch/internal/common/logger"
	"internmatch/internal/common/metrics"
	"internmatch/internal/engine/dispatch"
	"internmatch/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "dispatch-notifications"
)

var (
	ErrPostingNotActive        = errors.New("POSTING_NOT_ACTIVE")
	ErrPostingQueryFailed      = errors.New("POSTING_QUERY_FAILED")
	ErrCandidateQueryFailed    = errors.New("CANDIDATE_QUERY_FAILED")
	ErrNotificationMergeFailed = errors.New("NOTIFICATION_MERGE_FAILED")
)

type PostingSource interface {
	GetByID(ctx context.Context, id string) (*models.Posting, error)
	MergeNotified(ctx context.Context, postingID string, candidateIDs []string) error
}

type CandidateSource interface {
	ListOptedIn(ctx context.Context) ([]*models.CandidateProfile, error)
}

// SummaryPublisher pushes a dispatch summary event onto the analytics
// topic; failures are logged, never surfaced to the workflow.
type SummaryPublisher interface {
	Publish(ctx context.Context, subject, message string) error
}

type Handler struct {
	config     *Config
	postings   PostingSource
	candidates CandidateSource
	dispatcher *dispatch.Dispatcher
	publisher  SummaryPublisher
	logger     logger.Logger
}

func NewHandler(config *Config, postings PostingSource, candidates CandidateSource, dispatcher *dispatch.Dispatcher, publisher SummaryPublisher, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		postings:   postings,
		candidates: candidates,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(job.Variables), &raw); err != nil {
		h.failJob(client, job, apperrors.NewParseError(err))
		return
	}
	if err := validateInput(raw, h.config.InputSchema); err != nil {
		h.failJob(client, job, apperrors.NewValidationError(err.Error()))
		return
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, apperrors.NewParseError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := apperrors.ErrCodeNotificationSendFailed
		switch {
		case errors.Is(err, ErrPostingNotActive):
			code = apperrors.ErrCodePostingNotActive
		case errors.Is(err, ErrPostingQueryFailed):
			code = apperrors.ErrCodePostingQueryFailed
		case errors.Is(err, ErrCandidateQueryFailed):
			code = apperrors.ErrCodeCandidateQueryFailed
		case errors.Is(err, ErrNotificationMergeFailed):
			code = apperrors.ErrCodeNotificationMergeFailed
		}
		h.failJob(client, job, apperrors.New(code, err))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	posting, err := h.postings.GetByID(ctx, input.PostingID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostingQueryFailed, err)
	}
	if posting.Status != models.PostingStatusActive {
		return nil, fmt.Errorf("%w: posting %s has status %q", ErrPostingNotActive, posting.ID, posting.Status)
	}

	candidates := input.Candidates
	if candidates == nil {
		candidates, err = h.candidates.ListOptedIn(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCandidateQueryFailed, err)
		}
		if candidates == nil {
			candidates = []*models.CandidateProfile{}
		}
	}

	minScore := input.MinScore
	if minScore <= 0 {
		minScore = h.config.MinScore
	}

	summary, err := h.dispatcher.Dispatch(ctx, posting, candidates, minScore)
	if err != nil {
		return nil, err
	}

	if err := h.postings.MergeNotified(ctx, posting.ID, summary.NotifiedIDs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotificationMergeFailed, err)
	}

	h.publishSummary(ctx, summary)

	h.logger.Info("dispatch completed", map[string]interface{}{
		"dispatchId":   summary.DispatchID,
		"postingId":    summary.PostingID,
		"sent":         summary.Sent,
		"failed":       summary.Failed,
		"totalMatches": summary.TotalMatches,
	})

	return &Output{
		DispatchID:   summary.DispatchID,
		PostingID:    summary.PostingID,
		Sent:         summary.Sent,
		Failed:       summary.Failed,
		TotalMatches: summary.TotalMatches,
		NotifiedIDs:  summary.NotifiedIDs,
		DispatchedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *Handler) publishSummary(ctx context.Context, summary *models.DispatchSummary) {
	if !h.config.SNSEnabled || h.publisher == nil {
		return
	}

	message, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := h.publisher.Publish(ctx, "internship-dispatch-summary", string(message)); err != nil {
		h.logger.Warn("summary publish failed", map[string]interface{}{
			"postingId": summary.PostingID,
			"error":     err,
		})
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, stdErr *apperrors.StandardError) {
	bpmnErr := apperrors.ConvertToBPMNError(stdErr)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    bpmnErr.Code,
		"errorMessage": bpmnErr.Message,
		"retries":      bpmnErr.Retries,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
