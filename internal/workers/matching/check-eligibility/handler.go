// internal/workers/matching/check-eligibility/handler.go
package checkeligibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "internmatch/internal/common/errors"
	"internmatch/internal/common/logger"
	"internmatch/internal/common/metrics"
	"internmatch/internal/engine/dictionary"
	"internmatch/internal/engine/education"
	"internmatch/internal/engine/normalize"
	"internmatch/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "check-eligibility"
)

var (
	ErrEligibilityCheckFailed = errors.New("ELIGIBILITY_CHECK_FAILED")
)

type CandidateSource interface {
	GetByID(ctx context.Context, id string) (*models.CandidateProfile, error)
}

type PostingSource interface {
	GetByID(ctx context.Context, id string) (*models.Posting, error)
}

type Handler struct {
	config     *Config
	candidates CandidateSource
	postings   PostingSource
	logger     logger.Logger
}

func NewHandler(config *Config, candidates CandidateSource, postings PostingSource, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		candidates: candidates,
		postings:   postings,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, apperrors.NewParseError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, apperrors.New(apperrors.ErrCodeEligibilityCheckFailed, err))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

// execute resolves the candidate's education (inline or fetched), resolves
// the requirement list (inline or from the posting) and runs the rule
// chain. Used by the recommendation API to annotate results with the rule
// that fired.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	educationText := input.CandidateEducation
	language := input.Language
	if educationText == "" && input.CandidateID != "" {
		candidate, err := h.candidates.GetByID(ctx, input.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEligibilityCheckFailed, err)
		}
		educationText = candidate.Education
		if language == "" {
			language = candidate.Language
		}
	}

	requirements := input.Requirements
	if requirements == nil && input.PostingID != "" {
		posting, err := h.postings.GetByID(ctx, input.PostingID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEligibilityCheckFailed, err)
		}
		requirements = posting.Eligibility.Education
	}

	loc := dictionary.ParseLocale(language)
	verdict := education.CheckEligibility(normalize.Term(educationText, loc), requirements)

	h.logger.Info("eligibility checked", map[string]interface{}{
		"candidateId": input.CandidateID,
		"postingId":   input.PostingID,
		"eligible":    verdict.Eligible,
		"rule":        verdict.Rule,
	})

	return &Output{
		Eligible:           verdict.Eligible,
		Rule:               verdict.Rule,
		MatchedRequirement: verdict.MatchedRequirement,
		Reason:             verdict.Reason,
		CheckedAt:          time.Now().UTC().Format(time.RFC3339),
	}, nil
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
