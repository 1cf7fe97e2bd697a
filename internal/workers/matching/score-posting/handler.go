// internal/workers/matching/score-posting/handler.go
package scoreposting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	apperrors "internmatch/internal/common/errors"
	"internmatch/internal/common/logger"
	"internmatch/internal/common/metrics"
	"internmatch/internal/engine/match"
	"internmatch/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-posting"
)

var (
	ErrMatchScoreFailed = errors.New("MATCH_SCORE_FAILED")
	ErrSearchFailed     = errors.New("SEARCH_QUERY_FAILED")
)

// CandidateSource supplies candidate profiles; implemented by
// stores.CandidateStore, mocked in tests.
type CandidateSource interface {
	GetByID(ctx context.Context, id string) (*models.CandidateProfile, error)
}

// PostingSource supplies the active posting set for ranking.
type PostingSource interface {
	ActivePostings(ctx context.Context, maxResults int) ([]*models.Posting, error)
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
		code := apperrors.ErrCodeMatchScoreFailed
		if errors.Is(err, ErrSearchFailed) {
			code = apperrors.ErrCodeSearchQueryFailed
		}
		h.failJob(client, job, apperrors.New(code, err))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

// execute scores one candidate either against a single posting supplied
// inline, or against every active posting when none is given. Ranking is
// from the candidate's perspective, descending by score.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	candidate := input.Candidate
	if candidate == nil {
		if input.CandidateID == "" {
			return nil, fmt.Errorf("%w: candidateId or candidate is required", ErrMatchScoreFailed)
		}
		var err error
		candidate, err = h.candidates.GetByID(ctx, input.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatchScoreFailed, err)
		}
	}

	scoredAt := time.Now().UTC().Format(time.RFC3339)

	if input.Posting != nil {
		result, err := match.Score(candidate, input.Posting)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatchScoreFailed, err)
		}
		metrics.MatchesComputed.Inc()

		h.logger.Info("posting scored", map[string]interface{}{
			"candidateId": result.CandidateID,
			"postingId":   result.PostingID,
			"score":       result.Score,
		})
		return &Output{Match: result, ScoredAt: scoredAt}, nil
	}

	maxResults := input.MaxResults
	if maxResults <= 0 || maxResults > h.config.MaxMatches {
		maxResults = h.config.MaxMatches
	}

	postings, err := h.postings.ActivePostings(ctx, h.config.MaxMatches*5)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	var results []*models.MatchResult
	for _, posting := range postings {
		result, err := match.Score(candidate, posting)
		if err != nil {
			h.logger.Warn("skipping unscorable posting", map[string]interface{}{
				"error": err,
			})
			continue
		}
		metrics.MatchesComputed.Inc()
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	h.logger.Info("postings ranked", map[string]interface{}{
		"candidateId": candidate.ID,
		"considered":  len(postings),
		"returned":    len(results),
	})

	return &Output{Matches: results, ScoredAt: scoredAt}, nil
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
