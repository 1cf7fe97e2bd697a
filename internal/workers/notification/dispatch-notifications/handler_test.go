// internal/workers/notification/dispatch-notifications/handler_test.go
package dispatchnotifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"internmatch/internal/common/logger"
	"internmatch/internal/engine/dispatch"
	"internmatch/internal/models"
	"internmatch/pkg/registry"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Mock Implementations
// ==========================

type mockPostingSource struct {
	GetByIDFunc  func(ctx context.Context, id string) (*models.Posting, error)
	merged       []string
	mergePosting string
	mergeErr     error
}

func (m *mockPostingSource) GetByID(ctx context.Context, id string) (*models.Posting, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPostingSource) MergeNotified(_ context.Context, postingID string, candidateIDs []string) error {
	if m.mergeErr != nil {
		return m.mergeErr
	}
	m.mergePosting = postingID
	m.merged = candidateIDs
	return nil
}

type mockCandidateSource struct {
	ListOptedInFunc func(ctx context.Context) ([]*models.CandidateProfile, error)
}

func (m *mockCandidateSource) ListOptedIn(ctx context.Context) ([]*models.CandidateProfile, error) {
	return m.ListOptedInFunc(ctx)
}

type mockMailer struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]bool
}

func (m *mockMailer) Send(_ context.Context, to, _, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("transport refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

type mockPublisher struct {
	subjects []string
	messages []string
	err      error
}

func (m *mockPublisher) Publish(_ context.Context, subject, message string) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = append(m.subjects, subject)
	m.messages = append(m.messages, message)
	return nil
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		MinScore:   50,
		SNSEnabled: true,
		Timeout:    60 * time.Second,
	}
}

func activePosting() *models.Posting {
	return &models.Posting{
		ID:             "post-001",
		Title:          "Backend Intern",
		Company:        "Acme Labs",
		Location:       "mumbai",
		SkillsRequired: []string{"python", "sql"},
		RemoteOK:       true,
		Duration:       "6 months",
		Status:         models.PostingStatusActive,
	}
}

func optedInCandidate(id string, skills ...string) *models.CandidateProfile {
	return &models.CandidateProfile{
		ID:                   id,
		Name:                 "Candidate " + id,
		Skills:               skills,
		Language:             "en-IN",
		NotificationsEnabled: true,
		Email:                id + "@example.com",
	}
}

func newTestHandler(postings *mockPostingSource, candidates *mockCandidateSource, mailer dispatch.Mailer, publisher SummaryPublisher) *Handler {
	log := logger.NewNoOpLogger()
	dispatcher := dispatch.New(mailer, dispatch.Config{MinScore: 50, MaxRecipients: 50}, log)
	return NewHandler(createTestConfig(), postings, candidates, dispatcher, publisher, log)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_DispatchesAndMerges(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(_ context.Context, id string) (*models.Posting, error) {
			assert.Equal(t, "post-001", id)
			return activePosting(), nil
		},
	}
	candidates := &mockCandidateSource{
		ListOptedInFunc: func(context.Context) ([]*models.CandidateProfile, error) {
			return []*models.CandidateProfile{
				optedInCandidate("cand-001", "python", "sql"),
				optedInCandidate("cand-002", "python"),
				optedInCandidate("cand-003"),
			}, nil
		},
	}
	mailer := &mockMailer{}
	publisher := &mockPublisher{}

	handler := newTestHandler(postings, candidates, mailer, publisher)

	output, err := handler.Execute(context.Background(), &Input{PostingID: "post-001"})
	assert.NoError(t, err)
	assert.Equal(t, 2, output.Sent) // cand-003 scores 30, below threshold
	assert.Equal(t, 0, output.Failed)
	assert.Equal(t, 2, output.TotalMatches)
	assert.ElementsMatch(t, []string{"cand-001", "cand-002"}, output.NotifiedIDs)
	assert.NotEmpty(t, output.DispatchID)
	assert.NotEmpty(t, output.DispatchedAt)

	assert.Equal(t, "post-001", postings.mergePosting)
	assert.ElementsMatch(t, []string{"cand-001", "cand-002"}, postings.merged)

	assert.Len(t, publisher.messages, 1)
	assert.Contains(t, publisher.messages[0], `"postingId":"post-001"`)
}

func TestHandler_Execute_InactivePosting(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			posting := activePosting()
			posting.Status = models.PostingStatusPaused
			return posting, nil
		},
	}

	handler := newTestHandler(postings, nil, &mockMailer{}, nil)

	_, err := handler.Execute(context.Background(), &Input{PostingID: "post-001"})
	assert.ErrorIs(t, err, ErrPostingNotActive)
}

func TestHandler_Execute_PostingLookupFailure(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return nil, errors.New("connection refused")
		},
	}

	handler := newTestHandler(postings, nil, &mockMailer{}, nil)

	_, err := handler.Execute(context.Background(), &Input{PostingID: "post-001"})
	assert.ErrorIs(t, err, ErrPostingQueryFailed)
}

func TestHandler_Execute_CandidateListFailure(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
	}
	candidates := &mockCandidateSource{
		ListOptedInFunc: func(context.Context) ([]*models.CandidateProfile, error) {
			return nil, errors.New("connection refused")
		},
	}

	handler := newTestHandler(postings, candidates, &mockMailer{}, nil)

	_, err := handler.Execute(context.Background(), &Input{PostingID: "post-001"})
	assert.ErrorIs(t, err, ErrCandidateQueryFailed)
}

func TestHandler_Execute_MergeFailure(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
		mergeErr: errors.New("deadlock detected"),
	}
	candidates := &mockCandidateSource{
		ListOptedInFunc: func(context.Context) ([]*models.CandidateProfile, error) {
			return []*models.CandidateProfile{optedInCandidate("cand-001", "python", "sql")}, nil
		},
	}

	handler := newTestHandler(postings, candidates, &mockMailer{}, nil)

	_, err := handler.Execute(context.Background(), &Input{PostingID: "post-001"})
	assert.ErrorIs(t, err, ErrNotificationMergeFailed)
}

func TestHandler_Execute_InlineCandidatesSkipStore(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
	}
	mailer := &mockMailer{}

	// nil candidate source: the inline list must be used without store access
	handler := newTestHandler(postings, nil, mailer, nil)

	output, err := handler.Execute(context.Background(), &Input{
		PostingID:  "post-001",
		Candidates: []*models.CandidateProfile{optedInCandidate("cand-001", "python", "sql")},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, output.Sent)
	assert.Equal(t, []string{"cand-001@example.com"}, mailer.sent)
}

func TestHandler_Execute_InputMinScoreOverridesDefault(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
	}
	mailer := &mockMailer{}

	handler := newTestHandler(postings, nil, mailer, nil)

	// cand-001 scores 70; the job raises the bar to 90 for this run
	output, err := handler.Execute(context.Background(), &Input{
		PostingID:  "post-001",
		MinScore:   90,
		Candidates: []*models.CandidateProfile{optedInCandidate("cand-001", "python", "sql")},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, output.Sent)
	assert.Equal(t, 0, output.TotalMatches)
	assert.Empty(t, mailer.sent)

	// absent minScore falls back to the configured threshold of 50
	output, err = handler.Execute(context.Background(), &Input{
		PostingID:  "post-001",
		Candidates: []*models.CandidateProfile{optedInCandidate("cand-001", "python", "sql")},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, output.Sent)
}

func TestHandler_Execute_SendFailuresAreCounted(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
	}
	var inline []*models.CandidateProfile
	for i := 0; i < 5; i++ {
		inline = append(inline, optedInCandidate(fmt.Sprintf("cand-%03d", i), "python", "sql"))
	}
	mailer := &mockMailer{failFor: map[string]bool{"cand-002@example.com": true}}

	handler := newTestHandler(postings, nil, mailer, nil)

	output, err := handler.Execute(context.Background(), &Input{
		PostingID:  "post-001",
		Candidates: inline,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, output.Sent)
	assert.Equal(t, 1, output.Failed)
	assert.NotContains(t, output.NotifiedIDs, "cand-002")
}

func TestHandler_Execute_PublisherFailureDoesNotFailJob(t *testing.T) {
	postings := &mockPostingSource{
		GetByIDFunc: func(context.Context, string) (*models.Posting, error) {
			return activePosting(), nil
		},
	}
	publisher := &mockPublisher{err: errors.New("topic gone")}

	handler := newTestHandler(postings, nil, &mockMailer{}, publisher)

	output, err := handler.Execute(context.Background(), &Input{
		PostingID:  "post-001",
		Candidates: []*models.CandidateProfile{optedInCandidate("cand-001", "python", "sql")},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, output.Sent)
}

// ==========================
// Input Validation Tests
// ==========================

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid minimal input",
			raw:  map[string]interface{}{"postingId": "post-001"},
		},
		{
			name: "valid with score and trigger",
			raw: map[string]interface{}{
				"postingId": "post-001",
				"minScore":  60,
				"trigger":   TriggerManual,
			},
		},
		{
			name:    "missing postingId",
			raw:     map[string]interface{}{"minScore": 60},
			wantErr: true,
		},
		{
			name:    "empty postingId",
			raw:     map[string]interface{}{"postingId": ""},
			wantErr: true,
		},
		{
			name: "score out of range",
			raw: map[string]interface{}{
				"postingId": "post-001",
				"minScore":  150,
			},
			wantErr: true,
		},
		{
			name: "unknown trigger",
			raw: map[string]interface{}{
				"postingId": "post-001",
				"trigger":   "cron",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.raw, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInput_RegistrySchema(t *testing.T) {
	reg, err := registry.LoadRegistry("../../../../configs/task-registry.json")
	assert.NoError(t, err)

	task, err := reg.FindTask(TaskType)
	assert.NoError(t, err)
	assert.NotNil(t, task.InputSchema)

	assert.NoError(t, validateInput(map[string]interface{}{
		"postingId": "post-001",
		"minScore":  60,
	}, task.InputSchema))

	assert.Error(t, validateInput(map[string]interface{}{
		"minScore": 60,
	}, task.InputSchema))
}
