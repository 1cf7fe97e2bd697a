package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"internmatch/internal/common/logger"
	"internmatch/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Mock Implementations
// ==========================

type mockMailer struct {
	mu      sync.Mutex
	sent    []*sentMessage
	failFor map[string]bool
}

type sentMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

func (m *mockMailer) Send(_ context.Context, to, subject, text, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[to] {
		return errors.New("transport refused")
	}
	m.sent = append(m.sent, &sentMessage{To: to, Subject: subject, Text: text, HTML: html})
	return nil
}

// ==========================
// Test Helper Functions
// ==========================

func testPosting() *models.Posting {
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

// both skills -> 70, one skill -> 50 against testPosting
func testCandidate(id string, skills ...string) *models.CandidateProfile {
	return &models.CandidateProfile{
		ID:                   id,
		Name:                 "Candidate " + id,
		Skills:               skills,
		Language:             "en-IN",
		NotificationsEnabled: true,
		Email:                id + "@example.com",
	}
}

func newTestDispatcher(mailer Mailer, cfg Config) *Dispatcher {
	return New(mailer, cfg, logger.NewNoOpLogger())
}

// ==========================
// Core Functionality Tests
// ==========================

func TestDispatch_FailsFastOnContractViolations(t *testing.T) {
	d := newTestDispatcher(&mockMailer{}, Config{})

	_, err := d.Dispatch(context.Background(), nil, []*models.CandidateProfile{}, 0)
	assert.ErrorIs(t, err, ErrNilPosting)

	_, err = d.Dispatch(context.Background(), &models.Posting{}, []*models.CandidateProfile{}, 0)
	assert.ErrorIs(t, err, ErrPostingWithoutID)

	_, err = d.Dispatch(context.Background(), testPosting(), nil, 0)
	assert.ErrorIs(t, err, ErrNilCandidates)
}

func TestDispatch_EmptyCandidateListIsValid(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{})

	summary, err := d.Dispatch(context.Background(), testPosting(), []*models.CandidateProfile{}, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.TotalMatches)
	assert.NotEmpty(t, summary.DispatchID)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_ThresholdAndRanking(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 60})

	candidates := []*models.CandidateProfile{
		testCandidate("low", "python"),           // 50, below threshold
		testCandidate("high-a", "python", "sql"), // 70
		testCandidate("none"),                    // 30, below threshold
		testCandidate("high-b", "python", "sql"), // 70
	}

	summary, err := d.Dispatch(context.Background(), testPosting(), candidates, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 2, summary.TotalMatches)

	// ties keep input order
	assert.Equal(t, "high-a@example.com", mailer.sent[0].To)
	assert.Equal(t, "high-b@example.com", mailer.sent[1].To)
}

func TestDispatch_PerCallMinScoreOverridesConfig(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 50})

	candidates := []*models.CandidateProfile{
		testCandidate("seventy", "python", "sql"), // 70
		testCandidate("fifty", "python"),          // 50
	}

	summary, err := d.Dispatch(context.Background(), testPosting(), candidates, 90)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 0, summary.TotalMatches)
	assert.Empty(t, mailer.sent)

	// zero falls back to the configured threshold
	summary, err = d.Dispatch(context.Background(), testPosting(), candidates, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Sent)
}

func TestDispatch_CapAndFailureIsolation(t *testing.T) {
	mailer := &mockMailer{failFor: map[string]bool{"cand-008@example.com": true}}
	d := newTestDispatcher(mailer, Config{MinScore: 50, MaxRecipients: 50})

	var candidates []*models.CandidateProfile
	for i := 0; i < 120; i++ {
		skills := []string{"python"}
		if i%2 == 0 {
			skills = append(skills, "sql")
		}
		candidates = append(candidates, testCandidate(fmt.Sprintf("cand-%03d", i), skills...))
	}

	summary, err := d.Dispatch(context.Background(), testPosting(), candidates, 0)
	assert.NoError(t, err)
	assert.Equal(t, 120, summary.TotalMatches)
	assert.Equal(t, 49, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, mailer.sent, 49)

	// the cap keeps the 50 highest scores: even-indexed candidates score 70,
	// odd-indexed score 50, so only even ones survive
	for _, msg := range mailer.sent {
		var idx int
		_, scanErr := fmt.Sscanf(msg.To, "cand-%03d@example.com", &idx)
		assert.NoError(t, scanErr)
		assert.Equal(t, 0, idx%2, "recipient %s should be even-indexed", msg.To)
	}
	assert.NotContains(t, summary.NotifiedIDs, "cand-008")
}

func TestDispatch_SkipsUndeliverableCandidates(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 50})

	optedOut := testCandidate("opted-out", "python", "sql")
	optedOut.NotificationsEnabled = false

	badEmail := testCandidate("bad-email", "python", "sql")
	badEmail.Email = "not-an-email"

	duplicate := testCandidate("dup", "python", "sql")

	posting := testPosting()
	posting.NotifiedCandidateIDs = []string{"already"}
	already := testCandidate("already", "python", "sql")

	candidates := []*models.CandidateProfile{
		optedOut, badEmail, already, duplicate, duplicate,
	}

	summary, err := d.Dispatch(context.Background(), posting, candidates, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, []string{"already", "dup"}, summary.NotifiedIDs)
}

func TestDispatch_LocalizedPayload(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 50})

	candidate := testCandidate("hindi", "python", "sql")
	candidate.Language = "hi-IN"

	summary, err := d.Dispatch(context.Background(), testPosting(), []*models.CandidateProfile{candidate}, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)

	msg := mailer.sent[0]
	assert.Contains(t, msg.Subject, "Backend Intern")
	assert.Contains(t, msg.Text, "पायथन")   // skills re-translated for display
	assert.Contains(t, msg.Text, "6 महीने") // duration unit re-translated
	assert.Contains(t, msg.Text, "मुंबई")   // location re-translated
	assert.NotContains(t, msg.Text, "{{")   // no leaked placeholders
	assert.NotContains(t, msg.Subject, "{{")
}

func TestDispatch_IdempotentMerge(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 50})
	posting := testPosting()

	first, err := d.Dispatch(context.Background(), posting, []*models.CandidateProfile{
		testCandidate("a", "python", "sql"),
		testCandidate("b", "python", "sql"),
	}, 0)
	assert.NoError(t, err)

	posting.NotifiedCandidateIDs = first.NotifiedIDs
	second, err := d.Dispatch(context.Background(), posting, []*models.CandidateProfile{
		testCandidate("c", "python", "sql"),
	}, 0)
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, second.NotifiedIDs)

	seen := map[string]int{}
	for _, id := range second.NotifiedIDs {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "duplicate notified id %s", id)
	}
}

func TestDispatch_CancelledContextStopsBatch(t *testing.T) {
	mailer := &mockMailer{}
	d := newTestDispatcher(mailer, Config{MinScore: 50})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := d.Dispatch(ctx, testPosting(), []*models.CandidateProfile{
		testCandidate("a", "python", "sql"),
	}, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Sent)
}
