// internal/engine/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"internmatch/internal/common/logger"
	"internmatch/internal/common/metrics"
	"internmatch/internal/engine/dictionary"
	"internmatch/internal/engine/match"
	"internmatch/internal/engine/normalize"
	"internmatch/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultMinScore      = 50
	DefaultMaxRecipients = 50
	DefaultScoreWorkers  = 8
)

var (
	ErrNilPosting       = errors.New("posting is nil")
	ErrPostingWithoutID = errors.New("posting has no identifier")
	ErrNilCandidates    = errors.New("candidate list is nil")
)

// Mailer is the outbound transport contract. Per-recipient failures are
// counted, never propagated to the caller.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

type Config struct {
	MinScore      int
	MaxRecipients int
	ScoreWorkers  int
	SendDelay     time.Duration
}

type Dispatcher struct {
	mailer Mailer
	config Config
	logger logger.Logger
}

func New(mailer Mailer, cfg Config, log logger.Logger) *Dispatcher {
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	if cfg.MaxRecipients <= 0 {
		cfg.MaxRecipients = DefaultMaxRecipients
	}
	if cfg.ScoreWorkers <= 0 {
		cfg.ScoreWorkers = DefaultScoreWorkers
	}
	return &Dispatcher{mailer: mailer, config: cfg, logger: log}
}

// Dispatch scores every deliverable candidate against the posting, keeps
// those at or above the threshold, ranks them, caps outbound volume and
// sends one localized email per retained candidate. A minScore of zero or
// below means the configured threshold; a positive value overrides it for
// this run only. An empty candidate list is a valid no-op; a nil list is
// a caller bug.
func (d *Dispatcher) Dispatch(ctx context.Context, posting *models.Posting, candidates []*models.CandidateProfile, minScore int) (*models.DispatchSummary, error) {
	if posting == nil {
		return nil, ErrNilPosting
	}
	if strings.TrimSpace(posting.ID) == "" {
		return nil, ErrPostingWithoutID
	}
	if candidates == nil {
		return nil, ErrNilCandidates
	}
	if minScore <= 0 {
		minScore = d.config.MinScore
	}

	deliverable := d.filterDeliverable(posting, candidates)
	results := d.scoreAll(posting, deliverable)

	// Keep threshold passers in input order so the descending sort
	// below stays stable against original ordering on ties.
	type scored struct {
		candidate *models.CandidateProfile
		result    *models.MatchResult
	}
	var kept []scored
	for i, res := range results {
		if res == nil {
			continue
		}
		if res.Score >= minScore {
			kept = append(kept, scored{candidate: deliverable[i], result: res})
		}
	}

	totalMatches := len(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].result.Score > kept[j].result.Score
	})

	if len(kept) > d.config.MaxRecipients {
		kept = kept[:d.config.MaxRecipients]
	}
	metrics.DispatchRecipients.Observe(float64(len(kept)))

	summary := &models.DispatchSummary{
		DispatchID:   uuid.NewString(),
		PostingID:    posting.ID,
		TotalMatches: totalMatches,
		NotifiedIDs:  append([]string(nil), posting.NotifiedCandidateIDs...),
	}

	for _, entry := range kept {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		payload := d.buildPayload(posting, entry.candidate, entry.result)
		if err := d.mailer.Send(ctx, payload.Email, payload.Subject, payload.TextBody, payload.HTMLBody); err != nil {
			summary.Failed++
			metrics.NotificationsSent.WithLabelValues("failed").Inc()
			d.logger.Error("notification send failed", map[string]interface{}{
				"error":       err,
				"candidateId": entry.candidate.ID,
				"postingId":   posting.ID,
			})
			continue
		}

		summary.Sent++
		metrics.NotificationsSent.WithLabelValues("sent").Inc()
		summary.NotifiedIDs = mergeID(summary.NotifiedIDs, entry.candidate.ID)

		if d.config.SendDelay > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(d.config.SendDelay):
			}
		}
	}

	return summary, nil
}

// filterDeliverable drops candidates that cannot or should not receive a
// notification: opted out, bad email, already notified for this posting,
// or a duplicate entry in the input list.
func (d *Dispatcher) filterDeliverable(posting *models.Posting, candidates []*models.CandidateProfile) []*models.CandidateProfile {
	already := make(map[string]bool, len(posting.NotifiedCandidateIDs))
	for _, id := range posting.NotifiedCandidateIDs {
		already[id] = true
	}

	seen := make(map[string]bool, len(candidates))
	var out []*models.CandidateProfile
	for _, c := range candidates {
		if c == nil || !c.NotificationsEnabled || !c.HasValidEmail() {
			continue
		}
		if already[c.ID] || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

// scoreAll computes match results in parallel over a bounded worker pool.
// The result slice is index-aligned with the input; a nil slot means the
// scorer rejected that candidate.
func (d *Dispatcher) scoreAll(posting *models.Posting, candidates []*models.CandidateProfile) []*models.MatchResult {
	results := make([]*models.MatchResult, len(candidates))
	sem := make(chan struct{}, d.config.ScoreWorkers)
	var wg sync.WaitGroup

	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c *models.CandidateProfile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := match.Score(c, posting)
			if err != nil {
				d.logger.Warn("scoring skipped candidate", map[string]interface{}{
					"error":       err,
					"candidateId": c.ID,
				})
				return
			}
			results[i] = res
		}(i, c)
	}
	wg.Wait()

	return results
}

// buildPayload renders the locale-specific message, translating the
// posting's canonical skill, location and duration values back into the
// candidate's language for display.
func (d *Dispatcher) buildPayload(posting *models.Posting, candidate *models.CandidateProfile, result *models.MatchResult) *models.MessagePayload {
	loc := dictionary.ParseLocale(candidate.Language)
	tmpl := templateFor(loc)

	data := map[string]interface{}{
		"name":     candidate.Name,
		"title":    posting.Title,
		"company":  posting.Company,
		"location": normalize.DisplayTerm(posting.Location, loc),
		"duration": normalize.DisplayDuration(posting.Duration, loc),
		"skills":   strings.Join(normalize.DisplayList(posting.SkillsRequired, loc), ", "),
		"score":    result.Score,
		"deadline": posting.ApplicationDeadline,
	}

	return &models.MessagePayload{
		CandidateID: candidate.ID,
		Email:       candidate.Email,
		Locale:      string(loc),
		Subject:     renderTemplate(tmpl.subject, data),
		TextBody:    renderTemplate(tmpl.text, data),
		HTMLBody:    renderTemplate(tmpl.html, data),
		Score:       result.Score,
	}
}

func mergeID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
