// internal/stores/postings.go
package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"internmatch/internal/common/logger"
	"internmatch/internal/models"

	"github.com/lib/pq"
)

// PostingStore reads postings from Postgres and owns the merge write of
// the notified-candidate set.
type PostingStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostingStore(db *sql.DB, log logger.Logger) *PostingStore {
	return &PostingStore{db: db, logger: log}
}

// GetByID loads a posting together with its sectors and notified set.
func (s *PostingStore) GetByID(ctx context.Context, id string) (*models.Posting, error) {
	query := `SELECT id, title, company, location, skills_required, remote_ok, duration,
		stipend_amount, application_deadline, eligibility_education, status, notified_candidate_ids, sectors
		FROM postings WHERE id = $1`

	var p models.Posting
	var sectorsJSON []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Title,
		&p.Company,
		&p.Location,
		pq.Array(&p.SkillsRequired),
		&p.RemoteOK,
		&p.Duration,
		&p.StipendAmount,
		&p.ApplicationDeadline,
		pq.Array(&p.Eligibility.Education),
		&p.Status,
		pq.Array(&p.NotifiedCandidateIDs),
		&sectorsJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("posting not found: %s", id)
		}
		return nil, fmt.Errorf("query posting: %w", err)
	}

	if len(sectorsJSON) > 0 {
		if err := json.Unmarshal(sectorsJSON, &p.Sectors); err != nil {
			return nil, fmt.Errorf("decode posting sectors: %w", err)
		}
	}

	return &p, nil
}

// MergeNotified appends candidate IDs into the posting's notified set in a
// single statement, deduplicating on the database side so concurrent
// dispatches cannot double-record a candidate.
func (s *PostingStore) MergeNotified(ctx context.Context, postingID string, candidateIDs []string) error {
	if len(candidateIDs) == 0 {
		return nil
	}

	query := `UPDATE postings
		SET notified_candidate_ids = (
			SELECT array_agg(DISTINCT id) FROM unnest(notified_candidate_ids || $2::text[]) AS id
		)
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, postingID, pq.Array(candidateIDs))
	if err != nil {
		return fmt.Errorf("merge notified candidates: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("posting not found: %s", postingID)
	}

	return nil
}
