// internal/stores/candidates.go
package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"internmatch/internal/common/logger"
	"internmatch/internal/models"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const profileCacheKeyPrefix = "candidate:profile:"

// CandidateStore reads candidate profiles from Postgres with a Redis
// read-through cache in front.
type CandidateStore struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCandidateStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *CandidateStore {
	return &CandidateStore{db: db, redis: rdb, ttl: cacheTTL, logger: log}
}

const candidateColumns = `id, name, education, skills, sector_interests, preferred_locations, language, notifications_enabled, email`

// GetByID returns a single candidate profile, consulting the cache first.
// A nil redis client disables caching.
func (s *CandidateStore) GetByID(ctx context.Context, id string) (*models.CandidateProfile, error) {
	cacheKey := profileCacheKeyPrefix + id
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.CandidateProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	profile, err := scanCandidate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("candidate not found: %s", id)
		}
		return nil, fmt.Errorf("query candidate: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(profile); err == nil {
			s.redis.Set(ctx, cacheKey, data, s.ttl)
		}
	}

	return profile, nil
}

// ListOptedIn returns every candidate with notifications enabled. Dispatch
// runs fan out over the full opted-in population, so this is uncached.
func (s *CandidateStore) ListOptedIn(ctx context.Context) ([]*models.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE notifications_enabled = true`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var out []*models.CandidateProfile
	for rows.Next() {
		profile, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}

	return out, nil
}

// Invalidate drops a profile from the cache after an external update.
func (s *CandidateStore) Invalidate(ctx context.Context, id string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, profileCacheKeyPrefix+id).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", map[string]interface{}{
			"candidateId": id,
			"error":       err,
		})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row rowScanner) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Education,
		pq.Array(&profile.Skills),
		pq.Array(&profile.SectorInterests),
		pq.Array(&profile.PreferredLocations),
		&profile.Language,
		&profile.NotificationsEnabled,
		&profile.Email,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
