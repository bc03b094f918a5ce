// internal/store/results/store.go

// Package results persists scored assessment results in PostgreSQL, with an
// optional Redis cache in front of session lookups. One row per session;
// rescoring a session replaces the stored result wholesale.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

const cacheKeyPrefix = "results:session:"

type Store struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewStore builds the result store. rdb may be nil; lookups then always hit
// the database.
func NewStore(db *sql.DB, rdb *redis.Client, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		db:     db,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "results-store"}),
	}
}

// Save upserts a result keyed by session. The profile and recommendation
// payloads go into JSONB columns; the columns the search layer filters on
// stay relational.
func (s *Store) Save(ctx context.Context, result *models.AssessmentResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return errors.NewResultStoreFailedError(fmt.Errorf("marshal result: %w", err))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessment_results (
			id, session_id, education_level, overall_score,
			learning_style, payload, scored_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO UPDATE SET
			id = EXCLUDED.id,
			education_level = EXCLUDED.education_level,
			overall_score = EXCLUDED.overall_score,
			learning_style = EXCLUDED.learning_style,
			payload = EXCLUDED.payload,
			scored_at = EXCLUDED.scored_at`,
		result.ID,
		result.SessionID,
		string(result.EducationLevel),
		result.Cognitive.Overall,
		result.LearningStyle,
		payload,
		result.ScoredAt,
	)
	if err != nil {
		return errors.NewResultStoreFailedError(err)
	}

	s.toCache(ctx, result.SessionID, payload)

	s.logger.Info("assessment result stored", map[string]interface{}{
		"sessionId": result.SessionID,
		"resultId":  result.ID,
	})
	return nil
}

// GetBySession loads the stored result for one session, cache first.
func (s *Store) GetBySession(ctx context.Context, sessionID string) (*models.AssessmentResult, error) {
	if result, ok := s.fromCache(ctx, sessionID); ok {
		return result, nil
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM assessment_results WHERE session_id = $1`,
		sessionID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NewResultNotFoundError(sessionID)
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("select assessment_results", err)
	}

	var result models.AssessmentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, errors.NewQueryExecutionFailedError("decode assessment_results payload", err)
	}

	s.toCache(ctx, sessionID, payload)
	return &result, nil
}

// Delete removes a session's result. Missing rows are not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM assessment_results WHERE session_id = $1`, sessionID)
	if err != nil {
		return errors.NewQueryExecutionFailedError("delete assessment_results", err)
	}
	if s.redis != nil {
		if err := s.redis.Del(ctx, cacheKeyPrefix+sessionID).Err(); err != nil {
			s.logger.Warn("result cache invalidation failed", map[string]interface{}{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
		}
	}
	return nil
}

func (s *Store) fromCache(ctx context.Context, sessionID string) (*models.AssessmentResult, bool) {
	if s.redis == nil {
		return nil, false
	}
	val, err := s.redis.Get(ctx, cacheKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, false
	}
	var result models.AssessmentResult
	if err := json.Unmarshal([]byte(val), &result); err != nil || result.SessionID == "" {
		return nil, false
	}
	return &result, true
}

func (s *Store) toCache(ctx context.Context, sessionID string, payload []byte) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("result cache write failed", map[string]interface{}{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
	}
}
