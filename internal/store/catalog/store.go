// internal/store/catalog/store.go

// Package catalog loads career definitions: Redis cache in front of
// PostgreSQL, falling back to the embedded catalog when neither backend
// can serve.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/engine/careers"
	"assessment-engine/internal/models"
)

const cacheKey = "careers:catalog"

type Store struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewStore builds the catalog loader. db and redis may each be nil; Load
// degrades through cache, database and the built-in catalog in that order.
func NewStore(db *sql.DB, rdb *redis.Client, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		db:     db,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-store"}),
	}
}

// Load returns the active career catalog in ranking order. A corrupt or
// empty database catalog is rejected rather than ranked against.
func (s *Store) Load(ctx context.Context) ([]models.CareerDefinition, error) {
	if catalog, ok := s.fromCache(ctx); ok {
		return catalog, nil
	}

	if s.db == nil {
		return careers.BuiltinCatalog(), nil
	}

	catalog, err := s.fromDatabase(ctx)
	if err != nil {
		s.logger.Warn("catalog query failed, serving built-in catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return careers.BuiltinCatalog(), nil
	}
	if len(catalog) == 0 {
		return careers.BuiltinCatalog(), nil
	}
	if err := careers.VerifyCatalog(catalog); err != nil {
		return nil, errors.NewCatalogLoadFailedError(err)
	}

	s.toCache(ctx, catalog)
	return catalog, nil
}

// Invalidate drops the cached catalog so the next Load reads through.
func (s *Store) Invalidate(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, cacheKey).Err()
}

func (s *Store) fromCache(ctx context.Context) ([]models.CareerDefinition, bool) {
	if s.redis == nil {
		return nil, false
	}
	val, err := s.redis.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}
	var catalog []models.CareerDefinition
	if err := json.Unmarshal([]byte(val), &catalog); err != nil || len(catalog) == 0 {
		return nil, false
	}
	return catalog, true
}

func (s *Store) toCache(ctx context.Context, catalog []models.CareerDefinition) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("catalog cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Store) fromDatabase(ctx context.Context) ([]models.CareerDefinition, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, required_subjects, required_skills,
		       salary_min, salary_max, demand_level, growth_rate, remote_friendly
		FROM career_definitions
		ORDER BY rank_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []models.CareerDefinition
	for rows.Next() {
		var c models.CareerDefinition
		var demand string
		if err := rows.Scan(
			&c.Title,
			pq.Array(&c.RequiredSubjects),
			pq.Array(&c.RequiredSkills),
			&c.SalaryMin,
			&c.SalaryMax,
			&demand,
			&c.GrowthRate,
			&c.RemoteFriendly,
		); err != nil {
			return nil, err
		}
		c.DemandLevel = models.DemandLevel(demand)
		catalog = append(catalog, c)
	}
	return catalog, rows.Err()
}
