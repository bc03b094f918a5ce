// internal/service/service.go

// Package service orchestrates one scoring pass end to end: validate the
// bundle, run the engine, then persist, index and notify. The scored
// result always comes back to the caller; downstream side effects degrade
// to logged warnings so a storage outage never costs a participant their
// profile.
package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/common/metrics"
	"assessment-engine/internal/common/observability"
	"assessment-engine/internal/engine/careers"
	"assessment-engine/internal/engine/pipeline"
	"assessment-engine/internal/models"
	"assessment-engine/internal/notify"
	"assessment-engine/internal/validation"
)

// Downstream collaborators, abstracted for testing. Any of them may be nil
// on a Service; the corresponding step is skipped.
type ResultStore interface {
	Save(ctx context.Context, result *models.AssessmentResult) error
}

type CatalogLoader interface {
	Load(ctx context.Context) ([]models.CareerDefinition, error)
}

type ResultIndexer interface {
	IndexResult(ctx context.Context, result *models.AssessmentResult) error
}

type CompletionNotifier interface {
	Send(ctx context.Context, recipient notify.Recipient, result *models.AssessmentResult) (*notify.Receipt, error)
}

type Service struct {
	engine   *pipeline.Engine
	catalog  CatalogLoader
	store    ResultStore
	indexer  ResultIndexer
	notifier CompletionNotifier
	obs      *observability.Observability
	logger   logger.Logger
}

func New(engine *pipeline.Engine, catalog CatalogLoader, store ResultStore, indexer ResultIndexer, notifier CompletionNotifier, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		engine:   engine,
		catalog:  catalog,
		store:    store,
		indexer:  indexer,
		notifier: notifier,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "assessment-service"}),
	}
}

// ScoreRaw validates and decodes a raw JSON bundle, then scores it.
// Validation failures are the only errors this path returns.
func (s *Service) ScoreRaw(ctx context.Context, raw []byte, recipient notify.Recipient) (*models.AssessmentResult, error) {
	bundle, err := validation.ParseBundle(raw)
	if err != nil {
		metrics.AssessmentsFailed.WithLabelValues(string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	return s.Score(ctx, bundle, recipient), nil
}

// Score runs the full pipeline over an already-validated bundle. Catalog,
// persistence, indexing and notification problems are logged and skipped.
func (s *Service) Score(ctx context.Context, bundle *models.AssessmentBundle, recipient notify.Recipient) *models.AssessmentResult {
	start := time.Now()
	if s.obs != nil {
		var span trace.Span
		ctx, span = s.obs.StartSpan(ctx, "assessment.score")
		defer span.End()
	}

	catalog := s.loadCatalog(ctx)
	scored := s.engine.Score(*bundle, catalog)
	result := &scored

	s.recordMetrics(result, time.Since(start))
	if s.obs != nil {
		s.obs.RecordSessionScored(ctx, string(result.EducationLevel))
		s.obs.RecordSessionDuration(ctx, time.Since(start), "scored")
	}

	s.logger.Info("assessment scored", map[string]interface{}{
		"sessionId":       result.SessionID,
		"educationLevel":  string(result.EducationLevel),
		"typologyType":    result.Typology.Type,
		"overallScore":    result.Cognitive.Overall,
		"recommendations": len(result.Recommendations),
	})

	if s.store != nil {
		if err := s.store.Save(ctx, result); err != nil {
			s.warn("result persistence failed", result.SessionID, err)
		}
	}
	if s.indexer != nil {
		if err := s.indexer.IndexResult(ctx, result); err != nil {
			s.warn("result indexing failed", result.SessionID, err)
		}
	}
	if s.notifier != nil {
		if _, err := s.notifier.Send(ctx, recipient, result); err != nil {
			s.warn("completion notification failed", result.SessionID, err)
		}
	}

	return result
}

// loadCatalog falls back to the built-in catalog when the configured
// source cannot serve; ranking never blocks on catalog availability.
func (s *Service) loadCatalog(ctx context.Context) []models.CareerDefinition {
	if s.catalog == nil {
		return careers.BuiltinCatalog()
	}
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		s.logger.Warn("catalog load failed, using built-in catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return careers.BuiltinCatalog()
	}
	return catalog
}

func (s *Service) recordMetrics(result *models.AssessmentResult, elapsed time.Duration) {
	level := string(result.EducationLevel)
	metrics.AssessmentsScored.WithLabelValues(level).Inc()
	metrics.ScoringDuration.WithLabelValues(level).Observe(elapsed.Seconds())
	metrics.RecommendationsEmitted.Observe(float64(len(result.Recommendations)))

	metrics.InstrumentScore.WithLabelValues("cognitive", "overall").Observe(float64(result.Cognitive.Overall))
	metrics.InstrumentScore.WithLabelValues("typology", "extraversion").Observe(float64(result.Typology.Extraversion))
	metrics.InstrumentScore.WithLabelValues("bigfive", "openness").Observe(float64(result.BigFive.Openness))
	metrics.InstrumentScore.WithLabelValues("bigfive", "neuroticism").Observe(float64(result.BigFive.Neuroticism))
	metrics.InstrumentScore.WithLabelValues("workstyle", "leadership").Observe(float64(result.WorkStyle.Leadership))
}

func (s *Service) warn(msg, sessionID string, err error) {
	metrics.AssessmentsFailed.WithLabelValues(string(errors.CodeOf(err))).Inc()
	s.logger.Warn(msg, map[string]interface{}{
		"sessionId": sessionID,
		"error":     err.Error(),
		"retryable": errors.IsRetryable(err),
	})
}
