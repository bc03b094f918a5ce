// internal/service/service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/engine/careers"
	"assessment-engine/internal/engine/pipeline"
	"assessment-engine/internal/models"
	"assessment-engine/internal/notify"
)

// ==========================
// Mock Implementations
// ==========================

type mockStore struct {
	saved []*models.AssessmentResult
	err   error
}

func (m *mockStore) Save(ctx context.Context, result *models.AssessmentResult) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, result)
	return nil
}

type mockCatalog struct {
	catalog []models.CareerDefinition
	err     error
}

func (m *mockCatalog) Load(ctx context.Context) ([]models.CareerDefinition, error) {
	return m.catalog, m.err
}

type mockIndexer struct {
	indexed []*models.AssessmentResult
	err     error
}

func (m *mockIndexer) IndexResult(ctx context.Context, result *models.AssessmentResult) error {
	if m.err != nil {
		return m.err
	}
	m.indexed = append(m.indexed, result)
	return nil
}

type mockNotifier struct {
	sent []string
	err  error
}

func (m *mockNotifier) Send(ctx context.Context, recipient notify.Recipient, result *models.AssessmentResult) (*notify.Receipt, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, result.SessionID)
	return &notify.Receipt{Status: notify.StatusSent}, nil
}

// ==========================
// Test Helper Functions
// ==========================

func newTestService(t *testing.T, catalog CatalogLoader, store ResultStore, indexer ResultIndexer, notifier CompletionNotifier) *Service {
	t.Helper()
	engine, err := pipeline.New(map[string]int{"numerical": 2}, 3)
	require.NoError(t, err)
	return New(engine, catalog, store, indexer, notifier, nil, logger.NewTestLogger(t))
}

func validRaw() []byte {
	return []byte(`{
		"sessionId": "sess-1",
		"educationLevel": "undergraduate",
		"cognitiveResponses": [
			{"category": "numerical", "isCorrect": true},
			{"category": "numerical", "isCorrect": false}
		]
	}`)
}

// ==========================
// Happy Path
// ==========================

func TestScoreRaw_FullPipeline(t *testing.T) {
	store := &mockStore{}
	indexer := &mockIndexer{}
	notifier := &mockNotifier{}
	svc := newTestService(t, &mockCatalog{catalog: careers.BuiltinCatalog()}, store, indexer, notifier)

	result, err := svc.ScoreRaw(context.Background(), validRaw(), notify.Recipient{Email: "a@b.c"})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, 50, result.Cognitive.NumericalReasoning)
	assert.Len(t, result.Recommendations, 3)

	require.Len(t, store.saved, 1)
	require.Len(t, indexer.indexed, 1)
	assert.Equal(t, []string{"sess-1"}, notifier.sent)
}

func TestScoreRaw_InvalidBundleRejected(t *testing.T) {
	store := &mockStore{}
	svc := newTestService(t, nil, store, nil, nil)

	_, err := svc.ScoreRaw(context.Background(), []byte(`{"educationLevel": "secondary"}`), notify.Recipient{})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBundleInvalid, errors.CodeOf(err))
	assert.Empty(t, store.saved)
}

// ==========================
// Degradation
// ==========================

func TestScore_StoreFailureStillReturnsResult(t *testing.T) {
	store := &mockStore{err: errors.NewResultStoreFailedError(assert.AnError)}
	indexer := &mockIndexer{}
	svc := newTestService(t, nil, store, indexer, nil)

	result := svc.Score(context.Background(), &models.AssessmentBundle{
		SessionID:      "sess-2",
		EducationLevel: models.LevelSecondary,
	}, notify.Recipient{})

	require.NotNil(t, result)
	assert.Equal(t, "sess-2", result.SessionID)
	// Indexing still runs after a failed save.
	assert.Len(t, indexer.indexed, 1)
}

func TestScore_NotifierFailureStillReturnsResult(t *testing.T) {
	notifier := &mockNotifier{err: errors.NewNotificationFailedError("email", assert.AnError)}
	svc := newTestService(t, nil, nil, nil, notifier)

	result := svc.Score(context.Background(), &models.AssessmentBundle{
		SessionID:      "sess-3",
		EducationLevel: models.LevelSecondary,
	}, notify.Recipient{Email: "a@b.c"})

	require.NotNil(t, result)
	assert.Empty(t, notifier.sent)
}

func TestScore_CatalogFailureFallsBackToBuiltin(t *testing.T) {
	svc := newTestService(t, &mockCatalog{err: errors.NewCatalogLoadFailedError(assert.AnError)}, nil, nil, nil)

	result := svc.Score(context.Background(), &models.AssessmentBundle{
		SessionID:      "sess-4",
		EducationLevel: models.LevelSecondary,
	}, notify.Recipient{})

	require.NotNil(t, result)
	// Built-in catalog has more than enough entries for the top-3 cut.
	assert.Len(t, result.Recommendations, 3)
}

func TestScore_NilCollaboratorsSkipSteps(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, nil)

	result := svc.Score(context.Background(), &models.AssessmentBundle{
		SessionID:      "sess-5",
		EducationLevel: models.LevelMasters,
	}, notify.Recipient{})

	require.NotNil(t, result)
	assert.Equal(t, "ISFP", result.Typology.Type)
}
