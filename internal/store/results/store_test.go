// internal/store/results/store_test.go
package results

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func testResult() *models.AssessmentResult {
	return &models.AssessmentResult{
		ID:             "res-001",
		SessionID:      "sess-001",
		EducationLevel: models.LevelUndergraduate,
		Cognitive:      models.CognitiveProfile{NumericalReasoning: 50, Overall: 50},
		Strengths:      []string{"Leadership"},
		Weaknesses:     []string{"Numerical Reasoning"},
		LearningStyle:  "Visual",
		ScoredAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ==========================
// Save
// ==========================

func TestSave_InsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	result := testResult()
	mock.ExpectExec(`INSERT INTO assessment_results`).
		WithArgs(
			"res-001",
			"sess-001",
			"undergraduate",
			50,
			"Visual",
			sqlmock.AnyArg(), // JSON payload
			result.ScoredAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	assert.NoError(t, store.Save(context.Background(), result))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ExecFailureIsRetryable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO assessment_results`).
		WillReturnError(assert.AnError)

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	err = store.Save(context.Background(), testResult())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResultStoreFailed, errors.CodeOf(err))
	assert.True(t, errors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// GetBySession
// ==========================

func TestGetBySession_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload := `{"id":"res-001","sessionId":"sess-001","educationLevel":"undergraduate","learningStyle":"Visual"}`
	mock.ExpectQuery(`SELECT payload FROM assessment_results`).
		WithArgs("sess-001").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(payload)))

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	result, err := store.GetBySession(context.Background(), "sess-001")

	require.NoError(t, err)
	assert.Equal(t, "res-001", result.ID)
	assert.Equal(t, models.LevelUndergraduate, result.EducationLevel)
	assert.Equal(t, "Visual", result.LearningStyle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySession_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT payload FROM assessment_results`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	result, err := store.GetBySession(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errors.ErrCodeResultNotFound, errors.CodeOf(err))
	assert.False(t, errors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySession_CorruptPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT payload FROM assessment_results`).
		WithArgs("sess-001").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{not json`)))

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	_, err = store.GetBySession(context.Background(), "sess-001")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeQueryExecutionFailed, errors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Redis cache-aside
// ==========================

func TestSave_PopulatesCacheForLookup(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	result := testResult()
	mock.ExpectExec(`INSERT INTO assessment_results`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewStore(db, rdb, time.Minute, logger.NewTestLogger(t))
	require.NoError(t, store.Save(context.Background(), result))
	require.True(t, srv.Exists("results:session:sess-001"))

	// No SELECT expectation registered: the lookup must be served from cache.
	got, err := store.GetBySession(context.Background(), "sess-001")
	require.NoError(t, err)
	assert.Equal(t, "res-001", got.ID)
	assert.Equal(t, "Visual", got.LearningStyle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySession_CorruptCacheFallsThroughToDatabase(t *testing.T) {
	srv := miniredis.RunT(t)
	require.NoError(t, srv.Set("results:session:sess-001", `{not json`))
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload := `{"id":"res-001","sessionId":"sess-001","educationLevel":"undergraduate","learningStyle":"Visual"}`
	mock.ExpectQuery(`SELECT payload FROM assessment_results`).
		WithArgs("sess-001").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(payload)))

	store := NewStore(db, rdb, time.Minute, logger.NewTestLogger(t))
	result, err := store.GetBySession(context.Background(), "sess-001")

	require.NoError(t, err)
	assert.Equal(t, "res-001", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_InvalidatesCache(t *testing.T) {
	srv := miniredis.RunT(t)
	require.NoError(t, srv.Set("results:session:sess-001", `{"sessionId":"sess-001"}`))
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assessment_results`).
		WithArgs("sess-001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db, rdb, time.Minute, logger.NewTestLogger(t))
	require.NoError(t, store.Delete(context.Background(), "sess-001"))
	assert.False(t, srv.Exists("results:session:sess-001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Delete
// ==========================

func TestDelete_MissingRowIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM assessment_results`).
		WithArgs("sess-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewStore(db, nil, 0, logger.NewTestLogger(t))
	assert.NoError(t, store.Delete(context.Background(), "sess-gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
