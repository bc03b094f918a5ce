// internal/search/indexer_test.go
package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type capturedRequest struct {
	method string
	path   string
	body   map[string]interface{}
}

// fakeElasticsearch stands in for a cluster; the product header is required
// by the v8 client's compatibility check.
func fakeElasticsearch(t *testing.T, status int, captured *capturedRequest) *elasticsearch.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.method = r.Method
			captured.path = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &captured.body)
			}
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)
	return client
}

func testResult() *models.AssessmentResult {
	return &models.AssessmentResult{
		ID:             "res-001",
		SessionID:      "sess-001",
		EducationLevel: models.LevelUndergraduate,
		Cognitive:      models.CognitiveProfile{Overall: 72},
		Typology:       models.TypologyResult{Type: "ENTP"},
		LearningStyle:  "Visual",
		Strengths:      []string{"Leadership"},
		Weaknesses:     []string{"Numerical Reasoning"},
		Recommendations: []models.CareerRecommendation{{
			Career: models.CareerDefinition{Title: "Product Manager"},
		}},
		ScoredAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ==========================
// Indexing
// ==========================

func TestIndexResult_WritesProjection(t *testing.T) {
	var captured capturedRequest
	client := fakeElasticsearch(t, http.StatusCreated, &captured)
	indexer := NewIndexer(client, "assessment-results", logger.NewTestLogger(t))

	err := indexer.IndexResult(context.Background(), testResult())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, captured.method)
	assert.Equal(t, "/assessment-results/_doc/sess-001", captured.path)

	assert.Equal(t, "res-001", captured.body["resultId"])
	assert.Equal(t, "sess-001", captured.body["sessionId"])
	assert.Equal(t, "undergraduate", captured.body["educationLevel"])
	assert.Equal(t, float64(72), captured.body["overallScore"])
	assert.Equal(t, "ENTP", captured.body["typologyType"])
	assert.Equal(t, "Product Manager", captured.body["topCareer"])
}

func TestIndexResult_NoRecommendationsOmitsTopCareer(t *testing.T) {
	var captured capturedRequest
	client := fakeElasticsearch(t, http.StatusCreated, &captured)
	indexer := NewIndexer(client, "assessment-results", logger.NewTestLogger(t))

	result := testResult()
	result.Recommendations = nil
	require.NoError(t, indexer.IndexResult(context.Background(), result))

	_, present := captured.body["topCareer"]
	assert.False(t, present)
}

func TestIndexResult_ServerErrorIsRetryable(t *testing.T) {
	client := fakeElasticsearch(t, http.StatusInternalServerError, nil)
	indexer := NewIndexer(client, "assessment-results", logger.NewTestLogger(t))

	err := indexer.IndexResult(context.Background(), testResult())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeResultIndexFailed, errors.CodeOf(err))
	assert.True(t, errors.IsRetryable(err))
}
