// internal/search/indexer.go

// Package search mirrors scored results into Elasticsearch so the
// reporting side can query across sessions.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

type Indexer struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewIndexer(client *elasticsearch.Client, index string, log logger.Logger) *Indexer {
	return &Indexer{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "search-indexer"}),
	}
}

// resultDocument is the flattened projection the reporting queries filter
// on. The full payload stays in PostgreSQL; the index holds only what gets
// aggregated.
type resultDocument struct {
	ResultID       string   `json:"resultId"`
	SessionID      string   `json:"sessionId"`
	EducationLevel string   `json:"educationLevel"`
	OverallScore   int      `json:"overallScore"`
	TypologyType   string   `json:"typologyType"`
	LearningStyle  string   `json:"learningStyle"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	TopCareer      string   `json:"topCareer,omitempty"`
	ScoredAt       string   `json:"scoredAt"`
}

// IndexResult writes the result's search projection, keyed by session so
// rescoring overwrites the previous document.
func (i *Indexer) IndexResult(ctx context.Context, result *models.AssessmentResult) error {
	doc := resultDocument{
		ResultID:       result.ID,
		SessionID:      result.SessionID,
		EducationLevel: string(result.EducationLevel),
		OverallScore:   result.Cognitive.Overall,
		TypologyType:   result.Typology.Type,
		LearningStyle:  result.LearningStyle,
		Strengths:      result.Strengths,
		Weaknesses:     result.Weaknesses,
		ScoredAt:       result.ScoredAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if len(result.Recommendations) > 0 {
		doc.TopCareer = result.Recommendations[0].Career.Title
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return errors.NewResultIndexFailedError(fmt.Errorf("marshal document: %w", err))
	}

	res, err := i.client.Index(
		i.index,
		bytes.NewReader(body),
		i.client.Index.WithDocumentID(result.SessionID),
		i.client.Index.WithContext(ctx),
	)
	if err != nil {
		return errors.NewResultIndexFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewResultIndexFailedError(fmt.Errorf("index response: %s", res.String()))
	}

	i.logger.Debug("result indexed", map[string]interface{}{
		"sessionId": result.SessionID,
		"index":     i.index,
	})
	return nil
}
