// internal/engine/pipeline/pipeline.go

// Package pipeline runs all four instruments over one assessment bundle and
// folds the outputs into a single result. Instruments are independent pure
// reductions, so they score concurrently and merge in the aggregation step.
package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"assessment-engine/internal/engine/aggregate"
	"assessment-engine/internal/engine/bigfive"
	"assessment-engine/internal/engine/careers"
	"assessment-engine/internal/engine/cognitive"
	"assessment-engine/internal/engine/typology"
	"assessment-engine/internal/engine/workstyle"
	"assessment-engine/internal/models"
)

// Engine scores assessment bundles against static, read-only banks loaded
// once at construction. Engines are safe for concurrent use; Score shares
// nothing mutable across invocations.
type Engine struct {
	bank           []models.Question
	scenarios      []typology.Scenario
	bigFiveItems   []bigfive.Item
	workStyleItems []workstyle.Item
	questionLimits map[string]int
	topN           int
}

// New builds an engine over the built-in banks, verifying every static
// table before first use.
func New(questionLimits map[string]int, topN int) (*Engine, error) {
	e := &Engine{
		bank:           cognitive.Bank(),
		scenarios:      typology.Scenarios(),
		bigFiveItems:   bigfive.Items(),
		workStyleItems: workstyle.Items(),
		questionLimits: questionLimits,
		topN:           topN,
	}

	if err := cognitive.VerifyBank(e.bank); err != nil {
		return nil, err
	}
	if err := typology.VerifyScenarios(e.scenarios); err != nil {
		return nil, err
	}
	if err := bigfive.VerifyItems(e.bigFiveItems); err != nil {
		return nil, err
	}
	if err := workstyle.VerifyItems(e.workStyleItems); err != nil {
		return nil, err
	}
	return e, nil
}

// SelectQuestions picks the session's cognitive questions for an education
// level, in bank order.
func (e *Engine) SelectQuestions(level models.EducationLevel) map[models.CognitiveCategory][]models.Question {
	return cognitive.SelectQuestions(e.bank, level, e.questionLimits)
}

// Score reduces one bundle to a complete result. The four instruments run
// in parallel; each writes only its own field before the merge.
func (e *Engine) Score(bundle models.AssessmentBundle, catalog []models.CareerDefinition) models.AssessmentResult {
	administered := cognitive.AdministeredCounts(e.SelectQuestions(bundle.EducationLevel))

	var (
		cognitiveProfile models.CognitiveProfile
		typologyResult   models.TypologyResult
		bigFiveProfile   models.BigFiveProfile
		workStyleProfile models.WorkStyleProfile
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		cognitiveProfile = cognitive.Score(bundle.CognitiveResponses, administered)
	}()
	go func() {
		defer wg.Done()
		typologyResult = typology.Classify(bundle.TypologyChoices, e.scenarios)
	}()
	go func() {
		defer wg.Done()
		bigFiveProfile = bigfive.Score(bundle.BigFiveRatings, e.bigFiveItems)
	}()
	go func() {
		defer wg.Done()
		workStyleProfile = workstyle.Score(bundle.WorkStyleRatings, e.workStyleItems)
	}()
	wg.Wait()

	summary := aggregate.Build(cognitiveProfile, typologyResult, bigFiveProfile, workStyleProfile)

	return models.AssessmentResult{
		ID:              uuid.New().String(),
		SessionID:       bundle.SessionID,
		EducationLevel:  bundle.EducationLevel,
		Cognitive:       cognitiveProfile,
		Typology:        typologyResult,
		BigFive:         bigFiveProfile,
		WorkStyle:       workStyleProfile,
		Strengths:       summary.Strengths,
		Weaknesses:      summary.Weaknesses,
		LearningStyle:   summary.LearningStyle,
		Recommendations: careers.Rank(summary, catalog, e.topN),
		ScoredAt:        time.Now().UTC(),
	}
}
