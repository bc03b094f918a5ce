// internal/engine/cognitive/scorer_test.go
package cognitive

import (
	"testing"

	"assessment-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func defaultLimits() map[string]int {
	return map[string]int{
		"logical":    5,
		"numerical":  5,
		"verbal":     4,
		"memory":     4,
		"processing": 4,
	}
}

func choiceQuestion(id string, category models.CognitiveCategory, correct string) models.Question {
	return models.Question{
		ID:             id,
		Category:       category,
		Difficulty:     models.DifficultyEasy,
		Prompt:         "prompt " + id,
		Options:        []string{correct, "other"},
		Correct:        models.ChoiceAnswer(correct),
		EligibleLevels: []models.EducationLevel{models.LevelUndergraduate},
	}
}

func numericQuestion(id string, category models.CognitiveCategory, correct float64) models.Question {
	return models.Question{
		ID:             id,
		Category:       category,
		Difficulty:     models.DifficultyMedium,
		Prompt:         "prompt " + id,
		Correct:        models.NumericAnswer(correct),
		EligibleLevels: []models.EducationLevel{models.LevelUndergraduate},
	}
}

func response(category models.CognitiveCategory, correct bool) models.QuestionResponse {
	return models.QuestionResponse{
		QuestionID: "q",
		Category:   category,
		IsCorrect:  correct,
	}
}

// ==========================
// Bank Integrity
// ==========================

func TestVerifyBank_BuiltinBankIsValid(t *testing.T) {
	require.NoError(t, VerifyBank(Bank()))
}

func TestVerifyBank_Failures(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
	}{
		{"empty bank", nil},
		{"duplicate id", []models.Question{
			choiceQuestion("dup", models.CategoryLogical, "a"),
			choiceQuestion("dup", models.CategoryLogical, "a"),
		}},
		{"unknown category", []models.Question{
			choiceQuestion("q1", models.CognitiveCategory("spatial"), "a"),
		}},
		{"choice answer not among options", []models.Question{
			{
				ID: "q1", Category: models.CategoryVerbal, Prompt: "p",
				Options:        []string{"a", "b"},
				Correct:        models.ChoiceAnswer("c"),
				EligibleLevels: []models.EducationLevel{models.LevelPrimary},
			},
		}},
		{"no eligible levels", []models.Question{
			{
				ID: "q1", Category: models.CategoryVerbal, Prompt: "p",
				Options: []string{"a", "b"},
				Correct: models.ChoiceAnswer("a"),
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, VerifyBank(tt.questions))
		})
	}
}

// ==========================
// Question Selection
// ==========================

func TestSelectQuestions_FiltersByLevelAndCapsDeterministically(t *testing.T) {
	selected := SelectQuestions(Bank(), models.LevelUndergraduate, defaultLimits())

	for category, questions := range selected {
		limit := defaultLimits()[string(category)]
		assert.LessOrEqual(t, len(questions), limit)
		for _, q := range questions {
			assert.True(t, q.EligibleFor(models.LevelUndergraduate))
			assert.Equal(t, category, q.Category)
		}
	}

	// Deterministic: two passes over the same bank yield identical selections.
	again := SelectQuestions(Bank(), models.LevelUndergraduate, defaultLimits())
	assert.Equal(t, selected, again)
}

func TestSelectQuestions_PreservesBankOrder(t *testing.T) {
	selected := SelectQuestions(Bank(), models.LevelPrimary, defaultLimits())

	positions := make(map[string]int)
	for i, q := range Bank() {
		positions[q.ID] = i
	}
	for _, questions := range selected {
		for i := 1; i < len(questions); i++ {
			assert.Less(t, positions[questions[i-1].ID], positions[questions[i].ID])
		}
	}
}

func TestSelectQuestions_PrimarySeesNoUpperLevelQuestions(t *testing.T) {
	selected := SelectQuestions(Bank(), models.LevelPrimary, defaultLimits())
	for _, questions := range selected {
		for _, q := range questions {
			assert.True(t, q.EligibleFor(models.LevelPrimary), "question %s leaked into primary selection", q.ID)
		}
	}
}

// ==========================
// Response Evaluation
// ==========================

func TestEvaluateResponse_ChoiceEquality(t *testing.T) {
	q := choiceQuestion("q1", models.CategoryVerbal, "gallery")

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact match", "gallery", true},
		{"surrounding whitespace", "  gallery ", true},
		{"case sensitive", "Gallery", false},
		{"wrong option", "frame", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EvaluateResponse(q, tt.answer, 1200, 0)
			assert.Equal(t, tt.correct, r.IsCorrect)
			assert.Equal(t, tt.answer, r.UserAnswer)
		})
	}
}

func TestEvaluateResponse_NumericTolerance(t *testing.T) {
	q := numericQuestion("q1", models.CategoryNumerical, 72)

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact", "72", true},
		{"within tolerance", "72.009", true},
		{"just outside tolerance", "72.011", false},
		{"negative direction within", "71.991", true},
		{"unparsable", "seventy-two", false},
		{"empty submission", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EvaluateResponse(q, tt.answer, 800, 3)
			assert.Equal(t, tt.correct, r.IsCorrect)
		})
	}
}

func TestEvaluateResponse_CapturesTimingAndOrder(t *testing.T) {
	q := numericQuestion("q1", models.CategoryNumerical, 5)
	r := EvaluateResponse(q, "5", 1540, 2)
	assert.Equal(t, int64(1540), r.ResponseTimeMs)
	assert.Equal(t, 2, r.OrderIndex)
	assert.Equal(t, q.Correct, r.CorrectAnswer)
}

// ==========================
// Category Scoring
// ==========================

func TestScoreCategory(t *testing.T) {
	tests := []struct {
		name         string
		responses    []models.QuestionResponse
		administered int
		expected     int
	}{
		{
			name: "one of two correct",
			responses: []models.QuestionResponse{
				response(models.CategoryNumerical, true),
				response(models.CategoryNumerical, false),
			},
			administered: 2,
			expected:     50,
		},
		{
			name: "all correct",
			responses: []models.QuestionResponse{
				response(models.CategoryLogical, true),
				response(models.CategoryLogical, true),
			},
			administered: 2,
			expected:     100,
		},
		{
			name:         "nothing answered",
			responses:    nil,
			administered: 4,
			expected:     0,
		},
		{
			name: "partial completion counts unanswered as incorrect",
			responses: []models.QuestionResponse{
				response(models.CategoryMemory, true),
			},
			administered: 4,
			expected:     25,
		},
		{
			name:         "zero administered",
			responses:    nil,
			administered: 0,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreCategory(tt.responses, tt.administered))
		})
	}
}

func TestScore_ExcludesUntakenCategoriesFromOverall(t *testing.T) {
	responses := []models.QuestionResponse{
		response(models.CategoryNumerical, true),
		response(models.CategoryNumerical, false),
		response(models.CategoryLogical, true),
	}
	administered := map[models.CognitiveCategory]int{
		models.CategoryNumerical: 2,
		models.CategoryLogical:   1,
	}

	profile := Score(responses, administered)

	assert.Equal(t, 50, profile.NumericalReasoning)
	assert.Equal(t, 100, profile.LogicalReasoning)
	assert.Equal(t, 0, profile.VerbalReasoning)
	assert.Equal(t, 0, profile.WorkingMemory)
	assert.Equal(t, 0, profile.ProcessingSpeed)
	// Overall averages only the two administered categories: (50+100)/2.
	assert.Equal(t, 75, profile.Overall)
}

func TestScore_AdministeredZeroScoreStaysInOverall(t *testing.T) {
	responses := []models.QuestionResponse{
		response(models.CategoryLogical, true),
		response(models.CategoryVerbal, false),
	}
	administered := map[models.CognitiveCategory]int{
		models.CategoryLogical: 1,
		models.CategoryVerbal:  1,
	}

	profile := Score(responses, administered)

	// A taken-but-failed category still drags the mean: (100+0)/2.
	assert.Equal(t, 50, profile.Overall)
}

func TestScore_EmptyInput(t *testing.T) {
	profile := Score(nil, nil)
	assert.Equal(t, models.CognitiveProfile{}, profile)
}

func TestScore_Determinism(t *testing.T) {
	responses := []models.QuestionResponse{
		response(models.CategoryLogical, true),
		response(models.CategoryNumerical, false),
		response(models.CategoryMemory, true),
	}
	administered := map[models.CognitiveCategory]int{
		models.CategoryLogical:   2,
		models.CategoryNumerical: 2,
		models.CategoryMemory:    2,
	}

	first := Score(responses, administered)
	second := Score(responses, administered)
	assert.Equal(t, first, second)
}
