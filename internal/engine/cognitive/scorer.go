// internal/engine/cognitive/scorer.go

// Package cognitive scores the aptitude test: education-level-filtered
// question selection, per-response evaluation and per-category aggregation.
package cognitive

import (
	"assessment-engine/internal/engine/scoring"
	"assessment-engine/internal/models"
)

// SelectQuestions filters the bank by category and education level and caps
// each category at its configured limit, preserving bank order.
func SelectQuestions(bankQuestions []models.Question, level models.EducationLevel, limits map[string]int) map[models.CognitiveCategory][]models.Question {
	selected := make(map[models.CognitiveCategory][]models.Question, len(models.CognitiveCategories))

	for _, q := range bankQuestions {
		if !q.EligibleFor(level) {
			continue
		}
		limit, ok := limits[string(q.Category)]
		if !ok {
			continue
		}
		if len(selected[q.Category]) >= limit {
			continue
		}
		selected[q.Category] = append(selected[q.Category], q)
	}

	return selected
}

// EvaluateResponse builds the immutable response record for one answered
// question. Correctness is derived here and never recomputed.
func EvaluateResponse(q models.Question, userAnswer string, responseTimeMs int64, orderIndex int) models.QuestionResponse {
	return models.QuestionResponse{
		QuestionID:     q.ID,
		Category:       q.Category,
		Difficulty:     q.Difficulty,
		UserAnswer:     userAnswer,
		CorrectAnswer:  q.Correct,
		IsCorrect:      q.Correct.Matches(userAnswer),
		ResponseTimeMs: responseTimeMs,
		OrderIndex:     orderIndex,
	}
}

// ScoreCategory reduces one category's responses to a 0-100 score given the
// number of questions administered in that category. Unanswered questions
// count as incorrect. Zero administered questions score 0.
func ScoreCategory(responses []models.QuestionResponse, administered int) int {
	correct := 0
	for _, r := range responses {
		if r.IsCorrect {
			correct++
		}
	}
	return scoring.Percentage(correct, administered)
}

// Score reduces a session's cognitive responses into the five category scores
// plus the overall mean. administered maps each category to the number of
// questions shown; categories that were never administered score 0 and are
// excluded from the overall mean's denominator, so skipping a section does
// not drag the average down.
func Score(responses []models.QuestionResponse, administered map[models.CognitiveCategory]int) models.CognitiveProfile {
	byCategory := make(map[models.CognitiveCategory][]models.QuestionResponse, len(models.CognitiveCategories))
	for _, r := range responses {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	var profile models.CognitiveProfile
	var taken []int

	for _, category := range models.CognitiveCategories {
		n := administered[category]
		// Fail open on a response list for a category the caller never
		// declared: treat every response as administered.
		if n == 0 && len(byCategory[category]) > 0 {
			n = len(byCategory[category])
		}

		score := ScoreCategory(byCategory[category], n)
		if n > 0 {
			taken = append(taken, score)
		}

		switch category {
		case models.CategoryLogical:
			profile.LogicalReasoning = score
		case models.CategoryNumerical:
			profile.NumericalReasoning = score
		case models.CategoryVerbal:
			profile.VerbalReasoning = score
		case models.CategoryMemory:
			profile.WorkingMemory = score
		case models.CategoryProcessing:
			profile.ProcessingSpeed = score
		}
	}

	profile.Overall = scoring.RoundMean(taken)
	return profile
}

// AdministeredCounts derives the per-category administered counts from a
// selection produced by SelectQuestions.
func AdministeredCounts(selected map[models.CognitiveCategory][]models.Question) map[models.CognitiveCategory]int {
	counts := make(map[models.CognitiveCategory]int, len(selected))
	for category, questions := range selected {
		counts[category] = len(questions)
	}
	return counts
}
