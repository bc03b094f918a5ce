// internal/models/question.go
package models

import (
	"math"
	"strconv"
	"strings"
)

// CognitiveCategory identifies one of the five cognitive test categories.
type CognitiveCategory string

const (
	CategoryLogical    CognitiveCategory = "logical"
	CategoryNumerical  CognitiveCategory = "numerical"
	CategoryVerbal     CognitiveCategory = "verbal"
	CategoryMemory     CognitiveCategory = "memory"
	CategoryProcessing CognitiveCategory = "processing"
)

// CognitiveCategories lists all categories in canonical order.
var CognitiveCategories = []CognitiveCategory{
	CategoryLogical,
	CategoryNumerical,
	CategoryVerbal,
	CategoryMemory,
	CategoryProcessing,
}

// Difficulty grades a cognitive question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// EducationLevel tags which test-takers a question is eligible for.
type EducationLevel string

const (
	LevelPrimary       EducationLevel = "primary"
	LevelSecondary     EducationLevel = "secondary"
	LevelALevel        EducationLevel = "a-level"
	LevelUndergraduate EducationLevel = "undergraduate"
	LevelMasters       EducationLevel = "masters"
	LevelPhD           EducationLevel = "phd"
)

// EducationLevels lists every recognized level.
var EducationLevels = []EducationLevel{
	LevelPrimary, LevelSecondary, LevelALevel,
	LevelUndergraduate, LevelMasters, LevelPhD,
}

// IsValidEducationLevel reports whether level is one of the fixed enumeration.
func IsValidEducationLevel(level EducationLevel) bool {
	for _, l := range EducationLevels {
		if l == level {
			return true
		}
	}
	return false
}

// AnswerKind discriminates the correct-answer union.
type AnswerKind string

const (
	AnswerChoice  AnswerKind = "choice"
	AnswerNumeric AnswerKind = "numeric"
)

// Answer is the tagged union of a choice answer (exact string) and a numeric
// answer (tolerance-compared float).
type Answer struct {
	Kind    AnswerKind `json:"kind"`
	Choice  string     `json:"choice,omitempty"`
	Numeric float64    `json:"numeric,omitempty"`
}

// ChoiceAnswer builds a choice-typed answer.
func ChoiceAnswer(s string) Answer {
	return Answer{Kind: AnswerChoice, Choice: s}
}

// NumericAnswer builds a numeric-typed answer.
func NumericAnswer(v float64) Answer {
	return Answer{Kind: AnswerNumeric, Numeric: v}
}

// numericTolerance is the epsilon applied to numeric-input equality.
const numericTolerance = 0.01

// Matches reports whether the submitted raw answer is correct. Choice answers
// compare exactly and case-sensitively after trimming surrounding whitespace;
// numeric answers compare within 0.01. A non-numeric or empty submission to a
// numeric question is simply incorrect, never an error.
func (a Answer) Matches(submitted string) bool {
	switch a.Kind {
	case AnswerChoice:
		return strings.TrimSpace(submitted) == a.Choice
	case AnswerNumeric:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(submitted), 64)
		if err != nil {
			return false
		}
		return math.Abs(parsed-a.Numeric) < numericTolerance
	default:
		return false
	}
}

// Question is one immutable entry of the cognitive bank.
type Question struct {
	ID             string            `json:"id"`
	Category       CognitiveCategory `json:"category"`
	Difficulty     Difficulty        `json:"difficulty"`
	Prompt         string            `json:"prompt"`
	Options        []string          `json:"options,omitempty"` // nil for free numeric input
	Correct        Answer            `json:"correctAnswer"`
	Explanation    string            `json:"explanation"`
	EligibleLevels []EducationLevel  `json:"eligibleEducationLevels"`
}

// EligibleFor reports whether the question may be shown at the given level.
func (q Question) EligibleFor(level EducationLevel) bool {
	for _, l := range q.EligibleLevels {
		if l == level {
			return true
		}
	}
	return false
}

// QuestionResponse records one answered cognitive question. Created once per
// answer and append-only into the session's response list.
type QuestionResponse struct {
	QuestionID     string            `json:"questionId"`
	Category       CognitiveCategory `json:"category"`
	Difficulty     Difficulty        `json:"difficulty"`
	UserAnswer     string            `json:"userAnswer"`
	CorrectAnswer  Answer            `json:"correctAnswer"`
	IsCorrect      bool              `json:"isCorrect"`
	ResponseTimeMs int64             `json:"responseTimeMs"`
	OrderIndex     int               `json:"orderIndex"`
}
