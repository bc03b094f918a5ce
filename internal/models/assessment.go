// internal/models/assessment.go
package models

import "time"

// CognitiveProfile holds the five per-category scores plus their mean.
// Every score is an integer in [0,100].
type CognitiveProfile struct {
	LogicalReasoning   int `json:"logicalReasoning"`
	NumericalReasoning int `json:"numericalReasoning"`
	VerbalReasoning    int `json:"verbalReasoning"`
	WorkingMemory      int `json:"workingMemory"`
	ProcessingSpeed    int `json:"processingSpeed"`
	// Overall is the mean of the administered categories only; categories
	// with zero administered questions do not count against it.
	Overall int `json:"overall"`
}

// Score returns the named category score.
func (p CognitiveProfile) Score(category CognitiveCategory) int {
	switch category {
	case CategoryLogical:
		return p.LogicalReasoning
	case CategoryNumerical:
		return p.NumericalReasoning
	case CategoryVerbal:
		return p.VerbalReasoning
	case CategoryMemory:
		return p.WorkingMemory
	case CategoryProcessing:
		return p.ProcessingSpeed
	default:
		return 0
	}
}

// TypologyResult carries the four bipolar axis scores, the derived 4-letter
// type code and its canned description.
type TypologyResult struct {
	Extraversion int    `json:"extraversion"`
	Thinking     int    `json:"thinking"`
	Sensing      int    `json:"sensing"`
	Judging      int    `json:"judging"`
	Type         string `json:"type"`
	Description  string `json:"description"`
}

// BigFiveProfile carries the five trait scores and the qualitative tag list.
type BigFiveProfile struct {
	Openness          int      `json:"openness"`
	Conscientiousness int      `json:"conscientiousness"`
	Extraversion      int      `json:"extraversion"`
	Agreeableness     int      `json:"agreeableness"`
	Neuroticism       int      `json:"neuroticism"`
	Traits            []string `json:"traits"`
}

// WorkStyleProfile carries the five work-style dimension scores plus the
// derived communication style and motivation drivers.
type WorkStyleProfile struct {
	Leadership         int      `json:"leadership"`
	Collaboration      int      `json:"collaboration"`
	Innovation         int      `json:"innovation"`
	Structure          int      `json:"structure"`
	RiskTolerance      int      `json:"riskTolerance"`
	CommunicationStyle string   `json:"communicationStyle"`
	MotivationDrivers  []string `json:"motivationDrivers"`
}

// AssessmentBundle is the session-scoped inbound payload: everything the
// engine needs to score one participant, already resolved by the caller.
type AssessmentBundle struct {
	SessionID          string             `json:"sessionId"`
	EducationLevel     EducationLevel     `json:"educationLevel"`
	CognitiveResponses []QuestionResponse `json:"cognitiveResponses"`
	TypologyChoices    []int              `json:"typologyChoices"`
	BigFiveRatings     []int              `json:"bigFiveRatings"`
	WorkStyleRatings   []int              `json:"workStyleRatings"`
}

// AssessmentResult is the sole artifact handed to the persistence and
// presentation layers. It is regenerated whole on every scoring pass.
type AssessmentResult struct {
	ID              string                 `json:"id"`
	SessionID       string                 `json:"sessionId"`
	EducationLevel  EducationLevel         `json:"educationLevel"`
	Cognitive       CognitiveProfile       `json:"cognitive"`
	Typology        TypologyResult         `json:"typology"`
	BigFive         BigFiveProfile         `json:"bigFive"`
	WorkStyle       WorkStyleProfile       `json:"workStyle"`
	Strengths       []string               `json:"strengths"`
	Weaknesses      []string               `json:"weaknesses"`
	LearningStyle   string                 `json:"learningStyle"`
	Recommendations []CareerRecommendation `json:"recommendations"`
	ScoredAt        time.Time              `json:"scoredAt"`
}
