// internal/engine/aggregate/aggregate.go

// Package aggregate merges the four instrument profiles into the summary
// layer of an assessment result: strength/weakness buckets, the inferred
// learning style and the skill/subject sets the career ranker matches on.
package aggregate

import "assessment-engine/internal/models"

const (
	// strengthThreshold buckets a dimension into the strengths list.
	strengthThreshold = 80
	// weaknessThreshold buckets a dimension into the weaknesses list.
	// Scores in [60,80) are neutral and appear in neither.
	weaknessThreshold = 60
	// skillThreshold admits a dimension's mapped skill into the
	// possessed-skill set.
	skillThreshold = 65
	// kinestheticThreshold is the working-memory cutoff in the
	// learning-style cascade.
	kinestheticThreshold = 75
)

// dimension is one flattened named score. Meta fields (overall, type code,
// tag lists) are never flattened.
type dimension struct {
	label   string
	score   int
	skill   string
	subject string
}

// Summary is the derived layer the orchestrator folds into the result and
// the career ranker consumes.
type Summary struct {
	Strengths     []string
	Weaknesses    []string
	LearningStyle string
	Skills        []string
	Subjects      []string
}

// flatten lists every named dimension across the four profiles in a fixed
// order. Labels repeat across instruments (both typology and the trait
// inventory score extraversion); buckets deduplicate on append.
func flatten(c models.CognitiveProfile, t models.TypologyResult, b models.BigFiveProfile, w models.WorkStyleProfile) []dimension {
	return []dimension{
		{"Logical Reasoning", c.LogicalReasoning, "problem-solving", "computer science"},
		{"Numerical Reasoning", c.NumericalReasoning, "data-analysis", "mathematics"},
		{"Verbal Reasoning", c.VerbalReasoning, "communication", "english"},
		{"Working Memory", c.WorkingMemory, "attention-to-detail", "sciences"},
		{"Processing Speed", c.ProcessingSpeed, "time-management", ""},

		{"Extraversion", t.Extraversion, "", ""},
		{"Thinking", t.Thinking, "critical-thinking", ""},
		{"Sensing", t.Sensing, "", ""},
		{"Judging", t.Judging, "", ""},

		{"Openness", b.Openness, "creativity", ""},
		{"Conscientiousness", b.Conscientiousness, "organization", ""},
		{"Extraversion", b.Extraversion, "", ""},
		{"Agreeableness", b.Agreeableness, "teamwork", ""},
		{"Neuroticism", b.Neuroticism, "", ""},

		{"Leadership", w.Leadership, "leadership", ""},
		{"Collaboration", w.Collaboration, "teamwork", ""},
		{"Innovation", w.Innovation, "creativity", ""},
		{"Structure", w.Structure, "organization", ""},
		{"Risk Tolerance", w.RiskTolerance, "decision-making", "business studies"},
	}
}

// Build derives the summary layer from the four scored profiles. The same
// profiles always yield the same summary; output slices are never nil.
func Build(c models.CognitiveProfile, t models.TypologyResult, b models.BigFiveProfile, w models.WorkStyleProfile) Summary {
	s := Summary{
		Strengths:     []string{},
		Weaknesses:    []string{},
		LearningStyle: learningStyle(c),
		Skills:        []string{},
		Subjects:      []string{},
	}

	inStrengths := map[string]bool{}
	inWeaknesses := map[string]bool{}
	hasSkill := map[string]bool{}
	hasSubject := map[string]bool{}

	for _, d := range flatten(c, t, b, w) {
		switch {
		case d.score >= strengthThreshold:
			if !inStrengths[d.label] {
				inStrengths[d.label] = true
				s.Strengths = append(s.Strengths, d.label)
			}
		case d.score < weaknessThreshold:
			if !inWeaknesses[d.label] {
				inWeaknesses[d.label] = true
				s.Weaknesses = append(s.Weaknesses, d.label)
			}
		}

		if d.score > skillThreshold {
			if d.skill != "" && !hasSkill[d.skill] {
				hasSkill[d.skill] = true
				s.Skills = append(s.Skills, d.skill)
			}
			if d.subject != "" && !hasSubject[d.subject] {
				hasSubject[d.subject] = true
				s.Subjects = append(s.Subjects, d.subject)
			}
		}
	}
	return s
}

// learningStyle is a three-branch priority cascade; branch order is part
// of the contract.
func learningStyle(c models.CognitiveProfile) string {
	if c.VerbalReasoning > c.NumericalReasoning {
		return "Auditory"
	}
	if c.WorkingMemory > kinestheticThreshold {
		return "Kinesthetic"
	}
	return "Visual"
}
