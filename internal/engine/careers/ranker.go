// internal/engine/careers/ranker.go
package careers

import (
	"fmt"
	"math"
	"sort"

	"assessment-engine/internal/engine/aggregate"
	"assessment-engine/internal/engine/scoring"
	"assessment-engine/internal/models"
)

// Fit score weights. Baseline keeps a zero-overlap profile off the floor so
// demand and salary data still reach the presentation layer with a ranked
// ordering.
const (
	skillWeight   = 55
	subjectWeight = 25
	fitBaseline   = 20
)

// Rank scores every catalog entry against the profile summary, sorts
// descending by fit and returns the top N recommendations. The sort is
// stable: equal fit scores keep their catalog order. An empty catalog
// yields an empty list, not an error.
func Rank(summary aggregate.Summary, catalog []models.CareerDefinition, topN int) []models.CareerRecommendation {
	recommendations := make([]models.CareerRecommendation, 0, len(catalog))
	for _, career := range catalog {
		recommendations = append(recommendations, recommend(summary, career))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].FitScore > recommendations[j].FitScore
	})

	if topN > 0 && len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations
}

func recommend(summary aggregate.Summary, career models.CareerDefinition) models.CareerRecommendation {
	possessed := toSet(summary.Skills)
	subjects := toSet(summary.Subjects)

	matchedSkills := 0
	missing := []string{}
	for _, skill := range career.RequiredSkills {
		if possessed[skill] {
			matchedSkills++
		} else {
			missing = append(missing, skill)
		}
	}

	matchedSubjects := 0
	for _, subject := range career.RequiredSubjects {
		if subjects[subject] {
			matchedSubjects++
		}
	}

	fit := fitBaseline +
		weighted(skillWeight, matchedSkills, len(career.RequiredSkills)) +
		weighted(subjectWeight, matchedSubjects, len(career.RequiredSubjects))

	return models.CareerRecommendation{
		Career:           career,
		FitScore:         scoring.ClampScore(fit),
		MissingSkills:    missing,
		Reasoning:        reasoning(career, matchedSkills, matchedSubjects),
		NextSteps:        nextSteps(missing),
		TimelineEstimate: timeline(len(missing)),
	}
}

// weighted scales a matched/required ratio onto the component's weight. A
// career declaring no requirements for a component earns it in full.
func weighted(weight, matched, required int) int {
	if required == 0 {
		return weight
	}
	return int(math.Round(float64(weight) * float64(matched) / float64(required)))
}

func reasoning(career models.CareerDefinition, matchedSkills, matchedSubjects int) string {
	return fmt.Sprintf("Matches %d of %d required skills and %d of %d subject areas; market demand is %s.",
		matchedSkills, len(career.RequiredSkills),
		matchedSubjects, len(career.RequiredSubjects),
		career.DemandLevel)
}

// nextSteps synthesizes one step per missing skill, in required-skill order.
func nextSteps(missing []string) []string {
	steps := make([]string, 0, len(missing))
	for _, skill := range missing {
		steps = append(steps, fmt.Sprintf("Build %s through targeted coursework or a practical project.", skill))
	}
	return steps
}

func timeline(gapSize int) string {
	switch {
	case gapSize == 0:
		return "0-6 months"
	case gapSize <= 2:
		return "6-12 months"
	default:
		return "1-2 years"
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
