// internal/engine/bigfive/scorer.go

// Package bigfive scores the 50-item trait inventory: per-item reverse
// scoring, clamped trait accumulators and the qualitative tag list.
package bigfive

import (
	"assessment-engine/internal/engine/scoring"
	"assessment-engine/internal/models"
)

// tagThreshold triggers a qualitative tag when a trait exceeds it.
const tagThreshold = 65

// stableThreshold is the LOW-neuroticism cutoff: emotional stability is the
// desirable tag, so it fires below the line. There is no high-neuroticism tag.
const stableThreshold = 35

// Score reduces positionally-aligned 1-5 ratings to the five trait scores.
// Ratings are clamped into [1,5] at this boundary so out-of-range input
// degrades instead of skewing deltas. A rating list shorter than the
// inventory scores fewer items; extra ratings are ignored.
func Score(ratings []int, inventory []Item) models.BigFiveProfile {
	accs := map[Trait]*scoring.Accumulator{}
	for _, tr := range Traits {
		acc := scoring.NewAccumulator()
		accs[tr] = &acc
	}

	for i, item := range inventory {
		if i >= len(ratings) {
			break
		}
		rating := scoring.ClampRating(ratings[i])
		accs[item.Trait].Add(scoring.LikertDelta(rating, item.Reverse))
	}

	profile := models.BigFiveProfile{
		Openness:          accs[TraitOpenness].Score(),
		Conscientiousness: accs[TraitConscientiousness].Score(),
		Extraversion:      accs[TraitExtraversion].Score(),
		Agreeableness:     accs[TraitAgreeableness].Score(),
		Neuroticism:       accs[TraitNeuroticism].Score(),
	}
	profile.Traits = deriveTags(profile)
	return profile
}

// deriveTags emits the qualitative labels in fixed trait order.
func deriveTags(p models.BigFiveProfile) []string {
	tags := []string{}
	if p.Openness > tagThreshold {
		tags = append(tags, "Creative")
	}
	if p.Conscientiousness > tagThreshold {
		tags = append(tags, "Organized")
	}
	if p.Extraversion > tagThreshold {
		tags = append(tags, "Outgoing")
	}
	if p.Agreeableness > tagThreshold {
		tags = append(tags, "Cooperative")
	}
	if p.Neuroticism < stableThreshold {
		tags = append(tags, "Emotionally Stable")
	}
	return tags
}
