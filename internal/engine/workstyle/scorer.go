// internal/engine/workstyle/scorer.go

// Package workstyle averages categorized Likert ratings into five work-style
// dimensions and derives the communication style and motivation drivers.
package workstyle

import (
	"assessment-engine/internal/engine/scoring"
	"assessment-engine/internal/models"
)

const (
	// communicationThreshold selects the dominant communication style.
	communicationThreshold = 70
	// driverThreshold admits a dimension into the motivation drivers.
	driverThreshold = 65
)

// driverLabels maps the driver-eligible dimensions to their tag names, in
// emission order.
var driverLabels = []struct {
	dimension Dimension
	label     string
}{
	{DimensionLeadership, "Leadership"},
	{DimensionInnovation, "Innovation"},
	{DimensionCollaboration, "Teamwork"},
	{DimensionStructure, "Organization"},
}

// Score groups positionally-aligned 1-5 ratings by dimension, takes each
// dimension's mean ×20 and rounds, yielding 20-100 for any answered
// dimension. A dimension with no ratings scores 0 rather than dividing by
// zero. Ratings are clamped into [1,5] at this boundary.
func Score(ratings []int, inventory []Item) models.WorkStyleProfile {
	byDimension := make(map[Dimension][]int, len(Dimensions))
	for i, item := range inventory {
		if i >= len(ratings) {
			break
		}
		byDimension[item.Dimension] = append(byDimension[item.Dimension], scoring.ClampRating(ratings[i]))
	}

	profile := models.WorkStyleProfile{
		Leadership:    scoring.MeanScaled(byDimension[DimensionLeadership]),
		Collaboration: scoring.MeanScaled(byDimension[DimensionCollaboration]),
		Innovation:    scoring.MeanScaled(byDimension[DimensionInnovation]),
		Structure:     scoring.MeanScaled(byDimension[DimensionStructure]),
		RiskTolerance: scoring.MeanScaled(byDimension[DimensionRiskTolerance]),
	}

	profile.CommunicationStyle = communicationStyle(profile)
	profile.MotivationDrivers = motivationDrivers(profile)
	return profile
}

// communicationStyle is a priority cascade: collaboration wins over
// leadership when both clear the threshold.
func communicationStyle(p models.WorkStyleProfile) string {
	if p.Collaboration > communicationThreshold {
		return "Collaborative"
	}
	if p.Leadership > communicationThreshold {
		return "Directive"
	}
	return "Balanced"
}

func motivationDrivers(p models.WorkStyleProfile) []string {
	score := map[Dimension]int{
		DimensionLeadership:    p.Leadership,
		DimensionCollaboration: p.Collaboration,
		DimensionInnovation:    p.Innovation,
		DimensionStructure:     p.Structure,
	}

	drivers := []string{}
	for _, d := range driverLabels {
		if score[d.dimension] > driverThreshold {
			drivers = append(drivers, d.label)
		}
	}
	return drivers
}
