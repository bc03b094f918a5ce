// internal/engine/careers/catalog.go

// Package careers ranks a scored profile against a catalog of career
// definitions and emits recommendations with missing-skill gaps.
package careers

import (
	"fmt"

	"assessment-engine/internal/models"
)

// builtinCatalog is the fallback reference data when no catalog store is
// configured. Skill and subject names follow the aggregation layer's
// inference vocabulary.
var builtinCatalog = []models.CareerDefinition{
	{
		Title:            "Software Engineer",
		RequiredSubjects: []string{"computer science", "mathematics"},
		RequiredSkills:   []string{"problem-solving", "critical-thinking", "attention-to-detail"},
		SalaryMin:        45000, SalaryMax: 120000,
		DemandLevel: models.DemandVeryHigh, GrowthRate: 0.22, RemoteFriendly: true,
	},
	{
		Title:            "Data Analyst",
		RequiredSubjects: []string{"mathematics", "computer science"},
		RequiredSkills:   []string{"data-analysis", "attention-to-detail", "communication"},
		SalaryMin:        38000, SalaryMax: 85000,
		DemandLevel: models.DemandVeryHigh, GrowthRate: 0.25, RemoteFriendly: true,
	},
	{
		Title:            "Product Manager",
		RequiredSubjects: []string{"business studies"},
		RequiredSkills:   []string{"leadership", "communication", "decision-making", "organization"},
		SalaryMin:        55000, SalaryMax: 130000,
		DemandLevel: models.DemandHigh, GrowthRate: 0.10, RemoteFriendly: true,
	},
	{
		Title:            "Registered Nurse",
		RequiredSubjects: []string{"sciences"},
		RequiredSkills:   []string{"attention-to-detail", "teamwork", "time-management"},
		SalaryMin:        30000, SalaryMax: 55000,
		DemandLevel: models.DemandVeryHigh, GrowthRate: 0.09, RemoteFriendly: false,
	},
	{
		Title:            "Financial Accountant",
		RequiredSubjects: []string{"mathematics", "business studies"},
		RequiredSkills:   []string{"data-analysis", "attention-to-detail", "organization"},
		SalaryMin:        35000, SalaryMax: 90000,
		DemandLevel: models.DemandHigh, GrowthRate: 0.06, RemoteFriendly: true,
	},
	{
		Title:            "Marketing Specialist",
		RequiredSubjects: []string{"english", "business studies"},
		RequiredSkills:   []string{"creativity", "communication", "data-analysis"},
		SalaryMin:        28000, SalaryMax: 70000,
		DemandLevel: models.DemandMedium, GrowthRate: 0.08, RemoteFriendly: true,
	},
	{
		Title:            "UX Designer",
		RequiredSubjects: []string{"computer science"},
		RequiredSkills:   []string{"creativity", "communication", "problem-solving"},
		SalaryMin:        40000, SalaryMax: 95000,
		DemandLevel: models.DemandHigh, GrowthRate: 0.13, RemoteFriendly: true,
	},
	{
		Title:            "Secondary School Teacher",
		RequiredSubjects: []string{"english", "sciences"},
		RequiredSkills:   []string{"communication", "organization", "leadership"},
		SalaryMin:        28000, SalaryMax: 48000,
		DemandLevel: models.DemandHigh, GrowthRate: 0.04, RemoteFriendly: false,
	},
	{
		Title:            "Operations Manager",
		RequiredSubjects: []string{"business studies"},
		RequiredSkills:   []string{"leadership", "organization", "decision-making", "time-management"},
		SalaryMin:        42000, SalaryMax: 100000,
		DemandLevel: models.DemandMedium, GrowthRate: 0.05, RemoteFriendly: false,
	},
	{
		Title:            "Research Scientist",
		RequiredSubjects: []string{"sciences", "mathematics"},
		RequiredSkills:   []string{"critical-thinking", "data-analysis", "attention-to-detail"},
		SalaryMin:        35000, SalaryMax: 80000,
		DemandLevel: models.DemandMedium, GrowthRate: 0.07, RemoteFriendly: false,
	},
	{
		Title:            "Journalist",
		RequiredSubjects: []string{"english"},
		RequiredSkills:   []string{"communication", "critical-thinking", "creativity"},
		SalaryMin:        24000, SalaryMax: 60000,
		DemandLevel: models.DemandLow, GrowthRate: -0.02, RemoteFriendly: true,
	},
	{
		Title:            "Entrepreneur",
		RequiredSubjects: []string{"business studies"},
		RequiredSkills:   []string{"decision-making", "leadership", "creativity", "problem-solving"},
		SalaryMin:        0, SalaryMax: 250000,
		DemandLevel: models.DemandMedium, GrowthRate: 0.11, RemoteFriendly: true,
	},
}

// BuiltinCatalog returns the embedded reference catalog in ranking order.
func BuiltinCatalog() []models.CareerDefinition {
	return builtinCatalog
}

// VerifyCatalog checks a catalog at load time. Rankings over an invalid
// catalog are undefined, so callers reject rather than score around it.
func VerifyCatalog(catalog []models.CareerDefinition) error {
	seen := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		if c.Title == "" {
			return fmt.Errorf("career with empty title")
		}
		if seen[c.Title] {
			return fmt.Errorf("duplicate career title %q", c.Title)
		}
		seen[c.Title] = true
		if len(c.RequiredSkills) == 0 {
			return fmt.Errorf("career %q declares no required skills", c.Title)
		}
		if c.SalaryMax < c.SalaryMin {
			return fmt.Errorf("career %q has inverted salary band", c.Title)
		}
		switch c.DemandLevel {
		case models.DemandLow, models.DemandMedium, models.DemandHigh, models.DemandVeryHigh:
		default:
			return fmt.Errorf("career %q has unknown demand level %q", c.Title, c.DemandLevel)
		}
	}
	return nil
}
