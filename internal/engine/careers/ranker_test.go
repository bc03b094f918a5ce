// internal/engine/careers/ranker_test.go
package careers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/engine/aggregate"
	"assessment-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func career(title string, skills, subjects []string) models.CareerDefinition {
	return models.CareerDefinition{
		Title:            title,
		RequiredSkills:   skills,
		RequiredSubjects: subjects,
		SalaryMin:        30000,
		SalaryMax:        60000,
		DemandLevel:      models.DemandMedium,
	}
}

// ==========================
// Catalog Integrity
// ==========================

func TestVerifyCatalog_BuiltinIsValid(t *testing.T) {
	require.NoError(t, VerifyCatalog(BuiltinCatalog()))
}

func TestVerifyCatalog_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		catalog []models.CareerDefinition
	}{
		{"empty title", []models.CareerDefinition{career("", []string{"teamwork"}, nil)}},
		{"duplicate title", []models.CareerDefinition{
			career("Pilot", []string{"teamwork"}, nil),
			career("Pilot", []string{"leadership"}, nil),
		}},
		{"no required skills", []models.CareerDefinition{career("Pilot", nil, nil)}},
		{"inverted salary band", []models.CareerDefinition{{
			Title: "Pilot", RequiredSkills: []string{"teamwork"},
			SalaryMin: 90000, SalaryMax: 40000, DemandLevel: models.DemandHigh,
		}}},
		{"unknown demand level", []models.CareerDefinition{{
			Title: "Pilot", RequiredSkills: []string{"teamwork"},
			SalaryMax: 40000, DemandLevel: "extreme",
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, VerifyCatalog(tt.catalog))
		})
	}
}

// ==========================
// Fit Scoring
// ==========================

func TestRank_FullMatchScoresHundred(t *testing.T) {
	summary := aggregate.Summary{
		Skills:   []string{"problem-solving", "critical-thinking"},
		Subjects: []string{"mathematics"},
	}
	catalog := []models.CareerDefinition{
		career("Analyst", []string{"problem-solving", "critical-thinking"}, []string{"mathematics"}),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].FitScore)
	assert.Empty(t, recs[0].MissingSkills)
	assert.Empty(t, recs[0].NextSteps)
	assert.Equal(t, "0-6 months", recs[0].TimelineEstimate)
}

func TestRank_ZeroOverlapScoresBaseline(t *testing.T) {
	summary := aggregate.Summary{Skills: []string{"creativity"}, Subjects: []string{"english"}}
	catalog := []models.CareerDefinition{
		career("Analyst", []string{"data-analysis", "attention-to-detail"}, []string{"mathematics"}),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, 20, recs[0].FitScore)
}

func TestRank_PartialOverlapWeighted(t *testing.T) {
	// One of two skills (55/2 → 28) plus the full subject component (25)
	// plus the baseline (20) → 73.
	summary := aggregate.Summary{Skills: []string{"data-analysis"}, Subjects: []string{"mathematics"}}
	catalog := []models.CareerDefinition{
		career("Analyst", []string{"data-analysis", "communication"}, []string{"mathematics"}),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, 73, recs[0].FitScore)
}

func TestRank_NoRequiredSubjectsEarnsFullComponent(t *testing.T) {
	summary := aggregate.Summary{Skills: []string{"teamwork"}}
	catalog := []models.CareerDefinition{career("Medic", []string{"teamwork"}, nil)}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].FitScore)
}

// ==========================
// Ordering and Stability
// ==========================

func TestRank_SortsDescending(t *testing.T) {
	summary := aggregate.Summary{Skills: []string{"leadership"}, Subjects: []string{}}
	catalog := []models.CareerDefinition{
		career("Low", []string{"data-analysis"}, nil),
		career("High", []string{"leadership"}, nil),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 2)
	assert.Equal(t, "High", recs[0].Career.Title)
	assert.Equal(t, "Low", recs[1].Career.Title)
	assert.Greater(t, recs[0].FitScore, recs[1].FitScore)
}

func TestRank_TiesPreserveCatalogOrder(t *testing.T) {
	summary := aggregate.Summary{}
	catalog := []models.CareerDefinition{
		career("First", []string{"x"}, nil),
		career("Second", []string{"y"}, nil),
		career("Third", []string{"z"}, nil),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 3)
	assert.Equal(t, recs[0].FitScore, recs[1].FitScore)
	assert.Equal(t, "First", recs[0].Career.Title)
	assert.Equal(t, "Second", recs[1].Career.Title)
	assert.Equal(t, "Third", recs[2].Career.Title)
}

func TestRank_TopNTruncates(t *testing.T) {
	summary := aggregate.Summary{}
	recs := Rank(summary, BuiltinCatalog(), 3)
	assert.Len(t, recs, 3)
}

func TestRank_EmptyCatalogYieldsEmptyList(t *testing.T) {
	recs := Rank(aggregate.Summary{Skills: []string{"teamwork"}}, nil, 5)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

// ==========================
// Missing Skills and Next Steps
// ==========================

func TestRank_MissingSkillsInRequiredOrder(t *testing.T) {
	summary := aggregate.Summary{Skills: []string{"communication"}}
	catalog := []models.CareerDefinition{
		career("Teacher", []string{"organization", "communication", "leadership"}, nil),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"organization", "leadership"}, recs[0].MissingSkills)
	require.Len(t, recs[0].NextSteps, 2)
	assert.Contains(t, recs[0].NextSteps[0], "organization")
	assert.Contains(t, recs[0].NextSteps[1], "leadership")
	assert.Equal(t, "6-12 months", recs[0].TimelineEstimate)
}

func TestRank_LargeGapLengthensTimeline(t *testing.T) {
	summary := aggregate.Summary{}
	catalog := []models.CareerDefinition{
		career("Surgeon", []string{"a", "b", "c", "d"}, nil),
	}

	recs := Rank(summary, catalog, 5)
	require.Len(t, recs, 1)
	assert.Equal(t, "1-2 years", recs[0].TimelineEstimate)
}

func TestRank_Deterministic(t *testing.T) {
	summary := aggregate.Summary{Skills: []string{"leadership", "teamwork"}, Subjects: []string{"business studies"}}
	first := Rank(summary, BuiltinCatalog(), 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Rank(summary, BuiltinCatalog(), 5))
	}
}
