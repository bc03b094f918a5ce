// internal/models/career.go
package models

// DemandLevel grades labor-market demand for a career.
type DemandLevel string

const (
	DemandLow      DemandLevel = "low"
	DemandMedium   DemandLevel = "medium"
	DemandHigh     DemandLevel = "high"
	DemandVeryHigh DemandLevel = "very-high"
)

// CareerDefinition is one static catalog record.
type CareerDefinition struct {
	Title            string      `json:"title"`
	RequiredSubjects []string    `json:"requiredSubjects"`
	RequiredSkills   []string    `json:"requiredSkills"`
	SalaryMin        int         `json:"salaryMin"`
	SalaryMax        int         `json:"salaryMax"`
	DemandLevel      DemandLevel `json:"demandLevel"`
	GrowthRate       float64     `json:"growthRate"`
	RemoteFriendly   bool        `json:"remoteFriendly"`
}

// CareerRecommendation is one ranked fit against the catalog. Produced fresh
// on every ranking pass, never mutated.
type CareerRecommendation struct {
	Career           CareerDefinition `json:"career"`
	FitScore         int              `json:"fitScore"`
	MissingSkills    []string         `json:"missingSkills"`
	Reasoning        string           `json:"reasoning"`
	NextSteps        []string         `json:"nextSteps"`
	TimelineEstimate string           `json:"timelineEstimate"`
}
