// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Total number of assessment sessions scored",
		},
		[]string{"education_level"},
	)

	AssessmentsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_failed_total",
			Help: "Total number of assessment sessions rejected or failed",
		},
		[]string{"error_code"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assessment_scoring_duration_seconds",
			Help: "Duration of a full scoring pass in seconds",
		},
		[]string{"education_level"},
	)

	InstrumentScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_instrument_score",
			Help:    "Distribution of 0-100 instrument scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"instrument", "dimension"},
	)

	RecommendationsEmitted = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_recommendations_emitted",
			Help:    "Number of career recommendations emitted per session",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)
)
