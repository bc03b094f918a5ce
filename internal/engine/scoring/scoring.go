// internal/engine/scoring/scoring.go

// Package scoring holds the shared arithmetic primitives of the assessment
// engine: Likert-to-delta conversion, reverse-item handling and the [0,100]
// clamped accumulators every instrument builds on.
package scoring

import "math"

const (
	// ScoreMin and ScoreMax bound every dimension score in the engine.
	ScoreMin = 0
	ScoreMax = 100

	// Neutral is the at-rest value of every accumulated dimension.
	Neutral = 50

	// LikertMin and LikertMax bound a survey item rating.
	LikertMin = 1
	LikertMax = 5
)

// Clamp bounds v to the closed interval [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore bounds v to [0,100].
func ClampScore(v int) int {
	return Clamp(v, ScoreMin, ScoreMax)
}

// ClampRating bounds a Likert rating to [1,5]. Out-of-range input degrades to
// the nearest valid rating rather than failing the scoring pass.
func ClampRating(rating int) int {
	return Clamp(rating, LikertMin, LikertMax)
}

// AdjustForReverse inverts a reverse-scored rating: agreement with a
// reverse-phrased statement indicates the low end of the trait, so rating 1
// must contribute the same delta as rating 5 on a non-reverse item.
func AdjustForReverse(rating int, reverse bool) int {
	if reverse {
		return LikertMax + LikertMin - rating
	}
	return rating
}

// LikertDelta converts a 1-5 rating into a signed accumulator delta in
// [-10,+10]: (rating - 3) * 5.
func LikertDelta(rating int, reverse bool) int {
	return (AdjustForReverse(rating, reverse) - 3) * 5
}

// Accumulator is a score cell that starts neutral and absorbs signed deltas.
// The running total is unbounded; Score applies the final clamp so repeated
// extreme responses can never push a dimension outside [0,100].
type Accumulator struct {
	total int
}

// NewAccumulator returns an accumulator at the neutral midpoint.
func NewAccumulator() Accumulator {
	return Accumulator{total: Neutral}
}

// Add absorbs a signed delta.
func (a *Accumulator) Add(delta int) {
	a.total += delta
}

// Score returns the clamped [0,100] value.
func (a Accumulator) Score() int {
	return ClampScore(a.total)
}

// Percentage converts a correct/total pair to a rounded 0-100 score. A zero
// total yields 0, never a division fault.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return ClampScore(int(math.Round(100 * float64(correct) / float64(total))))
}

// MeanScaled maps the arithmetic mean of 1-5 ratings onto 0-100 by
// multiplying by 20 and rounding. An empty rating list yields 0. Note the
// reachable floor is 20 (all-ones), not 0.
func MeanScaled(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return ClampScore(int(math.Round(mean * 20)))
}

// RoundMean returns the rounded mean of scores, or 0 for an empty slice.
func RoundMean(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
