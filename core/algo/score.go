// Package algo has the scoring math of ransomready: weighted rollups,
// threshold classification and ranking. Nothing here does I/O.
package algo

import (
	"math"

	"github.com/huangsam/ransomready/schema"
)

// SafeRatio returns earned/possible as a percentage, or 0 when nothing was
// possible. Every percentage in a report is derived through it.
func SafeRatio(earned, possible float64) float64 {
	if possible <= 0 {
		return 0
	}
	return earned / possible * 100
}

// Points returns the weighted points a response earned and could have earned.
func Points(r schema.Response) (earned, possible float64) {
	return float64(r.Value) * r.Weight, schema.MaxOptionValue * r.Weight
}

// StageScore sums the weighted points of one stage. An empty stage scores
// 0 of 0 at 0%.
func StageScore(answers []schema.Answer) (earned, possible, pct float64) {
	for _, a := range answers {
		e, p := Points(a.Response)
		earned += e
		possible += p
	}
	return earned, possible, SafeRatio(earned, possible)
}

// QuestionPercentage is the isolated score of one answer. The weight cancels
// out, so only the selected value matters.
func QuestionPercentage(value int) float64 {
	return SafeRatio(float64(value), schema.MaxOptionValue)
}

// Round1 rounds to one decimal place for presentation.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// ReadinessLevel maps an overall percentage to its tier. Thresholds are
// closed below and checked from the highest down.
func ReadinessLevel(pct float64) schema.ReadinessLevel {
	for _, t := range schema.LevelThresholds {
		if pct >= t.Min {
			return t.Level
		}
	}
	return schema.CriticalLevel
}
