package algo

import (
	"sort"

	"github.com/huangsam/ransomready/schema"
)

// MaxAreas caps the risk and strength lists of a report.
const MaxAreas = 5

// Area thresholds on the isolated question percentage.
const (
	RiskBelow         = 50.0
	StrengthAtOrAbove = 75.0
)

// SelectRisks keeps the questions scoring below RiskBelow, in input order.
func SelectRisks(breakdown []schema.QuestionScore) []schema.AreaEntry {
	out := make([]schema.AreaEntry, 0)
	for _, q := range breakdown {
		if q.Percentage < RiskBelow {
			out = append(out, areaOf(q))
		}
	}
	return out
}

// SelectStrengths keeps the questions scoring at or above StrengthAtOrAbove,
// in input order.
func SelectStrengths(breakdown []schema.QuestionScore) []schema.AreaEntry {
	out := make([]schema.AreaEntry, 0)
	for _, q := range breakdown {
		if q.Percentage >= StrengthAtOrAbove {
			out = append(out, areaOf(q))
		}
	}
	return out
}

func areaOf(q schema.QuestionScore) schema.AreaEntry {
	return schema.AreaEntry{
		Stage:        q.Stage,
		QuestionID:   q.QuestionID,
		Percentage:   q.Percentage,
		TechniqueTag: q.TechniqueTag,
		Response:     q.ResponseText,
	}
}

// RankRisks sorts areas worst first and returns the top 'limit'. Equal
// percentages keep their input order.
func RankRisks(areas []schema.AreaEntry, limit int) []schema.AreaEntry {
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Percentage < areas[j].Percentage
	})
	return truncate(areas, limit)
}

// RankStrengths sorts areas best first and returns the top 'limit'. Equal
// percentages keep their input order.
func RankStrengths(areas []schema.AreaEntry, limit int) []schema.AreaEntry {
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Percentage > areas[j].Percentage
	})
	return truncate(areas, limit)
}

func truncate(areas []schema.AreaEntry, limit int) []schema.AreaEntry {
	if limit < 0 {
		limit = 0
	}
	if len(areas) > limit {
		return areas[:limit]
	}
	return areas
}

// WeakestStage returns the stage with the lowest percentage. Ties go to the
// earliest stage in the input.
func WeakestStage(stages []schema.StageScore) (schema.StageScore, bool) {
	if len(stages) == 0 {
		return schema.StageScore{}, false
	}
	best := stages[0]
	for _, s := range stages[1:] {
		if s.Percentage < best.Percentage {
			best = s
		}
	}
	return best, true
}

// StrongestStage returns the stage with the highest percentage. Ties go to
// the earliest stage in the input.
func StrongestStage(stages []schema.StageScore) (schema.StageScore, bool) {
	if len(stages) == 0 {
		return schema.StageScore{}, false
	}
	best := stages[0]
	for _, s := range stages[1:] {
		if s.Percentage > best.Percentage {
			best = s
		}
	}
	return best, true
}
