package algo

import (
	"github.com/huangsam/ransomready/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TechniqueLookup resolves taxonomy metadata for a technique tag.
type TechniqueLookup func(tag string) (schema.Technique, bool)

// Coverage groups the breakdown by technique tag in first-seen order. The
// empty tag is grouped like any other. Tags unknown to lookup get no Info.
func Coverage(breakdown []schema.QuestionScore, lookup TechniqueLookup) []schema.TechniqueCoverage {
	groups := orderedmap.New[string, *schema.TechniqueCoverage]()
	for _, q := range breakdown {
		c, ok := groups.Get(q.TechniqueTag)
		if !ok {
			c = &schema.TechniqueCoverage{Tag: q.TechniqueTag}
			groups.Set(q.TechniqueTag, c)
		}
		c.Earned += q.Earned
		c.Possible += q.Possible
		c.Questions = append(c.Questions, schema.CoverageQuestion{
			Stage:      q.Stage,
			QuestionID: q.QuestionID,
			Percentage: q.Percentage,
		})
	}

	out := make([]schema.TechniqueCoverage, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		c := *pair.Value
		c.Percentage = Round1(SafeRatio(c.Earned, c.Possible))
		if lookup != nil {
			if info, ok := lookup(c.Tag); ok {
				c.Info = &info
			}
		}
		out = append(out, c)
	}
	return out
}
