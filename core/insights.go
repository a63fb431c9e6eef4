package core

import (
	"fmt"

	"github.com/huangsam/ransomready/core/algo"
	"github.com/huangsam/ransomready/schema"
)

// levelHeadlines holds the tag and closing phrase of the overall insight.
var levelHeadlines = map[schema.ReadinessLevel]struct{ tag, tail string }{
	schema.CriticalLevel:  {"URGENT", "and requires immediate attention to basic security controls"},
	schema.PoorLevel:      {"WARNING", "and has significant security gaps that need addressing"},
	schema.ModerateLevel:  {"DEVELOPING", "with a moderate security posture that can be enhanced"},
	schema.GoodLevel:      {"STRONG", "with good security practices in place"},
	schema.ExcellentLevel: {"EXCELLENT", "with outstanding security practices"},
}

// Insights regenerates the summary lines of a report from its numbers alone.
// Calling it on a computed report returns exactly report.Insights.
func Insights(report schema.ScoreReport) []string {
	insights := make([]string, 0, 4)

	h, ok := levelHeadlines[report.Overall.Level]
	if !ok {
		h = levelHeadlines[schema.CriticalLevel]
	}
	insights = append(insights, fmt.Sprintf("%s: Your organization scores %.1f%% %s.",
		h.tag, report.Overall.Percentage, h.tail))

	if weakest, ok := algo.WeakestStage(report.Stages); ok {
		insights = append(insights, fmt.Sprintf("Weakest area: %s (%.1f%%)", weakest.Stage.Title(), weakest.Percentage))
	}
	if strongest, ok := algo.StrongestStage(report.Stages); ok {
		insights = append(insights, fmt.Sprintf("Strongest area: %s (%.1f%%)", strongest.Stage.Title(), strongest.Percentage))
	}

	if report.RiskAreaCount > 0 {
		insights = append(insights, fmt.Sprintf("Priority focus: %d critical areas need immediate attention", report.RiskAreaCount))
	}
	return insights
}
