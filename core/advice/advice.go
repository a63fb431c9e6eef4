// Package advice turns a score report into prioritized recommendations, a
// 30/60/90 day plan, NIST CSF alignment and an executive summary.
package advice

import (
	"fmt"
	"strings"

	"github.com/huangsam/ransomready/schema"
)

// Thresholds used when reading a report.
const (
	topRisks          = 3    // risk areas that get question-specific advice
	criticalBelow     = 25.0 // question percentage treated as critical
	weakTechnique     = 50.0 // technique coverage that needs attention
	weakStage         = 60.0 // stage percentage that needs attention
	planActionsPerDay = 5    // actions per action plan phase
	highInvestment    = 40.0
	mediumInvestment  = 70.0
	summaryTimeline   = "30-90 days for critical improvements"
)

// levelAdvice holds the overall recommendations per readiness level.
var levelAdvice = map[schema.ReadinessLevel]struct {
	bucket string
	items  []string
}{
	schema.CriticalLevel: {schema.ImmediateBucket, []string{
		"CRITICAL: Implement basic data backup procedures immediately",
		"CRITICAL: Establish incident response team and basic procedures",
		"CRITICAL: Deploy basic endpoint protection on all systems",
		"CRITICAL: Create network inventory and implement basic segmentation",
	}},
	schema.PoorLevel: {schema.ImmediateBucket, []string{
		"HIGH PRIORITY: Review and enhance existing backup strategies",
		"HIGH PRIORITY: Develop comprehensive incident response plan",
		"HIGH PRIORITY: Implement employee security awareness training",
	}},
	schema.ModerateLevel: {schema.ShortTermBucket, []string{
		"ENHANCE: Test and validate backup and recovery procedures",
		"ENHANCE: Implement advanced threat detection capabilities",
		"ENHANCE: Conduct regular security assessments",
	}},
	schema.GoodLevel: {schema.MediumTermBucket, []string{
		"OPTIMIZE: Implement zero-trust architecture principles",
		"OPTIMIZE: Deploy advanced threat hunting capabilities",
		"OPTIMIZE: Enhance automation in incident response",
	}},
	schema.ExcellentLevel: {schema.BestPracticesBucket, []string{
		"MAINTAIN: Continue current excellent practices",
		"MAINTAIN: Share best practices with industry peers",
		"MAINTAIN: Consider becoming a cybersecurity mentor organization",
	}},
}

// questionAdvice is keyed by question id. The critical entry applies below
// criticalBelow, the other entry goes to its bucket.
var questionAdvice = map[string]struct {
	critical     string
	bucket, text string
}{
	"backup_strategy": {
		critical: "BACKUP: Implement automated daily backups with 3-2-1 strategy",
		bucket:   schema.ShortTermBucket,
		text:     "BACKUP: Enhance backup testing and validation procedures",
	},
	"incident_response_plan": {
		critical: "INCIDENT RESPONSE: Create documented incident response procedures",
		bucket:   schema.ShortTermBucket,
		text:     "INCIDENT RESPONSE: Conduct tabletop exercises and plan testing",
	},
	"network_segmentation": {
		critical: "NETWORK: Implement basic network segmentation and access controls",
		bucket:   schema.MediumTermBucket,
		text:     "NETWORK: Deploy micro-segmentation and zero-trust principles",
	},
	"endpoint_protection": {
		critical: "ENDPOINT: Deploy next-generation antivirus on all endpoints",
		bucket:   schema.ShortTermBucket,
		text:     "ENDPOINT: Implement EDR/XDR solutions with threat hunting",
	},
}

// techniqueAdvice is keyed by technique tag; %s is the technique name.
var techniqueAdvice = map[string]struct{ bucket, format string }{
	"T1566": {schema.ShortTermBucket, "ANTI-PHISHING: Implement advanced email security and user training for %s"},
	"T1490": {schema.ImmediateBucket, "RECOVERY: Strengthen backup and recovery capabilities against %s"},
	"T1486": {schema.ShortTermBucket, "PROTECTION: Implement file integrity monitoring and backup protection against %s"},
}

// stageAdvice is keyed by stage; %s is the stage title.
var stageAdvice = map[schema.Stage]struct{ bucket, format string }{
	schema.PreInfection:    {schema.ShortTermBucket, "PREVENTION: Strengthen %s controls including backups, patching, and training"},
	schema.ActiveInfection: {schema.ShortTermBucket, "DETECTION: Improve %s capabilities with monitoring and response procedures"},
	schema.PostInfection:   {schema.MediumTermBucket, "RECOVERY: Enhance %s planning including business continuity and forensics"},
}

// csfKeywords are checked in order; the first function with a matching
// keyword wins and IDENTIFY takes the rest.
var csfKeywords = []struct {
	function schema.CSFFunction
	words    []string
}{
	{schema.RecoverFunction, []string{"backup", "recovery"}},
	{schema.DetectFunction, []string{"monitor", "detect"}},
	{schema.RespondFunction, []string{"incident", "response"}},
	{schema.ProtectFunction, []string{"segment", "protection"}},
}

// Generate derives all advice from a report.
func Generate(report schema.ScoreReport) schema.Advice {
	recs := Recommend(report)
	return schema.Advice{
		Recommendations: recs,
		ActionPlan:      ActionPlan(recs),
		CSFAlignment:    CSFAlignment(recs),
		Summary:         Summarize(report, recs),
	}
}

// Recommend builds the prioritized recommendations of a report.
func Recommend(report schema.ScoreReport) schema.Recommendations {
	var recs schema.Recommendations

	if la, ok := levelAdvice[report.Overall.Level]; ok {
		for _, item := range la.items {
			add(&recs, la.bucket, item)
		}
	}

	risks := report.RiskAreas
	if len(risks) > topRisks {
		risks = risks[:topRisks]
	}
	for _, r := range risks {
		qa, ok := questionAdvice[r.QuestionID]
		if !ok {
			continue
		}
		if r.Percentage < criticalBelow {
			add(&recs, schema.ImmediateBucket, qa.critical)
		} else {
			add(&recs, qa.bucket, qa.text)
		}
	}

	for _, c := range report.Coverage {
		if c.Percentage >= weakTechnique {
			continue
		}
		ta, ok := techniqueAdvice[c.Tag]
		if !ok {
			continue
		}
		name := c.Tag
		if c.Info != nil && c.Info.Name != "" {
			name = c.Info.Name
		}
		add(&recs, ta.bucket, fmt.Sprintf(ta.format, name))
	}

	for _, st := range report.Stages {
		if st.Percentage >= weakStage {
			continue
		}
		if sa, ok := stageAdvice[st.Stage]; ok {
			add(&recs, sa.bucket, fmt.Sprintf(sa.format, st.Stage.Title()))
		}
	}
	return recs
}

func add(recs *schema.Recommendations, bucket, item string) {
	switch bucket {
	case schema.ImmediateBucket:
		recs.Immediate = append(recs.Immediate, item)
	case schema.ShortTermBucket:
		recs.ShortTerm = append(recs.ShortTerm, item)
	case schema.MediumTermBucket:
		recs.MediumTerm = append(recs.MediumTerm, item)
	case schema.LongTermBucket:
		recs.LongTerm = append(recs.LongTerm, item)
	default:
		recs.BestPractices = append(recs.BestPractices, item)
	}
}

// ActionPlan picks the first actions of the immediate, short and medium term
// buckets for the 30, 60 and 90 day phases.
func ActionPlan(recs schema.Recommendations) []schema.ActionPlanPhase {
	return []schema.ActionPlanPhase{
		{Days: 30, Title: "Immediate Actions (Next 30 Days)", Actions: head(recs.Immediate, planActionsPerDay)},
		{Days: 60, Title: "Short-term Improvements (Next 60 Days)", Actions: head(recs.ShortTerm, planActionsPerDay)},
		{Days: 90, Title: "Medium-term Enhancements (Next 90 Days)", Actions: head(recs.MediumTerm, planActionsPerDay)},
	}
}

func head(items []string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < len(items) && i < n; i++ {
		out = append(out, items[i])
	}
	return out
}

// CSFAlignment files the immediate, short and medium term recommendations
// under NIST CSF functions by keyword.
func CSFAlignment(recs schema.Recommendations) map[schema.CSFFunction][]string {
	out := make(map[schema.CSFFunction][]string, len(schema.AllCSFFunctions))
	for _, fn := range schema.AllCSFFunctions {
		out[fn] = []string{}
	}

	all := make([]string, 0, len(recs.Immediate)+len(recs.ShortTerm)+len(recs.MediumTerm))
	all = append(all, recs.Immediate...)
	all = append(all, recs.ShortTerm...)
	all = append(all, recs.MediumTerm...)
	for _, rec := range all {
		fn := csfFunctionOf(rec)
		out[fn] = append(out[fn], rec)
	}
	return out
}

func csfFunctionOf(rec string) schema.CSFFunction {
	lower := strings.ToLower(rec)
	for _, k := range csfKeywords {
		for _, w := range k.words {
			if strings.Contains(lower, w) {
				return k.function
			}
		}
	}
	return schema.IdentifyFunction
}

// Summarize builds the executive summary. Critical areas are counted over
// the whole breakdown, not only the top risk areas.
func Summarize(report schema.ScoreReport, recs schema.Recommendations) schema.ExecutiveSummary {
	critical := 0
	for _, q := range report.Breakdown {
		if q.Percentage < criticalBelow {
			critical++
		}
	}

	priority, note := InvestmentPriority(report.Overall.Percentage)
	return schema.ExecutiveSummary{
		RiskLevel:          report.Overall.Level,
		Score:              report.Overall.Percentage,
		CriticalAreas:      critical,
		ImmediateActions:   len(recs.Immediate),
		InvestmentPriority: priority,
		InvestmentNote:     note,
		Timeline:           summaryTimeline,
	}
}

// InvestmentPriority maps an overall percentage to a priority and a note.
func InvestmentPriority(pct float64) (string, string) {
	switch {
	case pct < highInvestment:
		return schema.HighPriority, "Immediate investment required"
	case pct < mediumInvestment:
		return schema.MediumPriority, "Planned investment recommended"
	default:
		return schema.LowPriority, "Maintain current investment levels"
	}
}
