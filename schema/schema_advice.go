package schema

// Priority buckets of recommendations.
const (
	ImmediateBucket     = "immediate"
	ShortTermBucket     = "short_term"
	MediumTermBucket    = "medium_term"
	LongTermBucket      = "long_term"
	BestPracticesBucket = "best_practices"
)

// Investment priorities of the executive summary.
const (
	HighPriority   = "HIGH"
	MediumPriority = "MEDIUM"
	LowPriority    = "LOW"
)

// Recommendations groups advice by priority bucket.
type Recommendations struct {
	Immediate     []string `json:"immediate"`
	ShortTerm     []string `json:"short_term"`
	MediumTerm    []string `json:"medium_term"`
	LongTerm      []string `json:"long_term"`
	BestPractices []string `json:"best_practices"`
}

// Buckets returns the buckets paired with their names in priority order.
func (r *Recommendations) Buckets() []RecommendationBucket {
	return []RecommendationBucket{
		{Name: ImmediateBucket, Items: r.Immediate},
		{Name: ShortTermBucket, Items: r.ShortTerm},
		{Name: MediumTermBucket, Items: r.MediumTerm},
		{Name: LongTermBucket, Items: r.LongTerm},
		{Name: BestPracticesBucket, Items: r.BestPractices},
	}
}

// Total returns the number of recommendations across all buckets.
func (r *Recommendations) Total() int {
	total := 0
	for _, b := range r.Buckets() {
		total += len(b.Items)
	}
	return total
}

// RecommendationBucket is a named bucket of recommendations.
type RecommendationBucket struct {
	Name  string
	Items []string
}

// ActionPlanPhase is one step of the 30/60/90 day plan.
type ActionPlanPhase struct {
	Days    int      `json:"days"`
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

// ExecutiveSummary condenses a report for leadership.
type ExecutiveSummary struct {
	RiskLevel          ReadinessLevel `json:"overall_risk_level"`
	Score              float64        `json:"overall_score"`
	CriticalAreas      int            `json:"critical_areas_count"`
	ImmediateActions   int            `json:"immediate_actions_required"`
	InvestmentPriority string         `json:"investment_priority"`
	InvestmentNote     string         `json:"investment_note"`
	Timeline           string         `json:"recommended_timeline"`
}

// Advice is everything derived from a report after scoring.
type Advice struct {
	Recommendations Recommendations          `json:"recommendations"`
	ActionPlan      []ActionPlanPhase        `json:"action_plan"`
	CSFAlignment    map[CSFFunction][]string `json:"nist_csf_alignment"`
	Summary         ExecutiveSummary         `json:"executive_summary"`
}
