package schema

import "slices"

// StageScore is the weighted rollup of one stage.
type StageScore struct {
	Stage      Stage   `json:"stage"`
	Earned     float64 `json:"earned"`
	Possible   float64 `json:"possible"`
	Percentage float64 `json:"percentage"`
	Answered   int     `json:"answered"`
}

// QuestionScore is the isolated score of one answered question. Its
// percentage does not depend on the weight.
type QuestionScore struct {
	Stage        Stage   `json:"stage"`
	QuestionID   string  `json:"question_id"`
	Value        int     `json:"value"`
	Weight       float64 `json:"weight"`
	Earned       float64 `json:"earned"`
	Possible     float64 `json:"possible"`
	Percentage   float64 `json:"percentage"`
	ResponseText string  `json:"response"`
	TechniqueTag string  `json:"mitre_technique"`
}

// AreaEntry is a risk or strength area.
type AreaEntry struct {
	Stage        Stage   `json:"stage"`
	QuestionID   string  `json:"question_id"`
	Percentage   float64 `json:"percentage"`
	TechniqueTag string  `json:"mitre_technique"`
	Response     string  `json:"response"`
}

// CoverageQuestion references a question that contributes to a technique.
type CoverageQuestion struct {
	Stage      Stage   `json:"stage"`
	QuestionID string  `json:"question_id"`
	Percentage float64 `json:"percentage"`
}

// TechniqueCoverage is the rollup of all questions sharing a technique tag.
// Info is nil when the tag is not in the taxonomy.
type TechniqueCoverage struct {
	Tag        string             `json:"tag"`
	Earned     float64            `json:"earned"`
	Possible   float64            `json:"possible"`
	Percentage float64            `json:"percentage"`
	Questions  []CoverageQuestion `json:"questions"`
	Info       *Technique         `json:"info,omitempty"`
}

// OverallAssessment is the top-level result.
type OverallAssessment struct {
	Earned   float64 `json:"earned"`
	Possible float64 `json:"possible"`
	// Percentage is rounded to one decimal; Level is taken from the unrounded value.
	Percentage float64        `json:"percentage"`
	Level      ReadinessLevel `json:"readiness_level"`
}

// ScoreReport is the result of one scoring run. Stages always holds every
// canonical stage in canonical order.
type ScoreReport struct {
	Overall           OverallAssessment   `json:"overall"`
	Stages            []StageScore        `json:"stages"`
	Breakdown         []QuestionScore     `json:"breakdown"`
	RiskAreas         []AreaEntry         `json:"risk_areas"`
	StrengthAreas     []AreaEntry         `json:"strength_areas"`
	RiskAreaCount     int                 `json:"risk_area_count"`
	StrengthAreaCount int                 `json:"strength_area_count"`
	Coverage          []TechniqueCoverage `json:"technique_coverage"`
	Insights          []string            `json:"insights"`
}

// Stage returns the score of one stage.
func (r ScoreReport) Stage(s Stage) (StageScore, bool) {
	for _, st := range r.Stages {
		if st.Stage == s {
			return st, true
		}
	}
	return StageScore{}, false
}

// CoverageFor returns the coverage entry of a technique tag.
func (r ScoreReport) CoverageFor(tag string) (TechniqueCoverage, bool) {
	for _, c := range r.Coverage {
		if c.Tag == tag {
			return c, true
		}
	}
	return TechniqueCoverage{}, false
}

// Clone returns a deep copy so callers can hold a report without aliasing.
func (r ScoreReport) Clone() ScoreReport {
	out := r
	out.Stages = slices.Clone(r.Stages)
	out.Breakdown = slices.Clone(r.Breakdown)
	out.RiskAreas = slices.Clone(r.RiskAreas)
	out.StrengthAreas = slices.Clone(r.StrengthAreas)
	out.Insights = slices.Clone(r.Insights)
	if r.Coverage != nil {
		out.Coverage = make([]TechniqueCoverage, len(r.Coverage))
		for i, c := range r.Coverage {
			c.Questions = slices.Clone(c.Questions)
			if c.Info != nil {
				info := *c.Info
				c.Info = &info
			}
			out.Coverage[i] = c
		}
	}
	return out
}
