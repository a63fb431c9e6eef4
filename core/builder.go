package core

import (
	"github.com/huangsam/ransomready/core/algo"
	"github.com/huangsam/ransomready/schema"
)

// ReportBuilder assembles a ScoreReport from a response set one step at a
// time. Each step reads only what earlier steps produced.
type ReportBuilder struct {
	responses *schema.ResponseSet
	lookup    algo.TechniqueLookup
	result    *schema.ScoreReport

	// Internal data collected during the build process
	risks     []schema.AreaEntry
	strengths []schema.AreaEntry
}

// NewReportBuilder is the starting point for building a report.
func NewReportBuilder(rs *schema.ResponseSet, lookup algo.TechniqueLookup) *ReportBuilder {
	return &ReportBuilder{
		responses: rs,
		lookup:    lookup,
		result:    &schema.ScoreReport{},
	}
}

// ValidateResponses fails on the first response that cannot be scored,
// walking stages in canonical order.
func (b *ReportBuilder) ValidateResponses() error {
	for _, stage := range schema.AllStages {
		for _, a := range b.responses.Answers(stage) {
			if err := schema.ValidateResponse(stage, a.QuestionID, a.Response); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScoreStages computes a StageScore for every canonical stage. Stages without
// answers score 0 of 0.
func (b *ReportBuilder) ScoreStages() *ReportBuilder {
	b.result.Stages = make([]schema.StageScore, 0, len(schema.AllStages))
	for _, stage := range schema.AllStages {
		answers := b.responses.Answers(stage)
		earned, possible, pct := algo.StageScore(answers)
		b.result.Stages = append(b.result.Stages, schema.StageScore{
			Stage:      stage,
			Earned:     earned,
			Possible:   possible,
			Percentage: algo.Round1(pct),
			Answered:   len(answers),
		})
	}
	return b
}

// ComputeOverall sums the stages and classifies the result. The level is taken
// from the unrounded percentage.
func (b *ReportBuilder) ComputeOverall() *ReportBuilder {
	var earned, possible float64
	for _, st := range b.result.Stages {
		earned += st.Earned
		possible += st.Possible
	}
	pct := algo.SafeRatio(earned, possible)
	b.result.Overall = schema.OverallAssessment{
		Earned:     earned,
		Possible:   possible,
		Percentage: algo.Round1(pct),
		Level:      algo.ReadinessLevel(pct),
	}
	return b
}

// BuildBreakdown scores every answered question in isolation.
func (b *ReportBuilder) BuildBreakdown() *ReportBuilder {
	b.result.Breakdown = make([]schema.QuestionScore, 0, b.responses.Len())
	for _, stage := range schema.AllStages {
		for _, a := range b.responses.Answers(stage) {
			earned, possible := algo.Points(a.Response)
			b.result.Breakdown = append(b.result.Breakdown, schema.QuestionScore{
				Stage:        stage,
				QuestionID:   a.QuestionID,
				Value:        a.Value,
				Weight:       a.Weight,
				Earned:       earned,
				Possible:     possible,
				Percentage:   algo.Round1(algo.QuestionPercentage(a.Value)),
				ResponseText: a.Text,
				TechniqueTag: a.TechniqueTag,
			})
		}
	}
	return b
}

// RankAreas selects risk and strength areas from the breakdown, keeping the
// full counts and the top entries of each.
func (b *ReportBuilder) RankAreas() *ReportBuilder {
	b.risks = algo.SelectRisks(b.result.Breakdown)
	b.strengths = algo.SelectStrengths(b.result.Breakdown)
	b.result.RiskAreaCount = len(b.risks)
	b.result.StrengthAreaCount = len(b.strengths)
	b.result.RiskAreas = algo.RankRisks(b.risks, algo.MaxAreas)
	b.result.StrengthAreas = algo.RankStrengths(b.strengths, algo.MaxAreas)
	return b
}

// BuildCoverage rolls the breakdown up by technique tag.
func (b *ReportBuilder) BuildCoverage() *ReportBuilder {
	b.result.Coverage = algo.Coverage(b.result.Breakdown, b.lookup)
	return b
}

// BuildInsights derives the summary lines from the numbers computed so far.
func (b *ReportBuilder) BuildInsights() *ReportBuilder {
	b.result.Insights = Insights(*b.result)
	return b
}

// GetResult returns the built report.
func (b *ReportBuilder) GetResult() *schema.ScoreReport {
	return b.result
}
