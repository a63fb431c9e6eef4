package core

import (
	"sync"

	"github.com/huangsam/ransomready/core/algo"
	"github.com/huangsam/ransomready/schema"
)

// Engine turns response sets into score reports. Compute is a pure function
// of its input; Last only mirrors the most recent successful result.
type Engine struct {
	lookup algo.TechniqueLookup

	mu   sync.RWMutex
	last *schema.ScoreReport
}

// NewEngine creates an engine that decorates coverage with lookup. A nil
// lookup leaves every coverage entry without taxonomy info.
func NewEngine(lookup algo.TechniqueLookup) *Engine {
	return &Engine{lookup: lookup}
}

// Compute scores a response set. Missing stages and questions score zero;
// the only error is a *schema.MalformedResponseError.
func (e *Engine) Compute(rs *schema.ResponseSet) (schema.ScoreReport, error) {
	builder := NewReportBuilder(rs, e.lookup)
	if err := builder.ValidateResponses(); err != nil {
		return schema.ScoreReport{}, err
	}

	report := *builder.
		ScoreStages().
		ComputeOverall().
		BuildBreakdown().
		RankAreas().
		BuildCoverage().
		BuildInsights().
		GetResult()

	mirror := report.Clone()
	e.mu.Lock()
	e.last = &mirror
	e.mu.Unlock()

	return report, nil
}

// Last returns a copy of the most recent successful report.
func (e *Engine) Last() (schema.ScoreReport, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.last == nil {
		return schema.ScoreReport{}, false
	}
	return e.last.Clone(), true
}
