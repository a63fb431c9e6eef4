// Package schema has configs, models and reference data for all parts of ransomready.
package schema

import "strings"

// Stage identifies one phase of the ransomware attack lifecycle.
type Stage string

// All lifecycle stages assessed.
const (
	PreInfection    Stage = "pre_infection"
	ActiveInfection Stage = "active_infection"
	PostInfection   Stage = "post_infection"
)

// AllStages is the canonical stage order. Rollups, listings and tie-breaks
// always walk stages in this order.
var AllStages = []Stage{PreInfection, ActiveInfection, PostInfection}

// ValidStages lists all valid stages.
var ValidStages = map[Stage]struct{}{
	PreInfection:    {},
	ActiveInfection: {},
	PostInfection:   {},
}

// Title formats "pre_infection" as "Pre Infection".
func (s Stage) Title() string {
	parts := strings.Split(string(s), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// IsValid reports whether s is one of the canonical stages.
func (s Stage) IsValid() bool {
	_, ok := ValidStages[s]
	return ok
}

// Option is one selectable answer of a question.
type Option struct {
	Value int    `json:"value" yaml:"value"` // 4 is best, 0 is worst
	Text  string `json:"text" yaml:"text"`
}

// QuestionDefinition is static reference data for one question.
type QuestionDefinition struct {
	ID           string   `json:"id" yaml:"id"`
	Prompt       string   `json:"question" yaml:"question"`
	Weight       float64  `json:"weight" yaml:"weight"`
	TechniqueTag string   `json:"mitre_technique" yaml:"mitre_technique"`
	Options      []Option `json:"options" yaml:"options"`
}

// OptionFor returns the option carrying the given value.
func (q QuestionDefinition) OptionFor(value int) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// StageDefinition groups the questions of a single stage.
type StageDefinition struct {
	Stage       Stage                `json:"stage" yaml:"stage"`
	Title       string               `json:"title" yaml:"title"`
	Description string               `json:"description" yaml:"description"`
	Questions   []QuestionDefinition `json:"questions" yaml:"questions"`
}

// Technique describes an entry of the external ATT&CK taxonomy.
type Technique struct {
	ID          string `json:"id" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Tactic      string `json:"tactic" yaml:"tactic"`
}
