package schema

import (
	"fmt"
	"math"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Response is one recorded answer. Weight and TechniqueTag are copied from the
// question definition when the answer is recorded.
type Response struct {
	Value        int     `json:"value" yaml:"value"`
	Weight       float64 `json:"weight" yaml:"weight"`
	Text         string  `json:"text" yaml:"text"`
	TechniqueTag string  `json:"mitre_technique" yaml:"mitre_technique"`
}

// NewResponse builds a validated response.
func NewResponse(value int, weight float64, text, techniqueTag string) (Response, error) {
	r := Response{Value: value, Weight: weight, Text: text, TechniqueTag: techniqueTag}
	if err := ValidateResponse("", "", r); err != nil {
		return Response{}, err
	}
	return r, nil
}

// ValidateResponse checks the value range and weight of a response and
// names the offending stage/question on failure.
func ValidateResponse(stage Stage, questionID string, r Response) error {
	var reason string
	switch {
	case r.Value < MinOptionValue || r.Value > MaxOptionValue:
		reason = fmt.Sprintf("value %d outside [%d,%d]", r.Value, MinOptionValue, MaxOptionValue)
	case math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0):
		reason = fmt.Sprintf("weight %v is not a finite number", r.Weight)
	case r.Weight <= 0:
		reason = fmt.Sprintf("weight %v must be positive", r.Weight)
	default:
		return nil
	}
	return &MalformedResponseError{Stage: stage, QuestionID: questionID, Reason: reason}
}

// Answer pairs a question id with its response.
type Answer struct {
	QuestionID string
	Response
}

// ResponseSet maps Stage -> question id -> Response. Answers keep the order in
// which they were first recorded, so ranking ties resolve the same way on
// every run. A nil *ResponseSet is a valid empty set.
type ResponseSet struct {
	stages map[Stage]*orderedmap.OrderedMap[string, Response]
}

// NewResponseSet creates an empty response set.
func NewResponseSet() *ResponseSet {
	return &ResponseSet{stages: make(map[Stage]*orderedmap.OrderedMap[string, Response])}
}

// Record stores a response. Re-recording a question replaces its response but
// keeps its original position. Only the key is checked here; value and weight
// are checked by NewResponse and again when the set is scored.
func (rs *ResponseSet) Record(stage Stage, questionID string, r Response) error {
	if !stage.IsValid() {
		return &MalformedResponseError{Stage: stage, QuestionID: questionID, Reason: "unknown stage"}
	}
	if strings.TrimSpace(questionID) == "" {
		return &MalformedResponseError{Stage: stage, Reason: "empty question id"}
	}
	if rs.stages == nil {
		rs.stages = make(map[Stage]*orderedmap.OrderedMap[string, Response])
	}
	answers, ok := rs.stages[stage]
	if !ok {
		answers = orderedmap.New[string, Response]()
		rs.stages[stage] = answers
	}
	answers.Set(questionID, r)
	return nil
}

// Get returns the response recorded for a question.
func (rs *ResponseSet) Get(stage Stage, questionID string) (Response, bool) {
	if rs == nil {
		return Response{}, false
	}
	answers, ok := rs.stages[stage]
	if !ok {
		return Response{}, false
	}
	return answers.Get(questionID)
}

// Answers returns the answers of a stage in recording order.
func (rs *ResponseSet) Answers(stage Stage) []Answer {
	if rs == nil {
		return nil
	}
	answers, ok := rs.stages[stage]
	if !ok {
		return nil
	}
	out := make([]Answer, 0, answers.Len())
	for pair := answers.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Answer{QuestionID: pair.Key, Response: pair.Value})
	}
	return out
}

// StageLen returns the number of answers recorded for a stage.
func (rs *ResponseSet) StageLen(stage Stage) int {
	if rs == nil {
		return 0
	}
	if answers, ok := rs.stages[stage]; ok {
		return answers.Len()
	}
	return 0
}

// Len returns the total number of answers.
func (rs *ResponseSet) Len() int {
	total := 0
	for _, stage := range AllStages {
		total += rs.StageLen(stage)
	}
	return total
}

// Clone returns an independent copy that preserves answer order.
func (rs *ResponseSet) Clone() *ResponseSet {
	clone := NewResponseSet()
	for _, stage := range AllStages {
		for _, a := range rs.Answers(stage) {
			_ = clone.Record(stage, a.QuestionID, a.Response)
		}
	}
	return clone
}
