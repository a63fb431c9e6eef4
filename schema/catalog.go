package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/questions.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk layout of a question bank.
type catalogFile struct {
	Stages     []StageDefinition    `yaml:"stages"`
	Techniques map[string]Technique `yaml:"techniques"`
}

// Catalog holds the question bank and technique taxonomy. It is loaded once
// and must not be mutated afterwards.
type Catalog struct {
	Stages     []StageDefinition
	Techniques map[string]Technique

	index map[Stage]map[string]int // stage -> question id -> position in Questions
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
})

// DefaultCatalog returns the built-in question bank.
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// LoadCatalog reads a question bank from a YAML or JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read question bank: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a question bank.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode question bank: %w", err)
	}

	techniques := make(map[string]Technique, len(raw.Techniques))
	for id, t := range raw.Techniques {
		t.ID = id
		techniques[id] = t
	}

	c := &Catalog{Stages: raw.Stages, Techniques: techniques}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// build validates the catalog, sorts stages canonically and indexes questions.
func (c *Catalog) build() error {
	if len(c.Stages) == 0 {
		return errors.New("question bank has no stages")
	}

	c.index = make(map[Stage]map[string]int, len(c.Stages))
	for _, sd := range c.Stages {
		if !sd.Stage.IsValid() {
			return fmt.Errorf("unknown stage %q in question bank", sd.Stage)
		}
		if _, dup := c.index[sd.Stage]; dup {
			return fmt.Errorf("stage %q defined twice in question bank", sd.Stage)
		}
		ids := make(map[string]int, len(sd.Questions))
		for i, q := range sd.Questions {
			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("stage %s: %w", sd.Stage, err)
			}
			if _, dup := ids[q.ID]; dup {
				return fmt.Errorf("stage %s: question %q defined twice", sd.Stage, q.ID)
			}
			ids[q.ID] = i
		}
		c.index[sd.Stage] = ids
	}

	sort.SliceStable(c.Stages, func(i, j int) bool {
		return slices.Index(AllStages, c.Stages[i].Stage) < slices.Index(AllStages, c.Stages[j].Stage)
	})
	return nil
}

// validateQuestion checks a single question definition.
func validateQuestion(q QuestionDefinition) error {
	if strings.TrimSpace(q.ID) == "" {
		return errors.New("question without id")
	}
	if math.IsNaN(q.Weight) || math.IsInf(q.Weight, 0) || q.Weight <= 0 {
		return fmt.Errorf("question %q: weight must be a positive number (got %v)", q.ID, q.Weight)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("question %q: expected %d options, got %d", q.ID, OptionsPerQuestion, len(q.Options))
	}
	seen := make(map[int]struct{}, len(q.Options))
	for _, o := range q.Options {
		if o.Value < MinOptionValue || o.Value > MaxOptionValue {
			return fmt.Errorf("question %q: option value %d outside [%d,%d]", q.ID, o.Value, MinOptionValue, MaxOptionValue)
		}
		if _, dup := seen[o.Value]; dup {
			return fmt.Errorf("question %q: option value %d used twice", q.ID, o.Value)
		}
		seen[o.Value] = struct{}{}
	}
	return nil
}

// StageDefinition returns the definition of a stage.
func (c *Catalog) StageDefinition(stage Stage) (StageDefinition, bool) {
	for _, sd := range c.Stages {
		if sd.Stage == stage {
			return sd, true
		}
	}
	return StageDefinition{}, false
}

// Question returns the definition of a question.
func (c *Catalog) Question(stage Stage, questionID string) (QuestionDefinition, bool) {
	pos, ok := c.index[stage][questionID]
	if !ok {
		return QuestionDefinition{}, false
	}
	sd, _ := c.StageDefinition(stage)
	return sd.Questions[pos], true
}

// Technique returns taxonomy metadata for a technique tag.
func (c *Catalog) Technique(tag string) (Technique, bool) {
	if c == nil {
		return Technique{}, false
	}
	t, ok := c.Techniques[tag]
	return t, ok
}

// TechniqueIDs returns all technique ids in sorted order.
func (c *Catalog) TechniqueIDs() []string {
	ids := make([]string, 0, len(c.Techniques))
	for id := range c.Techniques {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// QuestionCount returns the number of questions across all stages.
func (c *Catalog) QuestionCount() int {
	total := 0
	for _, sd := range c.Stages {
		total += len(sd.Questions)
	}
	return total
}

// ResponseFor resolves a selected option value into a Response, copying the
// question's weight, technique tag and option text.
func (c *Catalog) ResponseFor(stage Stage, questionID string, value int) (Response, error) {
	if !stage.IsValid() {
		return Response{}, &MalformedResponseError{Stage: stage, QuestionID: questionID, Reason: "unknown stage"}
	}
	q, ok := c.Question(stage, questionID)
	if !ok {
		return Response{}, &MalformedResponseError{Stage: stage, QuestionID: questionID, Reason: "unknown question"}
	}
	opt, ok := q.OptionFor(value)
	if !ok {
		return Response{}, &MalformedResponseError{Stage: stage, QuestionID: questionID, Reason: fmt.Sprintf("value %d is not an option of this question", value)}
	}
	r := Response{Value: opt.Value, Weight: q.Weight, Text: opt.Text, TechniqueTag: q.TechniqueTag}
	if err := ValidateResponse(stage, questionID, r); err != nil {
		return Response{}, err
	}
	return r, nil
}

// WithWeights returns a copy of the catalog with question weights replaced by
// id. Every id must exist and every weight must be positive.
func (c *Catalog) WithWeights(overrides map[string]float64) (*Catalog, error) {
	if len(overrides) == 0 {
		return c, nil
	}

	clone := &Catalog{Techniques: c.Techniques, Stages: make([]StageDefinition, len(c.Stages))}
	applied := make(map[string]bool, len(overrides))
	for i, sd := range c.Stages {
		sd.Questions = slices.Clone(sd.Questions)
		for j, q := range sd.Questions {
			if w, ok := overrides[q.ID]; ok {
				sd.Questions[j].Weight = w
				applied[q.ID] = true
			}
		}
		clone.Stages[i] = sd
	}
	for id := range overrides {
		if !applied[id] {
			return nil, fmt.Errorf("weight override for unknown question %q", id)
		}
	}
	if err := clone.build(); err != nil {
		return nil, err
	}
	return clone, nil
}
