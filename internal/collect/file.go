// Package collect assembles response sets from answers files and console
// walkthroughs, and checks them for completeness.
package collect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
	"gopkg.in/yaml.v3"
)

// answersFile is the on-disk layout of recorded answers. JSON files decode
// through the same path since JSON is valid YAML.
type answersFile struct {
	Session schema.Session `yaml:"session"`
	Answers []answerEntry  `yaml:"answers"`
}

// answerEntry is one selected option. Value is a pointer so a missing value
// can be told apart from 0.
type answerEntry struct {
	Stage    schema.Stage `yaml:"stage"`
	Question string       `yaml:"question"`
	Value    *int         `yaml:"value"`
}

// FileCollector reads answers from a YAML or JSON file.
type FileCollector struct {
	Path string
}

var _ contract.Collector = &FileCollector{} // Compile-time check

// NewFileCollector creates a collector for the given answers file.
func NewFileCollector(path string) *FileCollector {
	return &FileCollector{Path: path}
}

// Collect implements the contract.Collector interface.
func (c *FileCollector) Collect(ctx context.Context, catalog *schema.Catalog) (*schema.ResponseSet, schema.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, schema.Session{}, err
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, schema.Session{}, fmt.Errorf("cannot read answers file: %w", err)
	}
	return ParseAnswers(data, catalog)
}

// ParseAnswers resolves every answer against the catalog. Unknown stages,
// unknown questions, missing or invalid values and duplicates are malformed.
func ParseAnswers(data []byte, catalog *schema.Catalog) (*schema.ResponseSet, schema.Session, error) {
	var raw answersFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, schema.Session{}, fmt.Errorf("cannot decode answers file: %w", err)
	}

	rs := schema.NewResponseSet()
	for _, a := range raw.Answers {
		if a.Value == nil {
			return nil, schema.Session{}, &schema.MalformedResponseError{Stage: a.Stage, QuestionID: a.Question, Reason: "missing value"}
		}
		if _, dup := rs.Get(a.Stage, a.Question); dup {
			return nil, schema.Session{}, &schema.MalformedResponseError{Stage: a.Stage, QuestionID: a.Question, Reason: "answered more than once"}
		}
		r, err := catalog.ResponseFor(a.Stage, a.Question, *a.Value)
		if err != nil {
			return nil, schema.Session{}, err
		}
		if err := rs.Record(a.Stage, a.Question, r); err != nil {
			return nil, schema.Session{}, err
		}
	}

	session := raw.Session
	session.Organization = contract.SanitizeInput(session.Organization)
	session.Assessor = contract.SanitizeInput(session.Assessor)
	if session.Email != "" {
		email, err := contract.ValidateEmail(session.Email)
		if err != nil {
			return nil, schema.Session{}, err
		}
		session.Email = email
	}
	if session.OrgSize != "" {
		size, err := contract.NormalizeOrgSize(string(session.OrgSize))
		if err != nil {
			return nil, schema.Session{}, err
		}
		session.OrgSize = size
	}
	return rs, session, nil
}
