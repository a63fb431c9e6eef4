package collect

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func defaultCatalog(t *testing.T) *schema.Catalog {
	t.Helper()
	c, err := schema.DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestParseAnswers(t *testing.T) {
	catalog := defaultCatalog(t)
	data := `
session:
  organization: "Acme <Corp>"
  assessor: Jordan
  email: Jordan@Acme.io
  organization_size: "2"
answers:
  - {stage: post_infection, question: lessons_learned, value: 0}
  - {stage: pre_infection, question: backup_strategy, value: 4}
  - {stage: pre_infection, question: user_training, value: 2}
`
	rs, session, err := ParseAnswers([]byte(data), catalog)
	require.NoError(t, err)

	assert.Equal(t, 3, rs.Len())
	r, ok := rs.Get(schema.PreInfection, "backup_strategy")
	require.True(t, ok)
	assert.Equal(t, 4, r.Value)
	assert.Equal(t, 10.0, r.Weight)
	assert.Equal(t, "T1490", r.TechniqueTag)
	assert.Equal(t, "Daily automated backups with testing", r.Text)

	answers := rs.Answers(schema.PreInfection)
	assert.Equal(t, "backup_strategy", answers[0].QuestionID)
	assert.Equal(t, "user_training", answers[1].QuestionID)

	assert.Equal(t, "Acme Corp", session.Organization)
	assert.Equal(t, "jordan@acme.io", session.Email)
	assert.Equal(t, schema.MediumOrg, session.OrgSize)
}

func TestParseAnswersJSON(t *testing.T) {
	data := `{"answers": [{"stage": "active_infection", "question": "communication_plan", "value": 3}]}`
	rs, session, err := ParseAnswers([]byte(data), defaultCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, 1, rs.StageLen(schema.ActiveInfection))
	assert.Empty(t, session.Organization)
}

func TestParseAnswersEmpty(t *testing.T) {
	rs, _, err := ParseAnswers(nil, defaultCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
}

func TestParseAnswersRejectsMalformed(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		malformed bool
	}{
		{"missing value", "answers:\n  - {stage: pre_infection, question: backup_strategy}", true},
		{"value out of range", "answers:\n  - {stage: pre_infection, question: backup_strategy, value: 7}", true},
		{"unknown stage", "answers:\n  - {stage: mid_infection, question: backup_strategy, value: 1}", true},
		{"unknown question", "answers:\n  - {stage: pre_infection, question: firewall, value: 1}", true},
		{"wrong stage for question", "answers:\n  - {stage: post_infection, question: backup_strategy, value: 1}", true},
		{"duplicate", "answers:\n  - {stage: pre_infection, question: backup_strategy, value: 1}\n  - {stage: pre_infection, question: backup_strategy, value: 2}", true},
		{"value of wrong type", "answers:\n  - {stage: pre_infection, question: backup_strategy, value: high}", false},
		{"unknown field", "answers:\n  - {stage: pre_infection, question: backup_strategy, value: 1, weight: 3}", false},
		{"bad email", "session: {email: nope}", false},
		{"bad org size", "session: {organization_size: galactic}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAnswers([]byte(tt.data), defaultCatalog(t))
			require.Error(t, err)
			assert.Equal(t, tt.malformed, errors.Is(err, schema.ErrMalformedResponse), err.Error())
		})
	}
}

func TestFileCollector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answers:\n  - {stage: pre_infection, question: patch_management, value: 3}\n"), 0o644))

	rs, _, err := NewFileCollector(path).Collect(context.Background(), defaultCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())

	_, _, err = NewFileCollector(filepath.Join(t.TempDir(), "missing.yaml")).Collect(context.Background(), defaultCatalog(t))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = NewFileCollector(path).Collect(ctx, defaultCatalog(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckComplete(t *testing.T) {
	catalog := defaultCatalog(t)

	err := CheckComplete(catalog, schema.NewResponseSet())
	var incomplete *IncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Len(t, incomplete.Missing, 15)
	assert.Equal(t, 0, incomplete.Answered)
	assert.Equal(t, 15, incomplete.Total)
	assert.False(t, errors.Is(err, schema.ErrMalformedResponse))
	assert.Equal(t, "backup_strategy", incomplete.Missing[0].QuestionID)

	full := schema.NewResponseSet()
	for _, sd := range catalog.Stages {
		for _, q := range sd.Questions {
			r, err := catalog.ResponseFor(sd.Stage, q.ID, 2)
			require.NoError(t, err)
			require.NoError(t, full.Record(sd.Stage, q.ID, r))
		}
	}
	assert.NoError(t, CheckComplete(catalog, full))
}

func TestTemplateFor(t *testing.T) {
	catalog := defaultCatalog(t)
	data, err := TemplateFor(catalog)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "How frequently does your organization perform data backups?")
	assert.Contains(t, text, "4 = Daily automated backups with testing")
	assert.Contains(t, text, "value: null")

	var raw answersFile
	require.NoError(t, yaml.Unmarshal(data, &raw))
	require.Len(t, raw.Answers, catalog.QuestionCount())
	assert.Equal(t, schema.PreInfection, raw.Answers[0].Stage)
	assert.Equal(t, "backup_strategy", raw.Answers[0].Question)
	assert.Nil(t, raw.Answers[0].Value)

	// An unfilled template is malformed, not partial.
	_, _, err = ParseAnswers(data, catalog)
	assert.ErrorIs(t, err, schema.ErrMalformedResponse)

	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf, catalog))
	assert.Equal(t, data, buf.Bytes())
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestPromptCollector(t *testing.T) {
	catalog := defaultCatalog(t)
	input := "Acme\nJordan\n" + "9\nabc\n1\n" + strings.Repeat("5\n", catalog.QuestionCount()-1)
	var out bytes.Buffer

	c := NewPromptCollector(strings.NewReader(input), &out, schema.Session{}, 0)
	c.Now = fixedNow
	rs, session, err := c.Collect(context.Background(), catalog)
	require.NoError(t, err)

	assert.Equal(t, catalog.QuestionCount(), rs.Len())
	first, _ := rs.Get(schema.PreInfection, "backup_strategy")
	assert.Equal(t, 4, first.Value)
	last, _ := rs.Get(schema.PostInfection, "lessons_learned")
	assert.Equal(t, 0, last.Value)

	assert.Equal(t, "Acme", session.Organization)
	assert.Equal(t, "Jordan", session.Assessor)
	assert.Equal(t, fixedNow(), session.StartedAt)
	assert.Equal(t, fixedNow(), session.CompletedAt)

	assert.Contains(t, out.String(), "Please enter a number between 1 and 5")
	assert.Contains(t, out.String(), "Question 1/15")
	assert.NoError(t, CheckComplete(catalog, rs))
}

func TestPromptCollectorSkipsConfiguredSession(t *testing.T) {
	catalog := defaultCatalog(t)
	input := strings.Repeat("3\n", catalog.QuestionCount())
	var out bytes.Buffer

	c := NewPromptCollector(strings.NewReader(input), &out, schema.Session{Organization: "Acme", Assessor: "Jordan"}, 20)
	rs, session, err := c.Collect(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, catalog.QuestionCount(), rs.Len())
	assert.Equal(t, "Acme", session.Organization)
	assert.NotContains(t, out.String(), "Organization name")
}

func TestPromptCollectorAbort(t *testing.T) {
	catalog := defaultCatalog(t)

	t.Run("quit command", func(t *testing.T) {
		input := "\n\n1\n2\nq\n"
		rs, _, err := NewPromptCollector(strings.NewReader(input), &bytes.Buffer{}, schema.Session{}, 0).
			Collect(context.Background(), catalog)
		assert.ErrorIs(t, err, ErrAborted)
		assert.Equal(t, 2, rs.Len())

		var incomplete *IncompleteError
		assert.True(t, errors.As(CheckComplete(catalog, rs), &incomplete))
	})

	t.Run("input ends", func(t *testing.T) {
		input := "Acme\nJordan\n1"
		rs, _, err := NewPromptCollector(strings.NewReader(input), &bytes.Buffer{}, schema.Session{}, 0).
			Collect(context.Background(), catalog)
		assert.ErrorIs(t, err, ErrAborted)
		assert.Equal(t, 1, rs.Len())
	})

	t.Run("context canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rs, _, err := NewPromptCollector(strings.NewReader("a\nb\n"), &bytes.Buffer{}, schema.Session{}, 0).
			Collect(ctx, catalog)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, rs.Len())
	})
}

func TestMockCollector(t *testing.T) {
	catalog := defaultCatalog(t)
	ctx := context.Background()
	rs := schema.NewResponseSet()

	m := &contract.MockCollector{}
	m.On("Collect", ctx, catalog).Return(rs, schema.Session{Organization: "Acme"}, nil)

	var c contract.Collector = m
	got, session, err := c.Collect(ctx, catalog)
	require.NoError(t, err)
	assert.Same(t, rs, got)
	assert.Equal(t, "Acme", session.Organization)
	m.AssertExpectations(t)
}
