package collect

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/ransomready/schema"
	"gopkg.in/yaml.v3"
)

// TemplateFor renders an answers file with every question of the catalog and
// a null value. Each entry carries the question and its options as comments.
func TemplateFor(catalog *schema.Catalog) ([]byte, error) {
	answers := &yaml.Node{Kind: yaml.SequenceNode}
	for _, sd := range catalog.Stages {
		for i, q := range sd.Questions {
			entry := &yaml.Node{Kind: yaml.MappingNode, HeadComment: questionComment(q)}
			if i == 0 {
				entry.HeadComment = fmt.Sprintf("--- %s ---\n%s", stageTitle(sd), entry.HeadComment)
			}
			entry.Content = append(entry.Content,
				scalar("stage"), scalar(string(sd.Stage)),
				scalar("question"), scalar(q.ID),
				scalar("value"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"},
			)
			answers.Content = append(answers.Content, entry)
		}
	}

	session := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range []string{"organization", "assessor", "email", "organization_size"} {
		session.Content = append(session.Content, scalar(key), scalar(""))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "session", HeadComment: "Replace each null value with the number of the option that fits best (0-4)."},
		session,
		scalar("answers"), answers,
	)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("cannot encode template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTemplate writes TemplateFor(catalog) to w.
func WriteTemplate(w io.Writer, catalog *schema.Catalog) error {
	data, err := TemplateFor(catalog)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

func stageTitle(sd schema.StageDefinition) string {
	if sd.Title != "" {
		return sd.Title
	}
	return sd.Stage.Title()
}

func questionComment(q schema.QuestionDefinition) string {
	var sb strings.Builder
	sb.WriteString(q.Prompt)
	for _, o := range q.Options {
		fmt.Fprintf(&sb, "\n  %d = %s", o.Value, o.Text)
	}
	return sb.String()
}
