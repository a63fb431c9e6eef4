package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
)

// questionUsage counts the questions tagged with each technique.
func questionUsage(catalog *schema.Catalog) map[string]int {
	usage := make(map[string]int)
	for _, sd := range catalog.Stages {
		for _, q := range sd.Questions {
			usage[q.TechniqueTag]++
		}
	}
	return usage
}

// PrintQuestions displays the question bank. This is a static display that
// does not require any answers.
func PrintQuestions(catalog *schema.Catalog, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalog.Stages)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVQuestions(w, catalog, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for assessments")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuestionsText(w, catalog, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeQuestionsText prints one table per stage.
func writeQuestionsText(w io.Writer, catalog *schema.Catalog, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", heading("📝", fmt.Sprintf("Question Bank (%d questions)", catalog.QuestionCount()), cfg)); err != nil {
		return err
	}
	for _, sd := range catalog.Stages {
		headers := []string{"#", "ID", "Weight", "Technique", "Question"}
		var data [][]string
		for i, q := range sd.Questions {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				q.ID,
				fmtFloat(q.Weight),
				orDash(q.TechniqueTag),
				contract.TruncateText(q.Prompt, getMaxTableTextWidth(cfg)),
			})
		}
		if err := renderTable(w, stageTitle(sd), headers, data); err != nil {
			return err
		}
		if !cfg.Detail {
			continue
		}
		for _, q := range sd.Questions {
			if _, err := fmt.Fprintf(w, "%s: %s\n", q.ID, q.Prompt); err != nil {
				return err
			}
			for _, o := range q.Options {
				if _, err := fmt.Fprintf(w, "  %d = %s\n", o.Value, o.Text); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVQuestions writes one row per question with its options joined by "|".
func writeCSVQuestions(w io.Writer, catalog *schema.Catalog, fmtFloat func(float64) string) error {
	header := []string{"stage", "question_id", "weight", "mitre_technique", "question", "options"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, sd := range catalog.Stages {
			for _, q := range sd.Questions {
				options := make([]string, len(q.Options))
				for i, o := range q.Options {
					options[i] = fmt.Sprintf("%d=%s", o.Value, o.Text)
				}
				record := []string{string(sd.Stage), q.ID, fmtFloat(q.Weight), q.TechniqueTag, q.Prompt, strings.Join(options, "|")}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// PrintTechniques displays the ATT&CK taxonomy sorted by id.
func PrintTechniques(catalog *schema.Catalog, cfg *contract.Config) error {
	ids := catalog.TechniqueIDs()
	usage := questionUsage(catalog)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			techniques := make([]schema.Technique, 0, len(ids))
			for _, id := range ids {
				t, _ := catalog.Technique(id)
				techniques = append(techniques, t)
			}
			return writeJSON(w, techniques)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"id", "name", "tactic", "description", "questions"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, id := range ids {
					t, _ := catalog.Technique(id)
					if err := cw.Write([]string{t.ID, t.Name, t.Tactic, t.Description, strconv.Itoa(usage[id])}); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only available for assessments")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			headers := []string{"ID", "Name", "Tactic", "Questions"}
			if cfg.Detail {
				headers = append(headers, "Description")
			}
			var data [][]string
			for _, id := range ids {
				t, _ := catalog.Technique(id)
				row := []string{t.ID, t.Name, t.Tactic, strconv.Itoa(usage[id])}
				if cfg.Detail {
					row = append(row, contract.TruncateText(t.Description, getMaxTableTextWidth(cfg)))
				}
				data = append(data, row)
			}
			return renderTable(w, heading("🎯", "ATT&CK Techniques", cfg), headers, data)
		}, "Wrote text")
	}
}

func stageTitle(sd schema.StageDefinition) string {
	if sd.Title != "" {
		return sd.Title
	}
	return sd.Stage.Title()
}
