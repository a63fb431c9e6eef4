package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/ransomready/core/algo"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/internal/parquet"
	"github.com/huangsam/ransomready/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAssessment outputs an assessment, dispatching based on the output format configured.
func PrintAssessment(a *schema.Assessment, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, a)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVAssessment(w, a, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		runFile, err := parquet.ExportAssessment(a, cfg.OutputFile)
		if err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", cfg.OutputFile, runFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessmentText(w, a, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeAssessmentText writes the human-readable report.
func writeAssessmentText(w io.Writer, a *schema.Assessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	report := &a.Report
	if err := writeAssessmentHeader(w, a, cfg, fmtFloat); err != nil {
		return err
	}
	if err := writeStageTable(w, report.Stages, cfg, fmtFloat); err != nil {
		return err
	}
	if err := writeAreaTable(w, heading("🚨", "Risk Areas", cfg), report.RiskAreas, report.RiskAreaCount, cfg, fmtFloat); err != nil {
		return err
	}
	if err := writeAreaTable(w, heading("💪", "Strength Areas", cfg), report.StrengthAreas, report.StrengthAreaCount, cfg, fmtFloat); err != nil {
		return err
	}
	if err := writeCoverageTable(w, report.Coverage, cfg, fmtFloat); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, renderPanel(heading("💡", "Key Insights", cfg), report.Insights, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, renderPanel(heading("📋", "Executive Summary", cfg), summaryLines(a.Advice.Summary, cfg, fmtFloat), cfg)); err != nil {
		return err
	}
	if cfg.Explain {
		if err := writeRecommendations(w, a.Advice.Recommendations, cfg); err != nil {
			return err
		}
	}
	if cfg.Detail {
		if err := writeActionPlan(w, a.Advice, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeAssessmentHeader prints the title, session and overall result.
func writeAssessmentHeader(w io.Writer, a *schema.Assessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	title := heading("🛡️", "Ransomware Readiness Assessment", cfg)
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title)))); err != nil {
		return err
	}
	if a.Session.Organization != "" {
		if _, err := fmt.Fprintf(w, "Organization: %s\n", a.Session.Organization); err != nil {
			return err
		}
	}
	if a.Session.Assessor != "" {
		if _, err := fmt.Fprintf(w, "Assessor:     %s\n", a.Session.Assessor); err != nil {
			return err
		}
	}
	if !a.Session.CompletedAt.IsZero() {
		if _, err := fmt.Fprintf(w, "Completed:    %s\n", a.Session.CompletedAt.Format("2006-01-02 15:04")); err != nil {
			return err
		}
	}
	if cfg.Detail {
		if _, err := fmt.Fprintf(w, "Assessment:   %s\n", a.ID); err != nil {
			return err
		}
	}
	overall := a.Report.Overall
	_, err := fmt.Fprintf(w, "\nOverall readiness: %s%% (%s) [%s of %s points]\n\n",
		fmtFloat(overall.Percentage), levelLabel(overall.Level, cfg), fmtFloat(overall.Earned), fmtFloat(overall.Possible))
	return err
}

// writeStageTable prints one row per stage in canonical order.
func writeStageTable(w io.Writer, stages []schema.StageScore, cfg *contract.Config, fmtFloat func(float64) string) error {
	headers := []string{"Stage", "Score", "Label", "Answered"}
	if cfg.Detail {
		headers = append(headers, "Earned", "Possible")
	}

	var data [][]string
	for _, s := range stages {
		row := []string{
			s.Stage.Title(),
			fmtFloat(s.Percentage) + "%",
			levelLabel(algo.ReadinessLevel(s.Percentage), cfg),
			strconv.Itoa(s.Answered),
		}
		if cfg.Detail {
			row = append(row, fmtFloat(s.Earned), fmtFloat(s.Possible))
		}
		data = append(data, row)
	}
	return renderTable(w, heading("📊", "Stage Scores", cfg), headers, data)
}

// writeAreaTable prints up to cfg.AreaLimit risk or strength areas.
func writeAreaTable(w io.Writer, title string, areas []schema.AreaEntry, total int, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(areas) == 0 {
		_, err := fmt.Fprintf(w, "%s: none\n\n", title)
		return err
	}
	shown := areas[:min(cfg.AreaLimit, len(areas))]

	headers := []string{"Rank", "Stage", "Question", "Score", "Technique"}
	if cfg.Explain {
		headers = append(headers, "Response")
	}

	var data [][]string
	for i, a := range shown {
		row := []string{
			strconv.Itoa(i + 1),
			a.Stage.Title(),
			a.QuestionID,
			fmtFloat(a.Percentage) + "%",
			orDash(a.TechniqueTag),
		}
		if cfg.Explain {
			row = append(row, contract.TruncateText(a.Response, getMaxTableTextWidth(cfg)))
		}
		data = append(data, row)
	}
	if err := renderTable(w, title, headers, data); err != nil {
		return err
	}
	if total > len(shown) {
		if _, err := fmt.Fprintf(w, "Showing %d of %d areas\n\n", len(shown), total); err != nil {
			return err
		}
	}
	return nil
}

// writeCoverageTable prints the per-technique rollup.
func writeCoverageTable(w io.Writer, coverage []schema.TechniqueCoverage, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(coverage) == 0 {
		return nil
	}
	headers := []string{"Technique", "Name", "Tactic", "Score", "Questions"}

	var data [][]string
	for _, c := range coverage {
		name, tactic := "-", "-"
		if c.Info != nil {
			name = contract.TruncateText(c.Info.Name, getMaxTableTextWidth(cfg))
			tactic = c.Info.Tactic
		}
		data = append(data, []string{
			orDash(c.Tag),
			name,
			tactic,
			fmtFloat(c.Percentage) + "%",
			strconv.Itoa(len(c.Questions)),
		})
	}
	return renderTable(w, heading("🎯", "ATT&CK Technique Coverage", cfg), headers, data)
}

// writeRecommendations prints every non-empty recommendation bucket.
func writeRecommendations(w io.Writer, recs schema.Recommendations, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading("🛠️", "Recommendations", cfg)); err != nil {
		return err
	}
	for _, b := range recs.Buckets() {
		if len(b.Items) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", bucketTitle(b.Name)); err != nil {
			return err
		}
		for _, item := range b.Items {
			if _, err := fmt.Fprintf(w, "  - %s\n", item); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeActionPlan prints the 30/60/90 day plan and the NIST CSF alignment.
func writeActionPlan(w io.Writer, advice schema.Advice, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", heading("📅", "Action Plan", cfg)); err != nil {
		return err
	}
	for _, phase := range advice.ActionPlan {
		if _, err := fmt.Fprintf(w, "\n%d days: %s\n", phase.Days, phase.Title); err != nil {
			return err
		}
		if len(phase.Actions) == 0 {
			if _, err := fmt.Fprintln(w, "  (no actions)"); err != nil {
				return err
			}
		}
		for _, action := range phase.Actions {
			if _, err := fmt.Fprintf(w, "  - %s\n", action); err != nil {
				return err
			}
		}
	}

	headers := []string{"Function", "Recommendations"}
	var data [][]string
	for _, fn := range schema.AllCSFFunctions {
		data = append(data, []string{string(fn), strconv.Itoa(len(advice.CSFAlignment[fn]))})
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return renderTable(w, heading("🧭", "NIST CSF Alignment", cfg), headers, data)
}

// summaryLines formats the executive summary for a panel.
func summaryLines(s schema.ExecutiveSummary, cfg *contract.Config, fmtFloat func(float64) string) []string {
	return []string{
		fmt.Sprintf("Risk level:          %s", levelLabel(s.RiskLevel, cfg)),
		fmt.Sprintf("Overall score:       %s%%", fmtFloat(s.Score)),
		fmt.Sprintf("Critical areas:      %d", s.CriticalAreas),
		fmt.Sprintf("Immediate actions:   %d", s.ImmediateActions),
		fmt.Sprintf("Investment priority: %s (%s)", s.InvestmentPriority, s.InvestmentNote),
		fmt.Sprintf("Timeline:            %s", s.Timeline),
	}
}

// renderTable writes a titled table with right-aligned rows.
func renderTable(w io.Writer, title string, headers []string, data [][]string) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// renderPanel boxes a titled list of lines.
func renderPanel(title string, lines []string, cfg *contract.Config) string {
	head := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(getPanelWidth(cfg))
	if cfg.UseColors {
		head = head.Foreground(lipgloss.Color("#5B8DEF"))
		box = box.BorderForeground(lipgloss.Color("#444444"))
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = "(none)"
	}
	return box.Render(fmt.Sprintf("%s\n%s", head.Render(title), body))
}

// bucketTitle formats "short_term" as "Short Term".
func bucketTitle(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
