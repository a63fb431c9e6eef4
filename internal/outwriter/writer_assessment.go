package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/ransomready/core/algo"
	"github.com/huangsam/ransomready/schema"
)

// assessmentCSVHeader is shared by every section of the CSV export.
var assessmentCSVHeader = []string{"section", "stage", "id", "text", "earned", "possible", "percentage", "detail"}

// writeCSVAssessment writes the assessment as sectioned CSV rows.
func writeCSVAssessment(w io.Writer, a *schema.Assessment, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, assessmentCSVHeader, func(cw *csv.Writer) error {
		report := &a.Report
		records := [][]string{{
			"overall", "", a.ID, a.Session.Organization,
			fmtFloat(report.Overall.Earned), fmtFloat(report.Overall.Possible), fmtFloat(report.Overall.Percentage),
			string(report.Overall.Level),
		}}
		for _, s := range report.Stages {
			records = append(records, []string{
				"stage", string(s.Stage), string(s.Stage), s.Stage.Title(),
				fmtFloat(s.Earned), fmtFloat(s.Possible), fmtFloat(s.Percentage),
				string(algo.ReadinessLevel(s.Percentage)),
			})
		}
		for _, q := range report.Breakdown {
			records = append(records, []string{
				"question", string(q.Stage), q.QuestionID, q.ResponseText,
				fmtFloat(q.Earned), fmtFloat(q.Possible), fmtFloat(q.Percentage),
				q.TechniqueTag,
			})
		}
		records = append(records, areaRecords("risk", report.RiskAreas, fmtFloat)...)
		records = append(records, areaRecords("strength", report.StrengthAreas, fmtFloat)...)
		for _, c := range report.Coverage {
			name := ""
			if c.Info != nil {
				name = c.Info.Name
			}
			records = append(records, []string{
				"technique", "", c.Tag, name,
				fmtFloat(c.Earned), fmtFloat(c.Possible), fmtFloat(c.Percentage),
				strconv.Itoa(len(c.Questions)),
			})
		}
		for i, insight := range report.Insights {
			records = append(records, []string{"insight", "", strconv.Itoa(i + 1), insight, "", "", "", ""})
		}
		for _, b := range a.Advice.Recommendations.Buckets() {
			for _, item := range b.Items {
				records = append(records, []string{"recommendation", "", b.Name, item, "", "", "", ""})
			}
		}
		s := a.Advice.Summary
		records = append(records, []string{
			"summary", "", s.InvestmentPriority, s.InvestmentNote, "", "", fmtFloat(s.Score),
			fmt.Sprintf("critical=%d immediate=%d", s.CriticalAreas, s.ImmediateActions),
		})

		for _, record := range records {
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// areaRecords converts risk or strength areas into CSV rows.
func areaRecords(section string, areas []schema.AreaEntry, fmtFloat func(float64) string) [][]string {
	records := make([][]string, 0, len(areas))
	for _, a := range areas {
		records = append(records, []string{
			section, string(a.Stage), a.QuestionID, a.Response,
			"", "", fmtFloat(a.Percentage), a.TechniqueTag,
		})
	}
	return records
}
