// Package parquet provides data structures and functions for exporting
// readiness assessments to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/ransomready/schema"
	"github.com/parquet-go/parquet-go"
)

// AssessmentRun is the one-row summary of an assessment.
type AssessmentRun struct {
	// AssessmentID is the unique identifier of the assessment
	AssessmentID string `parquet:"assessment_id,snappy"`

	// Organization is the assessed organization (nullable)
	Organization *string `parquet:"organization,optional,snappy"`

	// Assessor is who answered the questions (nullable)
	Assessor *string `parquet:"assessor,optional,snappy"`

	// OrgSize is the normalized organization size (nullable)
	OrgSize *string `parquet:"organization_size,optional,snappy"`

	// StartedAt is when the session began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// CompletedAt is when the session ended
	CompletedAt time.Time `parquet:"completed_at,snappy"`

	// DurationMs is the session length in milliseconds (nullable)
	DurationMs *int64 `parquet:"duration_ms,optional,snappy"`

	// OverallPercentage is the weighted readiness percentage
	OverallPercentage float64 `parquet:"overall_percentage,snappy"`

	// ReadinessLevel is the qualitative tier of the overall percentage
	ReadinessLevel string `parquet:"readiness_level,snappy"`

	// QuestionsAnswered counts the answered questions across stages
	QuestionsAnswered int32 `parquet:"questions_answered,snappy"`

	// RiskAreaCount is the number of questions scoring below the risk cutoff
	RiskAreaCount int32 `parquet:"risk_area_count,snappy"`

	// StrengthAreaCount is the number of questions at or above the strength cutoff
	StrengthAreaCount int32 `parquet:"strength_area_count,snappy"`

	// ToolVersion identifies the exporting tool
	ToolVersion string `parquet:"tool_version,snappy"`
}

// QuestionScore is the score of one answered question in an assessment.
type QuestionScore struct {
	// AssessmentID references the parent assessment
	AssessmentID string `parquet:"assessment_id,snappy"`

	// Stage is the lifecycle stage of the question
	Stage string `parquet:"stage,snappy"`

	// QuestionID is the stable id of the question within its stage
	QuestionID string `parquet:"question_id,snappy"`

	// Value is the selected option value (0-4)
	Value int32 `parquet:"value,snappy"`

	// Weight is the relative importance of the question
	Weight float64 `parquet:"weight,snappy"`

	// Earned is value * weight
	Earned float64 `parquet:"earned,snappy"`

	// Possible is 4 * weight
	Possible float64 `parquet:"possible,snappy"`

	// Percentage is the weight-invariant question score
	Percentage float64 `parquet:"percentage,snappy"`

	// Response is the text of the selected option
	Response string `parquet:"response,snappy"`

	// TechniqueTag is the ATT&CK technique the question guards against (nullable)
	TechniqueTag *string `parquet:"mitre_technique,optional,snappy"`

	// StagePercentage is the weighted percentage of the question's stage
	StagePercentage float64 `parquet:"stage_percentage,snappy"`
}

// writeParquet writes rows to a new Parquet file with a schema inferred
// from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteAssessmentRunsParquet writes a slice of AssessmentRun structs to a Parquet file.
func WriteAssessmentRunsParquet(data []AssessmentRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteQuestionScoresParquet writes a slice of QuestionScore structs to a Parquet file.
func WriteQuestionScoresParquet(data []QuestionScore, outputPath string) error {
	return writeParquet(data, outputPath)
}

// RunFilePath returns the sibling file that holds the run summary of an
// export written to outputPath.
func RunFilePath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".run.parquet"
}

// ExportAssessment writes the question scores to outputPath and the run
// summary next to it. It returns the path of the run file.
func ExportAssessment(a *schema.Assessment, outputPath string) (string, error) {
	if outputPath == "" {
		return "", fmt.Errorf("parquet output requires --output-file")
	}
	if err := WriteQuestionScoresParquet(ConvertQuestionScores(a), outputPath); err != nil {
		return "", fmt.Errorf("failed to write question scores: %w", err)
	}
	runFile := RunFilePath(outputPath)
	if err := WriteAssessmentRunsParquet([]AssessmentRun{ConvertAssessmentRun(a)}, runFile); err != nil {
		return "", fmt.Errorf("failed to write assessment run: %w", err)
	}
	return runFile, nil
}

// ConvertAssessmentRun converts a schema.Assessment to its AssessmentRun row.
func ConvertAssessmentRun(a *schema.Assessment) AssessmentRun {
	answered := 0
	for _, s := range a.Report.Stages {
		answered += s.Answered
	}
	run := AssessmentRun{
		AssessmentID:      a.ID,
		Organization:      optionalString(a.Session.Organization),
		Assessor:          optionalString(a.Session.Assessor),
		OrgSize:           optionalString(string(a.Session.OrgSize)),
		StartedAt:         a.Session.StartedAt,
		CompletedAt:       a.Session.CompletedAt,
		OverallPercentage: a.Report.Overall.Percentage,
		ReadinessLevel:    string(a.Report.Overall.Level),
		QuestionsAnswered: int32(answered),
		RiskAreaCount:     int32(a.Report.RiskAreaCount),
		StrengthAreaCount: int32(a.Report.StrengthAreaCount),
		ToolVersion:       a.Metadata.ToolVersion,
	}
	if d := a.Session.Duration(); d > 0 {
		ms := d.Milliseconds()
		run.DurationMs = &ms
	}
	return run
}

// ConvertQuestionScores converts the breakdown of an assessment to QuestionScore rows.
func ConvertQuestionScores(a *schema.Assessment) []QuestionScore {
	result := make([]QuestionScore, len(a.Report.Breakdown))
	for i, q := range a.Report.Breakdown {
		stage, _ := a.Report.Stage(q.Stage)
		result[i] = QuestionScore{
			AssessmentID:    a.ID,
			Stage:           string(q.Stage),
			QuestionID:      q.QuestionID,
			Value:           int32(q.Value),
			Weight:          q.Weight,
			Earned:          q.Earned,
			Possible:        q.Possible,
			Percentage:      q.Percentage,
			Response:        q.ResponseText,
			TechniqueTag:    optionalString(q.TechniqueTag),
			StagePercentage: stage.Percentage,
		}
	}
	return result
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
