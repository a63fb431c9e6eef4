package schema

import (
	"time"

	"github.com/google/uuid"
)

// Session describes who is assessed and by whom.
type Session struct {
	Organization string    `json:"organization" yaml:"organization"`
	Assessor     string    `json:"assessor" yaml:"assessor"`
	Email        string    `json:"email,omitempty" yaml:"email,omitempty"`
	OrgSize      OrgSize   `json:"organization_size,omitempty" yaml:"organization_size,omitempty"`
	StartedAt    time.Time `json:"started_at" yaml:"-"`
	CompletedAt  time.Time `json:"completed_at" yaml:"-"`
}

// ExportMetadata identifies the tool that produced an export.
type ExportMetadata struct {
	ToolVersion   string    `json:"tool_version"`
	FormatVersion string    `json:"format_version"`
	ExportedAt    time.Time `json:"exported_at"`
}

// Assessment is the export envelope of one finished run.
type Assessment struct {
	ID       string         `json:"assessment_id"`
	Session  Session        `json:"session"`
	Metadata ExportMetadata `json:"export_metadata"`
	Report   ScoreReport    `json:"score_report"`
	Advice   Advice         `json:"advice"`
}

// NewAssessment wraps a report and its advice with a fresh id.
func NewAssessment(session Session, report ScoreReport, advice Advice, now time.Time) Assessment {
	if session.CompletedAt.IsZero() {
		session.CompletedAt = now
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = session.CompletedAt
	}
	return Assessment{
		ID:      uuid.New().String(),
		Session: session,
		Metadata: ExportMetadata{
			ToolVersion:   ToolVersion,
			FormatVersion: FormatVersion,
			ExportedAt:    now,
		},
		Report: report,
		Advice: advice,
	}
}

// Duration returns how long the session took.
func (s Session) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.CompletedAt.Before(s.StartedAt) {
		return 0
	}
	return s.CompletedAt.Sub(s.StartedAt)
}
