// Package core has core logic for scoring, ranking and advising on
// ransomware readiness assessments.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/ransomready/core/advice"
	"github.com/huangsam/ransomready/internal/collect"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/internal/outwriter"
	"github.com/huangsam/ransomready/schema"
	"golang.org/x/term"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// LoadCatalog returns the question bank selected by cfg with any weight
// overrides applied.
func LoadCatalog(cfg *contract.Config) (*schema.Catalog, error) {
	var (
		catalog *schema.Catalog
		err     error
	)
	if cfg.QuestionsFile != "" {
		catalog, err = schema.LoadCatalog(cfg.QuestionsFile)
	} else {
		catalog, err = schema.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}
	return catalog.WithWeights(cfg.Weights)
}

// ExecuteScore scores a recorded answers file and prints the assessment.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config) error {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	collector := collect.NewFileCollector(cfg.AnswersFile)
	return runAssessment(ctx, cfg, catalog, collector, outwriter.NewOutWriter())
}

// ExecuteAssess walks the user through the question bank on the console and
// prints the assessment. The intro is skipped when answers are piped in.
// It serves as the main entry point for the 'assess' command.
func ExecuteAssess(ctx context.Context, cfg *contract.Config) error {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ctx = withSuppressHeader(ctx)
	}
	console := consoleWriter(cfg, os.Stdout, os.Stderr)
	return runWalkthrough(ctx, cfg, catalog, os.Stdin, console, outwriter.NewOutWriter())
}

// runWalkthrough prompts on console, then scores and writes the assessment.
func runWalkthrough(ctx context.Context, cfg *contract.Config, catalog *schema.Catalog, in io.Reader, console io.Writer, ow contract.OutputWriter) error {
	if !shouldSuppressHeader(ctx) {
		printAssessIntro(console, catalog, cfg)
	}
	collector := collect.NewPromptCollector(in, console, cfg.Session, cfg.Width)
	return runAssessment(ctx, cfg, catalog, collector, ow)
}

// consoleWriter picks the stream for walkthrough prompts. A JSON or CSV
// report written to stdout owns stdout, so prompts move to stderr.
func consoleWriter(cfg *contract.Config, stdout, stderr io.Writer) io.Writer {
	if cfg.OutputFile == "" && cfg.Output != "" && cfg.Output != schema.TextOut {
		return stderr
	}
	return stdout
}

// ExecuteQuestions lists the question bank.
// This is a static display that does not require any answers.
func ExecuteQuestions(_ context.Context, cfg *contract.Config) error {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteQuestions(catalog, cfg)
}

// ExecuteTechniques lists the ATT&CK technique taxonomy.
func ExecuteTechniques(_ context.Context, cfg *contract.Config) error {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTechniques(catalog, cfg)
}

// ExecuteTemplate writes a blank answers file to cfg.AnswersFile, or to
// stdout when no path is given.
func ExecuteTemplate(_ context.Context, cfg *contract.Config) error {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	file, err := contract.SelectOutputFile(cfg.AnswersFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	if err := collect.WriteTemplate(file, catalog); err != nil {
		return err
	}
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 Wrote template to %s\n", cfg.AnswersFile)
	}
	return nil
}

// runAssessment collects, scores and advises, then hands the assessment to ow.
func runAssessment(ctx context.Context, cfg *contract.Config, catalog *schema.Catalog, collector contract.Collector, ow contract.OutputWriter) error {
	now := clockFrom(ctx)
	start := now()

	rs, session, err := collector.Collect(ctx, catalog)
	if err != nil {
		if !errors.Is(err, collect.ErrAborted) || rs == nil || rs.Len() == 0 {
			return err
		}
		contract.LogWarn("Assessment aborted, scoring the answered questions", err)
	}
	session = mergeSession(session, cfg.Session)

	if err := collect.CheckComplete(catalog, rs); err != nil {
		if cfg.RequireComplete {
			return err
		}
		contract.LogWarn("Scoring an incomplete assessment", err)
	}

	engine := NewEngine(catalog.Technique)
	report, err := engine.Compute(rs)
	if err != nil {
		return err
	}
	assessment := schema.NewAssessment(session, report, advice.Generate(report), now())

	contract.LogDebug("Assessment scored", map[string]any{
		"assessment_id": assessment.ID,
		"answered":      rs.Len(),
		"overall":       report.Overall.Percentage,
		"level":         report.Overall.Level,
		"elapsed":       now().Sub(start).String(),
	})
	return ow.WriteAssessment(&assessment, cfg)
}

// mergeSession applies the configured session fields over the collected ones.
func mergeSession(collected, configured schema.Session) schema.Session {
	if configured.Organization != "" {
		collected.Organization = configured.Organization
	}
	if configured.Assessor != "" {
		collected.Assessor = configured.Assessor
	}
	if configured.Email != "" {
		collected.Email = configured.Email
	}
	if configured.OrgSize != "" {
		collected.OrgSize = configured.OrgSize
	}
	return collected
}

// printAssessIntro explains the walkthrough before the first question.
func printAssessIntro(w io.Writer, catalog *schema.Catalog, cfg *contract.Config) {
	title := "Ransomware Readiness Assessment"
	if cfg.UseEmojis {
		title = "🛡️ " + title
	}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	_, _ = fmt.Fprintf(w, "%d questions across %d stages. Enter q to stop; answered questions are still scored.\n",
		catalog.QuestionCount(), len(catalog.Stages))
}
