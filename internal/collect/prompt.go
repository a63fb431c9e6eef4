package collect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
)

// ErrAborted is returned when the user quits a walkthrough or input ends
// early. The responses recorded so far are returned with it.
var ErrAborted = errors.New("assessment aborted")

// quitCommand ends a walkthrough at any prompt.
const quitCommand = "q"

var (
	stageHeaderColor = color.New(color.FgCyan, color.Bold)
	questionColor    = color.New(color.Bold)
	hintColor        = color.New(color.Faint)
)

// PromptCollector walks the user through the catalog stage by stage.
// Options are numbered from 1 in catalog order.
type PromptCollector struct {
	In      io.Reader
	Out     io.Writer
	Session schema.Session // fields left empty are asked for
	Width   int            // prompt text is truncated to this width when > 0
	Now     func() time.Time
}

var _ contract.Collector = &PromptCollector{} // Compile-time check

// NewPromptCollector creates a walkthrough over the given streams.
func NewPromptCollector(in io.Reader, out io.Writer, session schema.Session, width int) *PromptCollector {
	return &PromptCollector{In: in, Out: out, Session: session, Width: width, Now: time.Now}
}

// Collect implements the contract.Collector interface.
func (c *PromptCollector) Collect(ctx context.Context, catalog *schema.Catalog) (*schema.ResponseSet, schema.Session, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	reader := bufio.NewReader(c.In)
	rs := schema.NewResponseSet()
	session := c.Session
	session.StartedAt = now()

	if err := c.askSession(reader, &session); err != nil {
		return rs, session, err
	}

	total := catalog.QuestionCount()
	asked := 0
	for _, sd := range catalog.Stages {
		_, _ = stageHeaderColor.Fprintf(c.Out, "\n== %s ==\n", stageTitle(sd))
		if sd.Description != "" {
			_, _ = fmt.Fprintln(c.Out, sd.Description)
		}
		for _, q := range sd.Questions {
			if err := ctx.Err(); err != nil {
				return rs, session, err
			}
			asked++
			opt, err := c.askQuestion(reader, q, asked, total)
			if err != nil {
				return rs, session, err
			}
			r, err := catalog.ResponseFor(sd.Stage, q.ID, opt.Value)
			if err != nil {
				return rs, session, err
			}
			if err := rs.Record(sd.Stage, q.ID, r); err != nil {
				return rs, session, err
			}
		}
	}

	session.CompletedAt = now()
	return rs, session, nil
}

// askSession fills in the session fields that were not configured.
func (c *PromptCollector) askSession(reader *bufio.Reader, session *schema.Session) error {
	if session.Organization == "" {
		line, err := c.readLine(reader, "Organization name (optional): ")
		if err != nil {
			return err
		}
		session.Organization = contract.SanitizeInput(line)
	}
	if session.Assessor == "" {
		line, err := c.readLine(reader, "Assessor name (optional): ")
		if err != nil {
			return err
		}
		session.Assessor = contract.SanitizeInput(line)
	}
	return nil
}

// askQuestion prompts until a valid option number is entered.
func (c *PromptCollector) askQuestion(reader *bufio.Reader, q schema.QuestionDefinition, n, total int) (schema.Option, error) {
	prompt := q.Prompt
	if c.Width > 0 {
		prompt = contract.TruncateText(prompt, c.Width)
	}
	_, _ = questionColor.Fprintf(c.Out, "\nQuestion %d/%d: %s\n", n, total, prompt)
	for i, o := range q.Options {
		_, _ = fmt.Fprintf(c.Out, "  %d. %s\n", i+1, o.Text)
	}

	for {
		line, err := c.readLine(reader, fmt.Sprintf("Select 1-%d (%s to quit): ", len(q.Options), quitCommand))
		if err != nil {
			return schema.Option{}, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(q.Options) {
			return q.Options[choice-1], nil
		}
		_, _ = hintColor.Fprintf(c.Out, "Please enter a number between 1 and %d\n", len(q.Options))
	}
}

// readLine prints a prompt and reads one trimmed line. The quit command and
// end of input both abort.
func (c *PromptCollector) readLine(reader *bufio.Reader, prompt string) (string, error) {
	_, _ = fmt.Fprint(c.Out, prompt)
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: input ended", ErrAborted)
		}
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	if strings.EqualFold(line, quitCommand) {
		return "", ErrAborted
	}
	return line, nil
}
