// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/ransomready/schema"
)

// Collector assembles a response set from some source, such as an answers
// file or a console walkthrough. This allows the scoring pipeline to be
// tested without a terminal.
type Collector interface {
	// Collect returns the recorded responses and the session they belong to.
	// A partial set may be returned together with an error.
	Collect(ctx context.Context, catalog *schema.Catalog) (*schema.ResponseSet, schema.Session, error)
}

// OutputWriter renders results in the configured output format.
type OutputWriter interface {
	WriteAssessment(a *schema.Assessment, cfg *Config) error
	WriteQuestions(catalog *schema.Catalog, cfg *Config) error
	WriteTechniques(catalog *schema.Catalog, cfg *Config) error
}
