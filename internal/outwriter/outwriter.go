// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAssessment prints a finished assessment using the configured output format.
func (ow *OutWriter) WriteAssessment(a *schema.Assessment, cfg *contract.Config) error {
	return PrintAssessment(a, cfg)
}

// WriteQuestions prints the question bank using the configured output format.
func (ow *OutWriter) WriteQuestions(catalog *schema.Catalog, cfg *contract.Config) error {
	return PrintQuestions(catalog, cfg)
}

// WriteTechniques prints the technique taxonomy using the configured output format.
func (ow *OutWriter) WriteTechniques(catalog *schema.Catalog, cfg *contract.Config) error {
	return PrintTechniques(catalog, cfg)
}
