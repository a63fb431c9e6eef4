package contract

import (
	"context"

	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/mock"
)

// MockCollector is a mock implementation of Collector for testing.
type MockCollector struct {
	mock.Mock
}

var _ Collector = &MockCollector{} // Compile-time check

// Collect implements the Collector interface.
func (m *MockCollector) Collect(ctx context.Context, catalog *schema.Catalog) (*schema.ResponseSet, schema.Session, error) {
	args := m.Called(ctx, catalog)
	rs, _ := args.Get(0).(*schema.ResponseSet)
	session, _ := args.Get(1).(schema.Session)
	return rs, session, args.Error(2)
}

// MockOutputWriter is a mock implementation of OutputWriter for testing.
type MockOutputWriter struct {
	mock.Mock
}

var _ OutputWriter = &MockOutputWriter{} // Compile-time check

// WriteAssessment implements the OutputWriter interface.
func (m *MockOutputWriter) WriteAssessment(a *schema.Assessment, cfg *Config) error {
	args := m.Called(a, cfg)
	return args.Error(0)
}

// WriteQuestions implements the OutputWriter interface.
func (m *MockOutputWriter) WriteQuestions(catalog *schema.Catalog, cfg *Config) error {
	args := m.Called(catalog, cfg)
	return args.Error(0)
}

// WriteTechniques implements the OutputWriter interface.
func (m *MockOutputWriter) WriteTechniques(catalog *schema.Catalog, cfg *Config) error {
	args := m.Called(catalog, cfg)
	return args.Error(0)
}
