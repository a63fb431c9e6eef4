package contract

import (
	"testing"

	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    "text",
		Precision: 1,
		Limit:     5,
		Emoji:     "no",
		Color:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{"valid minimal config", func(*ConfigRawInput) {}, false},
		{"json to file", func(in *ConfigRawInput) { in.Output = "JSON"; in.OutputFile = "out.json" }, false},
		{"parquet to file", func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out.parquet" }, false},
		{"parquet without file", func(in *ConfigRawInput) { in.Output = "parquet" }, true},
		{"extension mismatch", func(in *ConfigRawInput) { in.Output = "csv"; in.OutputFile = "out.json" }, true},
		{"unsafe output path", func(in *ConfigRawInput) { in.OutputFile = "../out.txt" }, true},
		{"invalid output", func(in *ConfigRawInput) { in.Output = "pdf" }, true},
		{"precision too low", func(in *ConfigRawInput) { in.Precision = 0 }, true},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 3 }, true},
		{"limit zero", func(in *ConfigRawInput) { in.Limit = 0 }, true},
		{"limit too high", func(in *ConfigRawInput) { in.Limit = 6 }, true},
		{"negative width", func(in *ConfigRawInput) { in.Width = -1 }, true},
		{"invalid emoji", func(in *ConfigRawInput) { in.Emoji = "maybe" }, true},
		{"invalid color", func(in *ConfigRawInput) { in.Color = "" }, true},
		{"invalid email", func(in *ConfigRawInput) { in.Email = "nope" }, true},
		{"invalid org size", func(in *ConfigRawInput) { in.OrgSize = "9" }, true},
		{"zero weight", func(in *ConfigRawInput) { in.Weights = map[string]float64{"backup_strategy": 0} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidatePopulatesConfig(t *testing.T) {
	input := validInput()
	input.AnswersPathStr = " answers.yaml "
	input.Output = "CSV"
	input.OutputFile = "report.csv"
	input.Precision = 2
	input.Limit = 3
	input.Emoji = "yes"
	input.Explain = true
	input.RequireComplete = true
	input.Organization = "<Acme>"
	input.Assessor = "Jordan"
	input.Email = "Jordan@Acme.io"
	input.OrgSize = "3"
	input.Weights = map[string]float64{"backup_strategy": 12}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "answers.yaml", cfg.AnswersFile)
	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.Equal(t, "report.csv", cfg.OutputFile)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 3, cfg.AreaLimit)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.Explain)
	assert.True(t, cfg.RequireComplete)
	assert.Equal(t, "Acme", cfg.Session.Organization)
	assert.Equal(t, "Jordan", cfg.Session.Assessor)
	assert.Equal(t, "jordan@acme.io", cfg.Session.Email)
	assert.Equal(t, schema.LargeOrg, cfg.Session.OrgSize)
	assert.Equal(t, map[string]float64{"backup_strategy": 12}, cfg.Weights)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Output: schema.JSONOut, Weights: map[string]float64{"a": 1}}
	clone := cfg.Clone()
	clone.Weights["a"] = 2
	clone.Output = schema.TextOut

	assert.Equal(t, 1.0, cfg.Weights["a"])
	assert.Equal(t, schema.JSONOut, cfg.Output)

	empty := (&Config{}).Clone()
	assert.Nil(t, empty.Weights)
}
