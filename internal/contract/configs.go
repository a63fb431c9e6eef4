package contract

import (
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/huangsam/ransomready/schema"
)

// Default values for configuration.
const (
	DefaultAreaLimit = 5
	MaxAreaLimit     = 5
	DefaultPrecision = 1
)

// Config holds the runtime configuration for an assessment run.
// This struct remains the "final, validated" config.
type Config struct {
	AnswersFile     string // positional argument of the score command
	QuestionsFile   string // question bank override, empty means built-in
	Output          schema.OutputMode
	OutputFile      string
	Precision       int
	AreaLimit       int // risk/strength rows shown in text output
	Width           int // Terminal width override (0 = auto-detect)
	Detail          bool
	Explain         bool
	RequireComplete bool
	Debug           bool

	// Weights maps question id to a replacement weight.
	Weights map[string]float64

	// Session is applied over whatever the answers file carries.
	Session schema.Session

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	AnswersPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Limit      int    `mapstructure:"limit"`
	Width      int    `mapstructure:"width"`
	Detail     bool   `mapstructure:"detail"`
	Questions  string `mapstructure:"questions"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
	Debug      bool   `mapstructure:"debug"`

	// --- Fields from scoreCmd/assessCmd flags ---
	Explain         bool   `mapstructure:"explain"`
	RequireComplete bool   `mapstructure:"require-complete"`
	Organization    string `mapstructure:"organization"`
	Assessor        string `mapstructure:"assessor"`
	Email           string `mapstructure:"email"`
	OrgSize         string `mapstructure:"org-size"`

	// --- Custom weights from config file ---
	Weights map[string]float64 `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Weights != nil {
		clone.Weights = make(map[string]float64, len(c.Weights))
		maps.Copy(clone.Weights, c.Weights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processOutputTarget(cfg, input); err != nil {
		return err
	}
	if err := processSession(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.AnswersFile = strings.TrimSpace(input.AnswersPathStr)
	cfg.QuestionsFile = strings.TrimSpace(input.Questions)
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.RequireComplete = input.RequireComplete
	cfg.Debug = input.Debug

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. AreaLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxAreaLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxAreaLimit, input.Limit)
	}
	cfg.AreaLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	return nil
}

// processOutputTarget validates the output file against the output mode.
func processOutputTarget(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.OutputFile)
	if path == "" {
		if cfg.Output == schema.ParquetOut {
			return fmt.Errorf("parquet output requires --output-file")
		}
		cfg.OutputFile = ""
		return nil
	}
	cleaned, err := ValidateFilePath(path, cfg.Output)
	if err != nil {
		return err
	}
	cfg.OutputFile = cleaned
	return nil
}

// processSession sanitizes the session fields.
func processSession(cfg *Config, input *ConfigRawInput) error {
	cfg.Session.Organization = SanitizeInput(input.Organization)
	cfg.Session.Assessor = SanitizeInput(input.Assessor)

	if strings.TrimSpace(input.Email) != "" {
		email, err := ValidateEmail(input.Email)
		if err != nil {
			return err
		}
		cfg.Session.Email = email
	}

	if strings.TrimSpace(input.OrgSize) != "" {
		size, err := NormalizeOrgSize(input.OrgSize)
		if err != nil {
			return err
		}
		cfg.Session.OrgSize = size
	}
	return nil
}

// processCustomWeights copies the weight overrides after checking they are
// usable. Question ids are checked later against the loaded question bank.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	if len(input.Weights) == 0 {
		cfg.Weights = nil
		return nil
	}
	cfg.Weights = make(map[string]float64, len(input.Weights))
	for id, w := range input.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("weight for %q must be a positive number (received %v)", id, w)
		}
		cfg.Weights[id] = w
	}
	return nil
}
