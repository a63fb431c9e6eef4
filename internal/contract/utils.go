package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/ransomready/schema"
)

// Color variables for console output.
var (
	CriticalColor  = color.New(color.FgRed, color.Bold)     // CriticalColor represents standard danger.
	PoorColor      = color.New(color.FgMagenta, color.Bold) // PoorColor represents strong, distinct warning.
	ModerateColor  = color.New(color.FgYellow)              // ModerateColor represents standard caution, not bold.
	GoodColor      = color.New(color.FgCyan)                // GoodColor represents a healthy signal.
	ExcellentColor = color.New(color.FgGreen)               // ExcellentColor represents the best tier.
)

// levelEmojis prefixes readiness levels when emojis are enabled.
var levelEmojis = map[schema.ReadinessLevel]string{
	schema.CriticalLevel:  "🚨",
	schema.PoorLevel:      "⚠️",
	schema.ModerateLevel:  "📊",
	schema.GoodLevel:      "✅",
	schema.ExcellentLevel: "🏆",
}

// GetPlainLabel returns the readiness level as plain text. This is the
// label used for CSV, JSON, and uncolored table printing.
func GetPlainLabel(level schema.ReadinessLevel) string {
	return string(level)
}

// GetColorLabel returns a colored readiness label for console output (table).
func GetColorLabel(level schema.ReadinessLevel) string {
	text := GetPlainLabel(level)

	switch level {
	case schema.CriticalLevel:
		return CriticalColor.Sprint(text)
	case schema.PoorLevel:
		return PoorColor.Sprint(text)
	case schema.ModerateLevel:
		return ModerateColor.Sprint(text)
	case schema.GoodLevel:
		return GoodColor.Sprint(text)
	default: // "Excellent"
		return ExcellentColor.Sprint(text)
	}
}

// GetLevelEmoji returns the emoji of a readiness level.
func GetLevelEmoji(level schema.ReadinessLevel) string {
	return levelEmojis[level]
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. Empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// MaxInputLength caps free-text session fields.
const MaxInputLength = 500

// unsafeChars are stripped from free-text input before it is stored or exported.
const unsafeChars = "<>\"'&;|`"

// SanitizeInput strips characters that could break out of an export or a
// shell and caps the length.
func SanitizeInput(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, s)
	if runes := []rune(cleaned); len(runes) > MaxInputLength {
		cleaned = string(runes[:MaxInputLength])
	}
	return strings.TrimSpace(cleaned)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail trims and lowercases an email address and checks its shape.
func ValidateEmail(email string) (string, error) {
	cleaned := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(cleaned) {
		return "", fmt.Errorf("invalid email address %q", email)
	}
	return cleaned, nil
}

// orgSizes accepts the menu number or the name of a size.
var orgSizes = map[string]schema.OrgSize{
	"1": schema.SmallOrg, "small": schema.SmallOrg,
	"2": schema.MediumOrg, "medium": schema.MediumOrg,
	"3": schema.LargeOrg, "large": schema.LargeOrg,
	"4": schema.EnterpriseOrg, "enterprise": schema.EnterpriseOrg,
}

// NormalizeOrgSize maps "1".."4" or a size name to an OrgSize.
func NormalizeOrgSize(s string) (schema.OrgSize, error) {
	size, ok := orgSizes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid organization size %q. must be 1-4 or small, medium, large, enterprise", s)
	}
	return size, nil
}

// unsafePathParts are rejected anywhere in an output path.
var unsafePathParts = []string{"..", "~", "$", "|", ";", "&"}

// ValidateFilePath checks an export path for unsafe parts and requires the
// extension of the output mode.
func ValidateFilePath(path string, mode schema.OutputMode) (string, error) {
	cleaned := strings.TrimSpace(path)
	for _, part := range unsafePathParts {
		if strings.Contains(cleaned, part) {
			return "", fmt.Errorf("invalid characters in output path %q", path)
		}
	}
	want, ok := schema.OutputExtensions[mode]
	if !ok {
		return "", fmt.Errorf("unknown output format '%s'", mode)
	}
	if !strings.EqualFold(filepath.Ext(cleaned), want) {
		return "", fmt.Errorf("output path %q must end with %s for %s output", path, want, mode)
	}
	return cleaned, nil
}
