package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/ransomready/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	for _, th := range schema.LevelThresholds {
		assert.Equal(t, string(th.Level), GetPlainLabel(th.Level))
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		level schema.ReadinessLevel
	}{
		{"critical", schema.CriticalLevel},
		{"poor", schema.PoorLevel},
		{"moderate", schema.ModerateLevel},
		{"good", schema.GoodLevel},
		{"excellent", schema.ExcellentLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.level)
			// Should contain the plain label
			assert.Contains(t, result, string(tt.level))
			assert.NotEmpty(t, GetLevelEmoji(tt.level))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"short text", "backup", 10, "backup"},
		{"exact width", "backup", 6, "backup"},
		{"truncated", "How frequently does your organization back up?", 12, "How frequ..."},
		{"tiny width untouched", "backup", 3, "backup"},
		{"unicode", "häufige Sicherungen", 8, "häufi..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Acme Corp", "Acme Corp"},
		{"html", "<b>Acme</b>", "bAcme/b"},
		{"quotes and shell", `O'Neil "Ops" & Co; | rm`, "ONeil Ops  Co  rm"},
		{"backtick", "`id`", "id"},
		{"trims", "  spaced  ", "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeInput(tt.input))
		})
	}

	assert.Len(t, SanitizeInput(strings.Repeat("a", 800)), MaxInputLength)
}

func TestValidateEmail(t *testing.T) {
	got, err := ValidateEmail("  Security@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "security@example.com", got)

	for _, bad := range []string{"", "no-at-sign", "a@b", "a@b.c", "two@@example.com"} {
		_, err := ValidateEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestNormalizeOrgSize(t *testing.T) {
	tests := []struct {
		input    string
		expected schema.OrgSize
	}{
		{"1", schema.SmallOrg},
		{"2", schema.MediumOrg},
		{" 3 ", schema.LargeOrg},
		{"4", schema.EnterpriseOrg},
		{"Enterprise", schema.EnterpriseOrg},
		{"small", schema.SmallOrg},
	}
	for _, tt := range tests {
		got, err := NormalizeOrgSize(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := NormalizeOrgSize("5")
	assert.Error(t, err)
	_, err = NormalizeOrgSize("huge")
	assert.Error(t, err)
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		mode    schema.OutputMode
		wantErr bool
	}{
		{"json", "report.json", schema.JSONOut, false},
		{"csv in dir", "out/report.csv", schema.CSVOut, false},
		{"upper extension", "REPORT.TXT", schema.TextOut, false},
		{"parquet", "report.parquet", schema.ParquetOut, false},
		{"wrong extension", "report.txt", schema.JSONOut, true},
		{"parent dir", "../report.json", schema.JSONOut, true},
		{"home dir", "~/report.json", schema.JSONOut, true},
		{"variable", "$HOME/report.json", schema.JSONOut, true},
		{"pipe", "report|x.json", schema.JSONOut, true},
		{"semicolon", "a;b.json", schema.JSONOut, true},
		{"ampersand", "a&b.json", schema.JSONOut, true},
		{"unknown mode", "report.pdf", schema.OutputMode("pdf"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFilePath(tt.path, tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, got)
		})
	}
}
