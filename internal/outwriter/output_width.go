package outwriter

import (
	"os"

	"github.com/huangsam/ransomready/internal/contract"
	"golang.org/x/term"
)

// getTerminalWidth returns the width override or the detected terminal width.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// getMaxTableTextWidth calculates the maximum width for free-text columns in
// table output based on terminal width and table configuration.
func getMaxTableTextWidth(cfg *contract.Config) int {
	// Rank + Stage + Score + Technique with borders/padding
	baseWidth := 45

	if cfg.Explain {
		baseWidth += 20 // Question id column when responses are shown
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := getTerminalWidth(cfg) - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// getPanelWidth returns the width of boxed panels.
func getPanelWidth(cfg *contract.Config) int {
	return min(max(getTerminalWidth(cfg)-2, 40), 100)
}
