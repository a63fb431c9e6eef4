package cmd

import (
	"github.com/huangsam/ransomready/core"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a recorded answers file.
var scoreCmd = &cobra.Command{
	Use:   "score <answers-file>",
	Short: "Score a recorded answers file.",
	Long: `Score answers recorded in a YAML or JSON file against the question bank.

Produces:
- Weighted scores per lifecycle stage and overall
- A readiness level from Critical to Excellent
- Ranked risk and strength areas
- ATT&CK technique coverage
- Key insights, prioritized recommendations and an executive summary

Unanswered questions are left out of both earned and possible points, so
they do not lower the score. They are reported as a warning, or fail the run
when --require-complete is set. Unknown questions, values outside 0-4 and
duplicate answers are rejected.

Examples:
  # Create a blank answers file, fill it in, then score it
  ransomready template answers.yaml
  ransomready score answers.yaml

  # Show responses next to each area and every recommendation
  ransomready score answers.yaml --explain --detail

  # Export for tracking or BI tools
  ransomready score answers.yaml --output json --output-file report.json
  ransomready score answers.yaml --output parquet --output-file report.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score assessment", err)
		}
	},
}
