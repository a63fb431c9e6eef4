package cmd

import (
	"github.com/huangsam/ransomready/core"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/spf13/cobra"
)

// assessCmd runs the interactive walkthrough.
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Answer the questions on the console and score the result.",
	Long: `Walk through every question of the bank stage by stage, then print the assessment.

Each question lists its options numbered from 1. Enter q at any prompt to
stop early; the questions answered so far are still scored unless
--require-complete is set.

Examples:
  # Start an assessment for an organization
  ransomready assess --organization "Acme Corp" --assessor "J. Doe"

  # Use a custom question bank and save the report
  ransomready assess --questions bank.yaml --output json --output-file report.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAssess(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run assessment", err)
		}
	},
}
