package cmd

import (
	"github.com/huangsam/ransomready/core"
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/spf13/cobra"
)

// questionsCmd lists the question bank.
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions, weights and technique tags of the question bank.",
	Long: `Show every question grouped by lifecycle stage.

Custom weights from the config file are applied, so this is a quick way to
check a weights section before scoring. Use --detail to list every option.

Examples:
  ransomready questions --detail
  ransomready questions --questions bank.yaml --output csv --output-file bank.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuestions(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list questions", err)
		}
	},
}

// techniquesCmd lists the ATT&CK taxonomy.
var techniquesCmd = &cobra.Command{
	Use:   "techniques",
	Short: "List the ATT&CK techniques referenced by the question bank.",
	Long: `Show the technique taxonomy with the number of questions guarding each technique.

Examples:
  ransomready techniques --detail
  ransomready techniques --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTechniques(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list techniques", err)
		}
	},
}

// templateCmd writes a blank answers file.
var templateCmd = &cobra.Command{
	Use:   "template [answers-file]",
	Short: "Write a blank answers file for the score command.",
	Long: `Write an answers file with every question and a null value.

Each entry carries the question text and its options as comments. Replace
every null with the value of the chosen option, then run score.

Examples:
  ransomready template answers.yaml
  ransomready template > answers.yaml`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTemplate(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot write template", err)
		}
	},
}
