// Package cmd defines the command-line interface for ransomready.
package cmd

import (
	"github.com/huangsam/ransomready/internal/contract"
	"github.com/huangsam/ransomready/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(techniquesCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print earned/possible points, the assessment id and the action plan")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultAreaLimit, "Number of risk and strength areas to display (1-5)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a question bank in YAML or JSON (default: built-in)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Flags shared by the commands that produce an assessment. They are bound
	// to Viper in sharedSetup for the command that actually runs.
	for _, c := range []*cobra.Command{scoreCmd, assessCmd} {
		c.Flags().Bool("explain", false, "Print responses next to areas and all recommendations")
		c.Flags().Bool("require-complete", false, "Fail instead of scoring when questions are unanswered")
		c.Flags().String("organization", "", "Organization being assessed")
		c.Flags().String("assessor", "", "Person answering the questions")
		c.Flags().String("email", "", "Contact email of the assessor")
		c.Flags().String("org-size", "", "Organization size: 1-4 or small, medium, large, enterprise")
	}
}
