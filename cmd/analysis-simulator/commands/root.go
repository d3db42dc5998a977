// Package commands implements the CLI for the analysis simulator.
package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ideaforge/analysis-simulator/internal/config"
	"github.com/ideaforge/analysis-simulator/internal/logger"
)

// cfg is loaded once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "analysis-simulator",
	Short: "Deterministic mock of the idea-analysis and Frankenstein services",
	Long: `analysis-simulator stands in for the LLM-backed analysis and mashup-generation
services so dashboards, E2E suites, and CI can run without network calls, API
cost, or nondeterminism. Behavior is driven by a configured scenario (success
or one specific structured failure), optional simulated latency, and
input-derived response customization.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg = config.LoadConfig()
		logger.Init(cfg.Profile)
		config.ApplyPresetOverrides(&cfg)
		return cfg.Validate()
	},
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}
