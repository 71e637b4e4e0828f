package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Project account growth under a fixed risk-reward strategy",
	Long: `Roadmap computes a trade-by-trade projection of account balance growth
under a fixed-risk, fixed-reward strategy with perfect execution.

It provides tools for:
  - Projecting the trades needed to compound a balance to a target
  - Serving the projection as a JSON HTTP API for the web frontend
  - Managing configuration files with persistent defaults

Every projection assumes a 100% win rate. It is a compounding illustration,
not a forecast.`,
}

var noColor bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}
