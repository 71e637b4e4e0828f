package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradekit/roadmap/config"
	"github.com/tradekit/roadmap/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage configuration files for the roadmap tool.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  roadmap config init --output roadmap.yaml
  roadmap config validate --file roadmap.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with default settings.

Example:
  roadmap config init --output roadmap.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  roadmap config validate --file roadmap.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "roadmap.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", configInitOutput)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit the file and run with:")
	fmt.Fprintf(cmd.OutOrStdout(), "  roadmap project --config %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration valid: %s\n", configValidatePath)
	fmt.Fprintf(cmd.OutOrStdout(), "  Projection: %s -> %s (Risk: %.1f%%, RR: 1:%.1f)\n",
		report.FormatCurrency(cfg.Projection.CurrentBalance),
		report.FormatCurrency(cfg.Projection.TargetBalance),
		cfg.Projection.RiskPercent, cfg.Projection.RiskRewardRatio)
	fmt.Fprintf(cmd.OutOrStdout(), "  Server: %s\n", cfg.Server.Addr)
	return nil
}
