package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tradekit/roadmap/config"
	"github.com/tradekit/roadmap/projection"
	"github.com/tradekit/roadmap/report"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the trades needed to reach a target balance",
	Long: `Project simulates winning trades, compounding a fixed risk percentage at a
fixed risk-to-reward ratio, until the balance reaches the target.

Flags override defaults from the config file when one is given.

Examples:
  roadmap project --balance 200 --target 2000 --risk 2 --reward 3
  roadmap project --config roadmap.yaml --target 5000
  roadmap project --csv trades.csv`,
	RunE: runProject,
}

var (
	projectConfigPath string
	projectBalance    float64
	projectTarget     float64
	projectRisk       float64
	projectReward     float64
	projectCSVPath    string
)

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().StringVarP(&projectConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	projectCmd.Flags().Float64VarP(&projectBalance, "balance", "b", 0, "current account balance (default from config: $200)")
	projectCmd.Flags().Float64VarP(&projectTarget, "target", "t", 0, "target account balance (default from config: $2000)")
	projectCmd.Flags().Float64VarP(&projectRisk, "risk", "r", 0, "risk per trade as percentage (default from config: 2%)")
	projectCmd.Flags().Float64VarP(&projectReward, "reward", "w", 0, "risk-to-reward ratio (default from config: 3.0 for 1:3)")
	projectCmd.Flags().StringVar(&projectCSVPath, "csv", "", "also write the trade table to a CSV file")
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if projectConfigPath != "" {
		loaded, err := config.LoadFromFile(projectConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	input := cfg.ProjectionInput()
	if cmd.Flags().Changed("balance") {
		input.CurrentBalance = projectBalance
	}
	if cmd.Flags().Changed("target") {
		input.TargetBalance = projectTarget
	}
	if cmd.Flags().Changed("risk") {
		input.RiskPerTradePct = projectRisk
	}
	if cmd.Flags().Changed("reward") {
		input.RiskRewardRatio = projectReward
	}

	if err := projection.Validate(input); err != nil {
		var verr *projection.ValidationError
		if errors.As(err, &verr) {
			for _, v := range verr.Violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", v.Msg)
			}
			return fmt.Errorf("%d invalid parameter(s)", len(verr.Violations))
		}
		return err
	}

	trades, truncated := projection.ProjectN(input, cfg.Limits.MaxTrades)
	if truncated {
		return fmt.Errorf("projection exceeds %d trades; adjust risk or target", cfg.Limits.MaxTrades)
	}
	sum := projection.Summarize(trades, input)

	report.Write(cmd.OutOrStdout(), input, trades, sum)

	if projectCSVPath != "" {
		f, err := os.Create(projectCSVPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()

		if err := report.WriteCSV(f, trades); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trade table written to: %s\n", projectCSVPath)
	}

	return nil
}
