package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the roadmap CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roadmap version %s\n", version)
		fmt.Println("Fixed risk-reward account growth projections")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
