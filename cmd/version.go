package cmd

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of despacho",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("despacho v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Detailing Engine")
		fmt.Println("Based on NSR-10 Título C")

		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
