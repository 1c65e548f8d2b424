package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/despacho/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "despacho",
	Short: "Reinforced Concrete Beam Detailing Engine",
	Long: `despacho - NSR-10 Title C Beam Rebar Detailing Engine

A CLI tool for detailing the longitudinal and transverse reinforcement
of reinforced-concrete beams: continuous bars and lap splices, forbidden
splice zones, development lengths, stirrup confinement zones, cutting-
stock optimization, and material take-off.

This tool also assembles a layered vector drawing of the detailed beam
and exports it to SVG, PNG, PDF, or a terminal ASCII preview.

All calculations follow NSR-10 Título C (Colombian seismic-resistant
concrete construction code).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   despacho v%-46s║\n", version.Version)
		fmt.Println("  ║   Motor de Despiece de Vigas de Concreto Reforzado        ║")
		fmt.Println("  ║   NSR-10 Título C                                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for detailing reinforced-concrete beams")
		fmt.Println("  based on NSR-10 Título C.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Continuous bar and lap splice placement")
		fmt.Println("    • Forbidden splice zone and development length checks")
		fmt.Println("    • Stirrup confinement zones and cutting-stock optimization")
		fmt.Println("    • Vector drawing assembly with SVG/PNG/PDF/ASCII export")
		fmt.Println()
		fmt.Println("  Use 'despacho --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
