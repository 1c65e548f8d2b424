package cmd

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/detailing"
	"github.com/alexiusacademia/despacho/internal/geomlayout"
	"github.com/alexiusacademia/despacho/internal/sinks"
	"github.com/spf13/cobra"
)

var detailPreviewInputFile string

var detailPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an ASCII preview of the detailed beam",
	Long: `Run the detailing pipeline and print a terminal-only preview: a
coarse ASCII elevation of every top/bottom bar span, a boxed
material take-off summary, and a weight-per-diameter graph.`,
	Run: runDetailPreview,
}

func init() {
	detailCmd.AddCommand(detailPreviewCmd)
	detailPreviewCmd.Flags().StringVarP(&detailPreviewInputFile, "input", "i", "", "Beam input YAML file [required]")
	detailPreviewCmd.MarkFlagRequired("input")
}

func runDetailPreview(cmd *cobra.Command, args []string) {
	input, err := loadBeamInput(detailPreviewInputFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	geo, err := geomlayout.Build(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := detailing.ComputeDetailing(input, detailing.Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(sinks.DrawElevationPreview(geo, result))
	fmt.Println(sinks.MaterialSummaryBox(result))
	if graph := sinks.WeightTrendGraph(result.MaterialList); graph != "" {
		fmt.Println()
		fmt.Println("  PESO POR DIÁMETRO (kg)")
		fmt.Println(graph)
	}
}
