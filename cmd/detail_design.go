package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/despacho/internal/detailing"
	"github.com/alexiusacademia/despacho/internal/logging"
	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/spf13/cobra"
)

var (
	detailInputFile string
	detailVerbose   bool
)

var detailDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Compute the full rebar detailing for a beam input file",
	Long: `Read a YAML beam-input file and run the full detailing pipeline:
geometry, forbidden zones, continuous bar selection, development lengths,
bar placement, splice coordination, cover/hook finishing, stirrup
summary, material take-off, and validation.

Example:
  despacho detail design --input beam.yaml --verbose`,
	Run: runDetailDesign,
}

func init() {
	detailCmd.AddCommand(detailDesignCmd)

	detailDesignCmd.Flags().StringVarP(&detailInputFile, "input", "i", "", "Beam input YAML file [required]")
	detailDesignCmd.MarkFlagRequired("input")
	detailDesignCmd.Flags().BoolVarP(&detailVerbose, "verbose", "v", false, "Print step-numbered progress trace")
}

func runDetailDesign(cmd *cobra.Command, args []string) {
	input, err := loadBeamInput(detailInputFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	tracer := logging.StepTracer{Verbose: detailVerbose}
	result, err := detailing.ComputeDetailing(input, detailing.Options{Trace: tracer.Trace})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DESPIECE DE VIGA - NSR-10 TÍTULO C")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	logging.Section("Barras superiores")
	printBars(result.TopBars)

	logging.Section("Barras inferiores")
	printBars(result.BottomBars)

	logging.Section("Estribos")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, seg := range result.StirrupsSummary.Segments {
		fmt.Fprintf(w, "  %.2f m - %.2f m\t%s\tespaciamiento %.3f m\t~%d estribos\n",
			seg.StartM, seg.EndM, seg.ZoneType, seg.SpacingM, seg.EstimatedCount)
	}
	w.Flush()
	fmt.Println()

	logging.Section("Lista de materiales")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diámetro\tLongitud total\tPiezas\tPeso\tDesperdicio\n")
	for _, item := range result.MaterialList {
		fmt.Fprintf(w, "  %s\t%.2f m\t%d\t%.1f kg\t%.1f%%\n", item.Diameter, item.TotalLengthM, item.Pieces, item.WeightKG, item.WastePct)
	}
	w.Flush()
	fmt.Printf("  Total: %.1f kg en %d barras\n", result.TotalWeightKG, result.TotalBarsCount)
	fmt.Println()

	logging.Section("Validación")
	logging.Warnings(result.Warnings)
	fmt.Printf("  Puntaje de optimización: %d/100\n", result.OptimizationScore)
	fmt.Println()
}

func printBars(bars []model.RebarDetail) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tΦ\tTipo\tInicio\tFin\tLongitud\tEmpalmes\n")
	for _, bar := range bars {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f m\t%.2f m\t%.2f m\t%d\n",
			bar.ID, bar.Diameter, bar.Type, bar.StartM, bar.EndM, bar.LengthM, len(bar.Splices))
	}
	w.Flush()
	fmt.Println()
}
