package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/despacho/internal/config"
	"github.com/alexiusacademia/despacho/internal/detailing"
	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/drawing/render"
	"github.com/alexiusacademia/despacho/internal/drawing/section"
	"github.com/alexiusacademia/despacho/internal/geomlayout"
	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/alexiusacademia/despacho/internal/sinks"
	"github.com/spf13/cobra"
)

var (
	drawInputFile       string
	drawOutputFile      string
	drawFormat          string
	drawTemplateKey     string
	drawScale           float64
	drawSectionTemplate string
	drawBeamLabel       string
	drawElementLevel    string
	drawQuantity        int
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Assemble and export the drawing of a detailed beam",
}

var drawExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the detailing pipeline and export a layered drawing",
	Long: `Run the detailing pipeline, assemble the layered DrawingDocument
(beam outline, supports, axis markers, rebar lanes, dimensions, title
block, right info box, section schematic), and export it to
one of the pluggable sinks: svg, png, pdf, or chart.

Example:
  despacho draw export --input beam.yaml --output beam.svg --format svg`,
	Run: runDrawExport,
}

func init() {
	rootCmd.AddCommand(drawCmd)
	drawCmd.AddCommand(drawExportCmd)

	defaults := config.Load()

	drawExportCmd.Flags().StringVarP(&drawInputFile, "input", "i", "", "Beam input YAML file [required]")
	drawExportCmd.MarkFlagRequired("input")
	drawExportCmd.Flags().StringVarP(&drawOutputFile, "output", "o", "", "Output file path [required]")
	drawExportCmd.MarkFlagRequired("output")
	drawExportCmd.Flags().StringVar(&drawFormat, "format", "", "Export format: svg, png, pdf, chart (defaults to the output extension)")
	drawExportCmd.Flags().StringVar(&drawTemplateKey, "template", defaults.TemplateKey, "Drawing template key")
	drawExportCmd.Flags().Float64Var(&drawScale, "scale", defaults.DrawingScale, "Drawing scale denominator (1:N)")
	drawExportCmd.Flags().StringVar(&drawSectionTemplate, "section-template", "", "Optional PTL section-template file to embed as the section schematic")
	drawExportCmd.Flags().StringVar(&drawBeamLabel, "beam-label", "VIGA", "Beam label for the title block")
	drawExportCmd.Flags().StringVar(&drawElementLevel, "level", "", "Element level/story for the title block")
	drawExportCmd.Flags().IntVar(&drawQuantity, "quantity", 1, "Element quantity for the title block")
}

func runDrawExport(cmd *cobra.Command, args []string) {
	input, err := loadBeamInput(drawInputFile)
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

	payload := render.Payload{
		Geometry:        geo,
		DetailingResult: result,
		Metadata: render.Metadata{
			BeamLabel:          drawBeamLabel,
			ElementLevel:       drawElementLevel,
			ElementQuantity:    drawQuantity,
			ConcreteStrength:   input.Material.ConcreteStrength,
			ReinforcementGrade: input.Material.SteelGrade,
		},
	}

	opts := render.Options{TemplateKey: drawTemplateKey, Scale: drawScale}
	if drawSectionTemplate != "" {
		tmpl, err := section.Load(drawSectionTemplate)
		if err != nil {
			// Falls back to the hand-drawn legacy schematic (spec §7,
			// SectionTemplateUnavailable) instead of aborting the export.
			fmt.Printf("Aviso: plantilla de sección no disponible (%v); usando esquema heredado\n", err)
		} else {
			opts.SectionTemplate = &tmpl
		}
	}

	doc := render.RenderDocument(payload, opts)

	format := drawFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(drawOutputFile), ".")
	}

	if err := exportDrawing(doc, result, format, drawOutputFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Dibujo exportado en %s\n", drawOutputFile)
}

func exportDrawing(doc *domain.Document, result model.DetailingResult, format, path string) error {
	switch strings.ToLower(format) {
	case "svg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return sinks.ExportSVG(doc, f)
	case "png":
		return sinks.ExportPNG(doc, path)
	case "pdf":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return sinks.ExportPDF(doc, f)
	case "chart":
		return sinks.ExportMaterialChart(result.MaterialList, path)
	default:
		return fmt.Errorf("formato de exportación desconocido: %q", format)
	}
}
