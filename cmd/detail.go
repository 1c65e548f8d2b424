package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/despacho/internal/config"
	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/spf13/cobra"
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Detail the reinforcement of a beam",
	Long: `Compute the longitudinal and transverse rebar detailing of a beam:
continuous bars and lap splices, forbidden splice zones, development
lengths, stirrup confinement zones, material take-off, and the
validation warnings the engine emits (NSR-10 Título C).`,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

// loadBeamInput reads a YAML beam-input file into a model.BeamInput.
func loadBeamInput(path string) (model.BeamInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.BeamInput{}, fmt.Errorf("leyendo %s: %w", path, err)
	}
	var input model.BeamInput
	if err := yaml.Unmarshal(raw, &input); err != nil {
		return model.BeamInput{}, fmt.Errorf("parseando %s: %w", path, err)
	}

	defaults := config.Load()
	if input.Material.CoverCM == 0 {
		input.Material.CoverCM = float64(defaults.CoverCM)
	}
	if input.Material.MaxBarLengthM == 0 {
		input.Material.MaxBarLengthM = defaults.MaxBarLengthM
	}
	return input, nil
}
