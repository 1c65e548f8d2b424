package cmd

import (
	"github.com/alexiusacademia/despacho/internal/config"
	"github.com/alexiusacademia/despacho/internal/drawing/templates"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect the drawing templates available to the render pipeline",
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templates.ManifestPath = config.Load().TemplateManifest
}
