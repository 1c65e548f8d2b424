package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/despacho/internal/drawing/templates"
	"github.com/spf13/cobra"
)

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known drawing templates",
	Long: `List every drawing template resolved from the manifest (or the
built-in default when no manifest file is present), with its locale,
units, and layer/text-style counts.`,
	Run: runTemplateList,
}

func init() {
	templateCmd.AddCommand(templateListCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) {
	configs := templates.List()
	sort.Slice(configs, func(i, j int) bool { return configs[i].Key < configs[j].Key })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CLAVE\tLOCALE\tESCALA\tCAPAS\tESTILOS DE TEXTO\n")
	for _, cfg := range configs {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%d\t%d\n",
			cfg.Key, cfg.Locale, cfg.Units.ScaleFactor, len(cfg.Layers), len(cfg.TextStyles))
	}
	w.Flush()
}
