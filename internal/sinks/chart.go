package sinks

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/despacho/internal/model"
)

// ExportMaterialChart renders a bar chart of total weight per diameter
// (grounded on the teacher's gonum/plot usage in internal/diagram/image.go).
func ExportMaterialChart(items []model.MaterialItem, filename string) error {
	if len(items) == 0 {
		return ErrEmptyDocument
	}

	p := plot.New()
	p.Title.Text = "Peso de acero por diámetro"
	p.Y.Label.Text = "kg"

	values := make(plotter.Values, len(items))
	labels := make([]string, len(items))
	for i, item := range items {
		values[i] = item.WeightKG
		labels[i] = item.Diameter
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 5*vg.Inch, filename)
}
