package sinks

import (
	"io"

	liberation "codeberg.org/go-fonts/liberation"
	"codeberg.org/go-pdf/fpdf"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

const pdfScale = 0.25 // drawing mm -> PDF mm on the A3 landscape page

// ExportPDF renders doc as a single-page PDF, writing it to w.
func ExportPDF(doc *domain.Document, w io.Writer) error {
	if len(doc.Entities) == 0 {
		return ErrEmptyDocument
	}
	minX, minY, _, _ := bounds(doc, 40.0)

	pdf := fpdf.New("L", "mm", "A3", "")
	pdf.AddUTF8FontFromBytes("Liberation", "", liberation.SansRegular)
	pdf.SetFont("Liberation", "", 8)
	pdf.AddPage()

	toMM := func(p domain.Point2D) (float64, float64) {
		return (p.X - minX) * pdfScale, (p.Y - minY) * pdfScale
	}

	for _, e := range doc.Entities {
		switch t := e.(type) {
		case domain.Line:
			x1, y1 := toMM(t.Start)
			x2, y2 := toMM(t.End)
			pdf.Line(x1, y1, x2, y2)
		case domain.Polyline:
			if len(t.Points) == 0 {
				continue
			}
			points := make([]fpdf.PointType, len(t.Points))
			for i, p := range t.Points {
				x, y := toMM(p)
				points[i] = fpdf.PointType{X: x, Y: y}
			}
			style := "D"
			pdf.Polygon(points, style)
		case domain.Text:
			x, y := toMM(t.Insert)
			pdf.Text(x, y, t.Content)
		case domain.Dimension:
			x1, y1 := toMM(t.Start)
			x2, y2 := toMM(t.End)
			pdf.Line(x1, y1, x2, y2)
			if t.TextOverride != "" {
				pdf.Text((x1+x2)/2, y1-1.5, t.TextOverride)
			}
		case domain.Hatch:
			if len(t.Boundary) == 0 {
				continue
			}
			points := make([]fpdf.PointType, len(t.Boundary))
			for i, p := range t.Boundary {
				x, y := toMM(p)
				points[i] = fpdf.PointType{X: x, Y: y}
			}
			pdf.Polygon(points, "D")
		}
	}

	return pdf.Output(w)
}
