package sinks

import (
	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"git.sr.ht/~sbinet/gg"
)

// ExportPNG rasterizes doc to a PNG file at path using gg's immediate-mode
// canvas, flipping the y-up drawing space into gg's y-down pixel space.
func ExportPNG(doc *domain.Document, path string) error {
	if len(doc.Entities) == 0 {
		return ErrEmptyDocument
	}
	minX, minY, maxX, maxY := bounds(doc, 150.0)
	width := int(maxX - minX)
	height := int(maxY - minY)
	if width <= 0 || height <= 0 {
		return ErrEmptyDocument
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.2)

	toPx := func(p domain.Point2D) (float64, float64) {
		return p.X - minX, float64(height) - (p.Y - minY)
	}

	for _, e := range doc.Entities {
		switch t := e.(type) {
		case domain.Line:
			x1, y1 := toPx(t.Start)
			x2, y2 := toPx(t.End)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		case domain.Polyline:
			if len(t.Points) == 0 {
				continue
			}
			x0, y0 := toPx(t.Points[0])
			dc.MoveTo(x0, y0)
			for _, p := range t.Points[1:] {
				x, y := toPx(p)
				dc.LineTo(x, y)
			}
			if t.Closed {
				dc.ClosePath()
			}
			dc.Stroke()
		case domain.Text:
			x, y := toPx(t.Insert)
			dc.DrawString(t.Content, x, y)
		case domain.Dimension:
			x1, y1 := toPx(t.Start)
			x2, y2 := toPx(t.End)
			dc.SetRGB(0.27, 0.27, 0.67)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
			if t.TextOverride != "" {
				dc.DrawStringAnchored(t.TextOverride, (x1+x2)/2, y1-6, 0.5, 0)
			}
			dc.SetRGB(0, 0, 0)
		case domain.Hatch:
			if len(t.Boundary) == 0 {
				continue
			}
			x0, y0 := toPx(t.Boundary[0])
			dc.MoveTo(x0, y0)
			for _, p := range t.Boundary[1:] {
				x, y := toPx(p)
				dc.LineTo(x, y)
			}
			dc.ClosePath()
			dc.SetRGBA(0.8, 0.8, 0.8, 0.4)
			dc.Fill()
			dc.SetRGB(0, 0, 0)
		}
	}

	return dc.SavePNG(path)
}
