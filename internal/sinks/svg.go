package sinks

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// ExportSVG renders doc as an SVG document, flipping the drawing's y-up
// coordinate space into SVG's y-down pixel space.
func ExportSVG(doc *domain.Document, w io.Writer) error {
	if len(doc.Entities) == 0 {
		return ErrEmptyDocument
	}
	minX, minY, maxX, maxY := bounds(doc, 150.0)
	width := int(maxX - minX)
	height := int(maxY - minY)
	if width <= 0 || height <= 0 {
		return ErrEmptyDocument
	}

	toPx := func(p domain.Point2D) (int, int) {
		return int(p.X - minX), height - int(p.Y-minY)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	for _, e := range doc.Entities {
		switch t := e.(type) {
		case domain.Line:
			x1, y1 := toPx(t.Start)
			x2, y2 := toPx(t.End)
			canvas.Line(x1, y1, x2, y2, "stroke:black;stroke-width:1")
		case domain.Polyline:
			if len(t.Points) == 0 {
				continue
			}
			xs := make([]int, len(t.Points))
			ys := make([]int, len(t.Points))
			for i, p := range t.Points {
				xs[i], ys[i] = toPx(p)
			}
			if t.Closed {
				canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1.5")
			} else {
				canvas.Polyline(xs, ys, "fill:none;stroke:black;stroke-width:1.5")
			}
		case domain.Text:
			x, y := toPx(t.Insert)
			canvas.Text(x, y, t.Content, fmt.Sprintf("font-size:%dpx;text-anchor:%s", textPx(t.Height), anchorOf(t.HAlign)))
		case domain.Dimension:
			x1, y1 := toPx(t.Start)
			x2, y2 := toPx(t.End)
			canvas.Line(x1, y1, x2, y2, "stroke:#4444aa;stroke-width:0.75")
			label := t.TextOverride
			if label != "" {
				canvas.Text((x1+x2)/2, y1-6, label, "font-size:10px;text-anchor:middle;fill:#4444aa")
			}
		case domain.Hatch:
			if len(t.Boundary) == 0 {
				continue
			}
			xs := make([]int, len(t.Boundary))
			ys := make([]int, len(t.Boundary))
			for i, p := range t.Boundary {
				xs[i], ys[i] = toPx(p)
			}
			canvas.Polygon(xs, ys, "fill:#cccccc;fill-opacity:0.4;stroke:none")
		}
	}

	canvas.End()
	return nil
}

func textPx(heightMM float64) int {
	if heightMM <= 0 {
		return 12
	}
	return int(heightMM)
}

func anchorOf(hAlign string) string {
	switch hAlign {
	case "center":
		return "middle"
	case "right":
		return "end"
	default:
		return "start"
	}
}
