// Package sinks is a pluggable, non-core consumer of a rendered
// DrawingDocument/DetailingResult: SVG, PNG, PDF, chart, and ASCII
// exporters, each invokable independently by a host (spec.md §1/§6.2
// external collaborator contract). None of these are called by the
// detailing or rendering core.
package sinks

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// bounds computes the drawing-space bounding box spanned by every entity
// in doc, with a small margin, so each sink can size its canvas.
func bounds(doc *domain.Document, marginMM float64) (minX, minY, maxX, maxY float64) {
	first := true
	extend := func(p domain.Point2D) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for _, e := range doc.Entities {
		switch t := e.(type) {
		case domain.Line:
			extend(t.Start)
			extend(t.End)
		case domain.Polyline:
			for _, p := range t.Points {
				extend(p)
			}
		case domain.Text:
			extend(t.Insert)
		case domain.Dimension:
			extend(t.Start)
			extend(t.End)
		case domain.Hatch:
			for _, p := range t.Boundary {
				extend(p)
			}
		}
	}
	if first {
		return 0, 0, 1, 1
	}
	return minX - marginMM, minY - marginMM, maxX + marginMM, maxY + marginMM
}

// ErrEmptyDocument is returned when a sink is asked to render a document
// with no entities.
var ErrEmptyDocument = fmt.Errorf("sinks: document has no entities")
