package render

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// DimensionRenderer draws three descending registers below the beam
// (total length, span/support widths, axis-to-axis spacing) plus one
// register above the beam repeating the axis-to-axis spacing — a
// generalization from the original's two-register layout per spec §4.L.2.
type DimensionRenderer struct {
	OffsetTotalMM  float64
	OffsetSpansMM  float64
	OffsetAxesMM   float64
	OffsetAboveMM  float64
}

func NewDimensionRenderer() DimensionRenderer {
	return DimensionRenderer{
		OffsetTotalMM: 60.0,
		OffsetSpansMM: 90.0,
		OffsetAxesMM:  120.0,
		OffsetAboveMM: 60.0,
	}
}

func (r DimensionRenderer) Draw(doc *domain.Document, ctx Context) {
	geo := ctx.Payload.Geometry
	dimLayer := ctx.Layer("dimensions")
	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("dimensions", "labels")

	// Register 1: total length.
	totalLengthMM := ctx.ToMM(geo.TotalLengthM)
	baseY := ctx.Origin.Y - r.OffsetTotalMM*ctx.VerticalScale
	doc.Add(domain.NewDimension(dimLayer,
		domain.Point2D{X: ctx.Origin.X, Y: baseY},
		domain.Point2D{X: ctx.Origin.X + totalLengthMM, Y: baseY},
		25.0, formatMeters(ctx.Locale, geo.TotalLengthM)))
	doc.Add(domain.NewText(textLayer, "Longitud total", domain.Point2D{X: ctx.Origin.X, Y: baseY - 10.0}, textStyle.Height, textStyle.Name))

	// Register 2: each span's clear length, each support's width.
	spanY := ctx.Origin.Y - r.OffsetSpansMM*ctx.VerticalScale
	for _, span := range geo.Spans {
		startX := ctx.Origin.X + ctx.ToMM(span.StartM)
		endX := ctx.Origin.X + ctx.ToMM(span.EndM)
		doc.Add(domain.NewDimension(dimLayer,
			domain.Point2D{X: startX, Y: spanY}, domain.Point2D{X: endX, Y: spanY},
			20.0, formatMeters(ctx.Locale, span.Len())))
		doc.Add(domain.NewText(textLayer, fmt.Sprintf("L%d", span.Index+1), domain.Point2D{X: startX, Y: spanY - 12.0}, textStyle.Height, textStyle.Name))
	}
	for _, support := range geo.Supports {
		startX := ctx.Origin.X + ctx.ToMM(support.StartM)
		endX := ctx.Origin.X + ctx.ToMM(support.EndM)
		doc.Add(domain.NewDimension(dimLayer,
			domain.Point2D{X: startX, Y: spanY}, domain.Point2D{X: endX, Y: spanY},
			20.0, formatMeters(ctx.Locale, support.Len())))
		doc.Add(domain.NewText(textLayer, support.Label, domain.Point2D{X: startX, Y: spanY - 12.0}, textStyle.Height, textStyle.Name))
	}

	// Register 3: axis-to-axis spacings, below the beam.
	axisY := ctx.Origin.Y - r.OffsetAxesMM*ctx.VerticalScale
	r.drawAxisToAxis(doc, ctx, dimLayer, textLayer, textStyle.Name, textStyle.Height, axisY)

	// Register 4: axis-to-axis spacings repeated above the beam.
	aboveY := ctx.Origin.Y + ctx.BeamHeightMM + r.OffsetAboveMM*ctx.VerticalScale
	r.drawAxisToAxis(doc, ctx, dimLayer, textLayer, textStyle.Name, textStyle.Height, aboveY)
}

func (r DimensionRenderer) drawAxisToAxis(doc *domain.Document, ctx Context, dimLayer, textLayer, styleName string, textHeight, y float64) {
	markers := ctx.Payload.Geometry.AxisMarkers
	for i := 1; i < len(markers); i++ {
		prev := markers[i-1]
		cur := markers[i]
		startX := ctx.Origin.X + ctx.ToMM(prev.PositionM)
		endX := ctx.Origin.X + ctx.ToMM(cur.PositionM)
		spacingM := cur.PositionM - prev.PositionM
		doc.Add(domain.NewDimension(dimLayer,
			domain.Point2D{X: startX, Y: y}, domain.Point2D{X: endX, Y: y},
			18.0, formatMeters(ctx.Locale, spacingM)))
		doc.Add(domain.NewText(textLayer, fmt.Sprintf("%s-%s", prev.Label, cur.Label), domain.Point2D{X: startX, Y: y - 10.0}, textHeight, styleName))
	}
}
