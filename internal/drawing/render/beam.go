package render

import (
	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/drawing/geometry"
)

// BeamRenderer emits the beam outline, support rectangles, and axis
// markers (spec §4.L.1, grounded on beam_renderer.py).
type BeamRenderer struct{}

func (BeamRenderer) Draw(doc *domain.Document, ctx Context) {
	totalMM := ctx.ToMM(ctx.Payload.Geometry.TotalLengthM)

	outlineLayer := ctx.Layer("beam_outline")
	doc.Add(domain.NewPolyline(
		outlineLayer,
		geometry.Rectangle(ctx.Origin, totalMM, ctx.BeamHeightMM),
		true,
		colorOf(ctx, "beam_outline"),
	))

	drawSupports(doc, ctx)
	drawAxisMarkers(doc, ctx)
}

func drawSupports(doc *domain.Document, ctx Context) {
	layer := ctx.Layer("supports")
	y0 := ctx.Origin.Y
	for _, support := range ctx.Payload.Geometry.Supports {
		start := ctx.ToMM(support.StartM)
		width := ctx.ToMM(support.Len())
		origin := domain.Point2D{X: ctx.Origin.X + start, Y: y0}
		doc.Add(domain.NewPolyline(layer, geometry.Rectangle(origin, width, ctx.BeamHeightMM), true, colorOf(ctx, "supports")))
	}
}

func drawAxisMarkers(doc *domain.Document, ctx Context) {
	axisLayer := ctx.Layer("axes")
	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("labels", "")

	extensionTop := 25.0 * ctx.VerticalScale
	extensionBottom := 35.0 * ctx.VerticalScale
	labelOffset := 10.0 * ctx.VerticalScale

	for _, marker := range ctx.Payload.Geometry.AxisMarkers {
		x := ctx.Origin.X + ctx.ToMM(marker.PositionM)
		top := ctx.Origin.Y + ctx.BeamHeightMM + extensionTop
		bottom := ctx.Origin.Y - extensionBottom

		doc.Add(domain.NewPolyline(axisLayer, []domain.Point2D{{X: x, Y: bottom}, {X: x, Y: top}}, false, colorOf(ctx, "axes")))
		doc.Add(domain.NewText(textLayer, marker.Label, domain.Point2D{X: x - 5.0, Y: top + labelOffset}, ctx.TextHeightMM, textStyle.Name))
	}
}

// colorOf resolves alias's configured layer color, or 0 (by-layer) if the
// template carries no style for it.
func colorOf(ctx Context, alias string) int {
	if style, ok := ctx.LayerStyle(alias); ok {
		return style.Color
	}
	return 0
}
