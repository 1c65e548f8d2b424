package render

import (
	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/drawing/section"
	"github.com/alexiusacademia/despacho/internal/drawing/templates"
)

// Options configures one RenderDocument call.
type Options struct {
	TemplateKey      string
	Scale            float64
	SectionTemplate  *section.Template
	SectionPlaceholders map[string]string
}

// RenderDocument runs the fixed renderer chain of spec §4.L: beam outline,
// supports, axis markers, rebar lanes, dimensions, title block, right info
// box, then the section schematic (from the supplied section template, or
// the hand-drawn legacy outline when none is supplied) — grounded on
// drawing_service.py's BeamDrawingService.render_document.
func RenderDocument(payload Payload, opts Options) *domain.Document {
	tmpl := templates.Get(opts.TemplateKey)
	scale := opts.Scale
	if scale <= 0 {
		scale = 50.0
	}
	ctx := NewContext(payload, tmpl, scale)

	doc := domain.NewDocument(tmpl.Units, scale)
	doc.Metadata["template"] = tmpl.Key
	doc.Metadata["locale"] = ctx.Locale
	doc.Metadata["beam_label"] = payload.Metadata.BeamLabel

	BeamRenderer{}.Draw(doc, ctx)
	NewRebarDrawer().Draw(doc, ctx)
	NewDimensionRenderer().Draw(doc, ctx)
	NewTitleBlockRenderer().Draw(doc, ctx)
	NewRightInfoBoxRenderer().Draw(doc, ctx)

	drawSectionSchematic(doc, ctx, opts.SectionTemplate, opts.SectionPlaceholders)

	return doc
}

// drawSectionSchematic instantiates the externally authored section
// template into the right info box, centered at 35% of the box height
// (spec §4.M). When no
// template is available — none supplied, or the one supplied failed to
// load or parse — it falls back to a hand-drawn legacy schematic instead
// of leaving the area blank (spec §7, SectionTemplateUnavailable: "no call
// fails").
func drawSectionSchematic(doc *domain.Document, ctx Context, tmpl *section.Template, placeholders map[string]string) {
	beamLengthMM := ctx.ToMM(ctx.Payload.Geometry.TotalLengthM)
	boxWidth := 2600.0
	boxHeight := ctx.BeamHeightMM
	if boxHeight <= 0 {
		return
	}
	anchor := domain.Point2D{
		X: ctx.Origin.X + beamLengthMM + boxWidth/2.0,
		Y: ctx.Origin.Y + boxHeight*0.35,
	}
	shapeLayer := ctx.Layer("beam_outline")
	targetWidth, targetHeight := boxWidth*0.8, boxHeight*0.6

	if tmpl == nil {
		drawLegacySectionSchematic(doc, anchor, targetWidth, targetHeight, shapeLayer)
		return
	}

	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("labels", "")
	instance := section.Instantiate(*tmpl, anchor, targetWidth, targetHeight, shapeLayer, textLayer, textStyle.Name, placeholders)
	doc.Extend(instance.Entities)
}

// drawLegacySectionSchematic hand-draws a plain rectangular section outline
// with an inset stirrup-outline placeholder, centered at anchor within
// (targetWidth, targetHeight) — the fallback used when no PTL section
// template could be loaded.
func drawLegacySectionSchematic(doc *domain.Document, anchor domain.Point2D, targetWidth, targetHeight float64, layer string) {
	halfW, halfH := targetWidth/2.0, targetHeight/2.0
	outer := []domain.Point2D{
		{X: anchor.X - halfW, Y: anchor.Y - halfH},
		{X: anchor.X + halfW, Y: anchor.Y - halfH},
		{X: anchor.X + halfW, Y: anchor.Y + halfH},
		{X: anchor.X - halfW, Y: anchor.Y + halfH},
	}
	doc.Add(domain.NewPolyline(layer, outer, true, 7))

	cover := 0.15
	insetW, insetH := halfW*(1-cover), halfH*(1-cover)
	stirrup := []domain.Point2D{
		{X: anchor.X - insetW, Y: anchor.Y - insetH},
		{X: anchor.X + insetW, Y: anchor.Y - insetH},
		{X: anchor.X + insetW, Y: anchor.Y + insetH},
		{X: anchor.X - insetW, Y: anchor.Y + insetH},
	}
	doc.Add(domain.NewPolyline(layer, stirrup, true, 7))
}
