// Package render assembles a DrawingDocument from a detailing result by
// running a fixed ordered chain of renderers against a shared RenderContext
// (spec §4.L).
package render

import (
	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/drawing/geometry"
	"github.com/alexiusacademia/despacho/internal/drawing/templates"
	"github.com/alexiusacademia/despacho/internal/model"
)

// Metadata carries the beam-level labels the title block and info box
// render, separate from the geometric/reinforcement payload.
type Metadata struct {
	BeamLabel          string
	ElementLevel       string
	ElementQuantity    int
	ConcreteStrength   string
	ReinforcementGrade string
}

// Payload bundles everything a render pass needs: the beam geometry, the
// detailing result, and descriptive metadata.
type Payload struct {
	Geometry        model.Geometry
	DetailingResult model.DetailingResult
	Metadata        Metadata
}

// Context is the read-only state shared by every renderer in one pass.
// vertical_scale mirrors the original's knob for scaling fixed-mm offsets
// (axis extensions, lane spacing, title block padding) to the document's
// scale factor rather than to an absolute mm value.
type Context struct {
	Payload       Payload
	Template      templates.Config
	Units         domain.Units
	BeamHeightMM  float64
	CoverMM       float64
	TextHeightMM  float64
	VerticalScale float64
	Locale        string
	Origin        domain.Point2D
}

// Layer resolves alias to the template's configured layer name, falling
// back to the alias itself.
func (c Context) Layer(alias string) string {
	return c.Template.LayerName(alias, alias)
}

// LayerStyle resolves alias to the template's configured layer style.
func (c Context) LayerStyle(alias string) (templates.LayerStyle, bool) {
	return c.Template.LayerStyle(alias)
}

// ToMM converts a meter-space value into this context's drawing units.
func (c Context) ToMM(valueM float64) float64 {
	return geometry.ToDrawingUnits(valueM, c.Units)
}

// BeamHeightMMFrom derives the drawing-space beam height from the tallest
// span section, never less than 45 cm (spec §4.L,
// drawing_service._beam_height_mm).
func BeamHeightMMFrom(geo model.Geometry, units domain.Units) float64 {
	maxHeightCM := 45.0
	for _, span := range geo.Spans {
		if span.HeightCM > maxHeightCM {
			maxHeightCM = span.HeightCM
		}
	}
	return units.ScaleFactor * (maxHeightCM / 100.0)
}

// CoverMMFrom derives the drawing-space cover, honoring a template override.
func CoverMMFrom(coverCM int, tmpl templates.Config, units domain.Units) float64 {
	resolvedCM := tmpl.CoverCM(coverCM)
	return units.ScaleFactor * (float64(resolvedCM) / 100.0)
}

// NewContext builds the RenderContext for one render pass; scale is the
// document's drawing scale (e.g. 1:50), used only to derive
// vertical_scale = scale/50, floored at 1.0, for fixed-mm offsets.
func NewContext(payload Payload, tmpl templates.Config, scale float64) Context {
	units := tmpl.Units
	beamHeightMM := BeamHeightMMFrom(payload.Geometry, units)
	coverMM := CoverMMFrom(5, tmpl, units)
	verticalScale := scale / 50.0
	if verticalScale < 1.0 {
		verticalScale = 1.0
	}
	return Context{
		Payload:       payload,
		Template:      tmpl,
		Units:         units,
		BeamHeightMM:  beamHeightMM,
		CoverMM:       coverMM,
		TextHeightMM:  tmpl.TextStyleOrFallback("labels", "").Height,
		VerticalScale: verticalScale,
		Locale:        tmpl.Locale,
		Origin:        domain.Point2D{X: 0, Y: 0},
	}
}
