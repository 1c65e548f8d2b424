package render

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/drawing/section"
	"github.com/alexiusacademia/despacho/internal/drawing/templates"
	"github.com/alexiusacademia/despacho/internal/model"
)

func templateConfig() templates.Config {
	return templates.Get("")
}

func samplePayload() Payload {
	return Payload{
		Geometry: model.Geometry{
			TotalLengthM: 9.4,
			Faces: []model.Face{
				{XM: 0, SupportIndex: 0, WidthM: 0.4, Label: "1"},
				{XM: 5.4, SupportIndex: 1, WidthM: 0.4, Label: "2"},
				{XM: 9.4, SupportIndex: 2, WidthM: 0.4, Label: "3"},
			},
			Supports: []model.SupportInterval{
				{Interval: model.Interval{StartM: 0, EndM: 0.4}, Index: 0, Label: "1"},
				{Interval: model.Interval{StartM: 5.4, EndM: 5.8}, Index: 1, Label: "2"},
			},
			AxisMarkers: []model.AxisMarker{
				{Index: 0, Label: "1", PositionM: 0.2},
				{Index: 1, Label: "2", PositionM: 5.6},
				{Index: 2, Label: "3", PositionM: 9.6},
			},
		},
		DetailingResult: model.DetailingResult{
			TopBars: []model.RebarDetail{
				{Diameter: "#6", StartM: 0, EndM: 9.4, LengthM: 9.4, Quantity: 2},
			},
			BottomBars: []model.RebarDetail{
				{Diameter: "#8", StartM: 0, EndM: 9.4, LengthM: 9.4, Quantity: 2},
			},
			StirrupsSummary: model.StirrupDesignSummary{},
		},
		Metadata: Metadata{BeamLabel: "V-1", ElementQuantity: 1},
	}
}

func TestRenderDocumentRunsFixedRendererChain(t *testing.T) {
	doc := RenderDocument(samplePayload(), Options{TemplateKey: "", Scale: 50})

	if len(doc.Entities) == 0 {
		t.Fatal("expected RenderDocument to produce at least one entity")
	}

	var sawOutline, sawRebarLine, sawDimension bool
	for _, e := range doc.Entities {
		switch e.Kind() {
		case "Polyline":
			if e.Layer() != "" {
				sawOutline = true
			}
		case "Line":
			sawRebarLine = true
		case "Dimension":
			sawDimension = true
		}
	}
	if !sawOutline {
		t.Error("expected a beam outline polyline")
	}
	if !sawRebarLine {
		t.Error("expected at least one rebar line entity")
	}
	if !sawDimension {
		t.Error("expected at least one dimension entity")
	}
}

// TestDrawSectionSchematicFallsBackToLegacyWithoutATemplate covers spec §7's
// SectionTemplateUnavailable: a nil template must still produce a
// hand-drawn schematic rather than leaving the area blank.
func TestDrawSectionSchematicFallsBackToLegacyWithoutATemplate(t *testing.T) {
	ctx := NewContext(samplePayload(), templateConfig(), 50)
	doc := domain.NewDocument(ctx.Units, 50)

	drawSectionSchematic(doc, ctx, nil, nil)

	if len(doc.Entities) != 2 {
		t.Fatalf("expected the legacy fallback to draw exactly 2 polylines (outline + stirrup outline), got %d", len(doc.Entities))
	}
	for _, e := range doc.Entities {
		if e.Kind() != "Polyline" {
			t.Fatalf("expected only Polyline entities from the legacy fallback, got %s", e.Kind())
		}
	}
}

// TestDrawSectionSchematicUsesSuppliedTemplateWhenPresent confirms a valid
// template takes priority over the legacy fallback.
func TestDrawSectionSchematicUsesSuppliedTemplateWhenPresent(t *testing.T) {
	tmpl, err := section.Parse(strings.NewReader("POLYLINE outline 0 0 -> 10 0 -> 10 5 -> 0 5 CLOSED"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ctx := NewContext(samplePayload(), templateConfig(), 50)
	doc := domain.NewDocument(ctx.Units, 50)

	drawSectionSchematic(doc, ctx, &tmpl, nil)

	if len(doc.Entities) == 0 {
		t.Fatal("expected the supplied template to be instantiated into the document")
	}
}
