package zones

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/geomlayout"
	"github.com/alexiusacademia/despacho/internal/model"
)

func TestEffectiveDepthPreprocessingFloorsAt30Centimeters(t *testing.T) {
	d := EffectiveDepthPreprocessing([]model.SpanInterval{{HeightCM: 20}})
	if d != 0.30 {
		t.Fatalf("expected the 0.30 m floor for a shallow span, got %f", d)
	}
}

func TestEffectiveDepthPreprocessingAveragesAcrossSpans(t *testing.T) {
	d := EffectiveDepthPreprocessing([]model.SpanInterval{{HeightCM: 50}, {HeightCM: 60}})
	want := (55.0 - 6) / 100
	if d != want {
		t.Fatalf("EffectiveDepthPreprocessing = %f, want %f", d, want)
	}
}

func TestCalculateProducesZonesAtEveryFace(t *testing.T) {
	geo, err := geomlayout.Build(model.BeamInput{
		Supports: []model.Support{{WidthCM: 40}, {WidthCM: 40}, {WidthCM: 40}},
		Spans: []model.SpanGeometry{
			{ClearSpanM: 5.0, BaseCM: 30, HeightCM: 50},
			{ClearSpanM: 4.0, BaseCM: 30, HeightCM: 50},
		},
	})
	if err != nil {
		t.Fatalf("geomlayout.Build returned error: %v", err)
	}

	zones := Calculate(geo)
	if len(zones) == 0 {
		t.Fatal("expected at least one forbidden zone for a multi-support beam")
	}
	for _, z := range zones {
		if z.EndM <= z.StartM {
			t.Fatalf("zone %+v has non-positive length", z)
		}
	}
}
