package geomlayout

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func twoSpanInput() model.BeamInput {
	return model.BeamInput{
		Supports: []model.Support{
			{Label: "A", WidthCM: 40},
			{Label: "B", WidthCM: 40},
			{Label: "C", WidthCM: 40},
		},
		Spans: []model.SpanGeometry{
			{ClearSpanM: 5.0, BaseCM: 30, HeightCM: 50},
			{ClearSpanM: 4.0, BaseCM: 30, HeightCM: 50},
		},
	}
}

func TestBuildLaysOutFacesAndSpans(t *testing.T) {
	geo, err := Build(twoSpanInput())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(geo.Faces) != 3 {
		t.Fatalf("expected 3 faces, got %d", len(geo.Faces))
	}
	if len(geo.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(geo.Spans))
	}

	wantTotal := 0.40 + 5.0 + 0.40 + 4.0 + 0.40
	if diff := geo.TotalLengthM - wantTotal; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("TotalLengthM = %f, want %f", geo.TotalLengthM, wantTotal)
	}
}

func TestBuildRejectsCardinalityMismatch(t *testing.T) {
	input := twoSpanInput()
	input.Spans = input.Spans[:1]

	_, err := Build(input)
	if err == nil {
		t.Fatal("expected an error for mismatched support/span counts, got nil")
	}
	if _, ok := err.(*InvalidGeometryError); !ok {
		t.Fatalf("expected *InvalidGeometryError, got %T", err)
	}
}

func TestBuildRejectsNegativeSupportWidth(t *testing.T) {
	input := twoSpanInput()
	input.Supports[1].WidthCM = -10

	_, err := Build(input)
	if err == nil {
		t.Fatal("expected an error for negative support width, got nil")
	}
}

func TestBuildDefaultsAxisLabelsWhenUnset(t *testing.T) {
	geo, err := Build(twoSpanInput())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if geo.AxisMarkers[0].Label != "A" {
		t.Fatalf("expected first axis marker label %q, got %q", "A", geo.AxisMarkers[0].Label)
	}
}
