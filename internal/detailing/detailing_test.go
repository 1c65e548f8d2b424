package detailing

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func sampleInput() model.BeamInput {
	return model.BeamInput{
		Supports: []model.Support{
			{Label: "1", WidthCM: 40},
			{Label: "2", WidthCM: 40},
			{Label: "3", WidthCM: 40},
		},
		Spans: []model.SpanGeometry{
			{Label: "L1", ClearSpanM: 5.0, BaseCM: 30, HeightCM: 50},
			{Label: "L2", ClearSpanM: 4.0, BaseCM: 30, HeightCM: 50},
		},
		TopBars:    []model.BarGroup{{Diameter: "#6", Quantity: 4}},
		BottomBars: []model.BarGroup{{Diameter: "#8", Quantity: 4}},
		Material: model.MaterialParams{
			ConcreteStrength: "21 MPa (3000 psi)",
			SteelGrade:       "420 MPa (Grado 60)",
			EnergyClass:      model.EnergyDMO,
			CoverCM:          5,
			HookType:         model.Hook135,
			MaxBarLengthM:    12.0,
		},
	}
}

func TestComputeDetailingProducesBarsAndMaterialList(t *testing.T) {
	var traced []string
	result, err := ComputeDetailing(sampleInput(), Options{
		Trace: func(step int, msg string) { traced = append(traced, msg) },
	})
	if err != nil {
		t.Fatalf("ComputeDetailing returned error: %v", err)
	}

	if len(result.TopBars) == 0 {
		t.Fatal("expected at least one top bar in the result")
	}
	if len(result.BottomBars) == 0 {
		t.Fatal("expected at least one bottom bar in the result")
	}
	if len(result.MaterialList) == 0 {
		t.Fatal("expected a non-empty material take-off list")
	}
	if len(traced) == 0 {
		t.Fatal("expected the trace callback to receive step messages")
	}
}

func TestComputeDetailingRejectsEmptyReinforcement(t *testing.T) {
	input := sampleInput()
	input.TopBars = nil
	input.BottomBars = nil

	_, err := ComputeDetailing(input, Options{})
	if err != ErrNoReinforcement {
		t.Fatalf("expected ErrNoReinforcement, got %v", err)
	}
}

func TestComputeDetailingPropagatesGeometryError(t *testing.T) {
	input := sampleInput()
	input.Spans = input.Spans[:1] // cardinality mismatch vs 3 supports

	_, err := ComputeDetailing(input, Options{})
	if err == nil {
		t.Fatal("expected an error for mismatched geometry, got nil")
	}
}
