package continuity

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func TestSelectPicksTheTwoLargestDiametersContinuous(t *testing.T) {
	sel := Select([]model.BarGroup{
		{Diameter: "#4", Quantity: 2},
		{Diameter: "#8", Quantity: 2},
		{Diameter: "#6", Quantity: 2},
	})

	if len(sel.Diameters) != 2 {
		t.Fatalf("expected 2 continuous diameters, got %v", sel.Diameters)
	}
	if sel.Diameters[0] != "#8" || sel.Diameters[1] != "#6" {
		t.Fatalf("expected #8 then #6 (largest first), got %v", sel.Diameters)
	}
	if sel.ContinuousCount["#4"] != 0 {
		t.Fatalf("expected #4 to be excluded from the continuous set, got count %d", sel.ContinuousCount["#4"])
	}
}

func TestSelectMarksSingleAvailableBarAsOneContinuousInstance(t *testing.T) {
	sel := Select([]model.BarGroup{{Diameter: "#6", Quantity: 1}})

	if sel.ContinuousCount["#6"] != 1 {
		t.Fatalf("expected a single #6 bar to yield ContinuousCount 1, got %d", sel.ContinuousCount["#6"])
	}
}

func TestSelectIgnoresZeroQuantityGroups(t *testing.T) {
	sel := Select([]model.BarGroup{{Diameter: "#6", Quantity: 0}})

	if len(sel.Diameters) != 0 {
		t.Fatalf("expected no continuous diameters for an all-zero input, got %v", sel.Diameters)
	}
}
