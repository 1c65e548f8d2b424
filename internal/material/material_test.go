package material

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func TestGenerateGroupsPiecesByDiameterAndExpandsQuantity(t *testing.T) {
	topBars := []model.RebarDetail{
		{Diameter: "#6", LengthM: 6.0, Quantity: 2},
	}
	items := Generate(topBars, nil, 12.0)

	if len(items) != 1 {
		t.Fatalf("expected 1 material item, got %d", len(items))
	}
	item := items[0]
	if item.Pieces != 2 {
		t.Fatalf("expected quantity 2 to expand into 2 pieces, got %d", item.Pieces)
	}
	if item.TotalLengthM != 12.0 {
		t.Fatalf("TotalLengthM = %f, want 12.0", item.TotalLengthM)
	}
}

func TestGenerateFallsBackToOversizeStockWhenPieceExceedsMaxLength(t *testing.T) {
	bars := []model.RebarDetail{{Diameter: "#8", LengthM: 15.0, Quantity: 1}}
	items := Generate(bars, nil, 12.0)

	if len(items) != 1 || len(items[0].CommercialLengths) != 1 {
		t.Fatalf("expected a single oversize cut plan, got %+v", items)
	}
	plan := items[0].CommercialLengths[0]
	if plan.CommercialLengthM != 15.0 {
		t.Fatalf("expected the oversize stock to size to the piece length 15.0, got %f", plan.CommercialLengthM)
	}
}

func TestGeneratePacksMultiplePiecesIntoOneStockLength(t *testing.T) {
	bars := []model.RebarDetail{{Diameter: "#4", LengthM: 5.0, Quantity: 2}}
	items := Generate(bars, nil, 12.0)

	if len(items[0].CommercialLengths) != 1 {
		t.Fatalf("expected both 5m pieces to pack into a single 12m stock, got %d plans", len(items[0].CommercialLengths))
	}
	if items[0].CommercialLengths[0].NumBars != 1 {
		t.Fatalf("expected 1 stock bar consumed, got %d", items[0].CommercialLengths[0].NumBars)
	}
}
