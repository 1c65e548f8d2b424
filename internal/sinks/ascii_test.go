package sinks

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/despacho/internal/model"
)

func TestDrawElevationPreviewReturnsEmptyForZeroLengthBeam(t *testing.T) {
	got := DrawElevationPreview(model.Geometry{}, model.DetailingResult{})
	if got != "" {
		t.Fatalf("expected empty preview for a zero-length beam, got %q", got)
	}
}

func TestDrawElevationPreviewMarksBarSpan(t *testing.T) {
	geo := model.Geometry{TotalLengthM: 10}
	result := model.DetailingResult{
		TopBars: []model.RebarDetail{{StartM: 0, EndM: 10}},
	}

	got := DrawElevationPreview(geo, result)
	if !strings.Contains(got, "TOP") {
		t.Fatalf("expected a TOP track line, got %q", got)
	}
	if !strings.Contains(got, "█") {
		t.Fatalf("expected the bar span to be filled with block characters, got %q", got)
	}
}

func TestDrawElevationPreviewMarksSupportPositions(t *testing.T) {
	geo := model.Geometry{
		TotalLengthM: 10,
		Supports: []model.SupportInterval{
			{Interval: model.Interval{StartM: 5, EndM: 5.4}, Label: "2"},
		},
	}

	got := DrawElevationPreview(geo, model.DetailingResult{})
	if !strings.Contains(got, "▲") {
		t.Fatalf("expected a support marker on the elevation track, got %q", got)
	}
	if !strings.Contains(got, "2 en 5.00 m") {
		t.Fatalf("expected the support label line to remain, got %q", got)
	}
}

func TestMaterialSummaryBoxFitsLongestLine(t *testing.T) {
	result := model.DetailingResult{
		MaterialList: []model.MaterialItem{
			{Diameter: "3/8", WeightKG: 12.3, Pieces: 4, WastePct: 2.5},
		},
		TotalWeightKG:     12.3,
		TotalBarsCount:    4,
		OptimizationScore: 90,
	}

	box := MaterialSummaryBox(result)
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			t.Fatalf("line %d has rune-width %d, want %d (box must be rectangular): %q", i, n, width, line)
		}
	}
}

func TestWeightTrendGraphEmptyWhenNoItems(t *testing.T) {
	if got := WeightTrendGraph(nil); got != "" {
		t.Fatalf("expected empty graph for no items, got %q", got)
	}
}
