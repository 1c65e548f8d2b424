package render

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func segAt(start, end float64) preparedSegment {
	return preparedSegment{startX: start, endX: end, quantity: 1}
}

func TestAssignLanesReusesNonOverlappingLane(t *testing.T) {
	segments := []preparedSegment{
		segAt(0, 100),
		segAt(100, 200), // touches the end of the first: same lane
		segAt(50, 150),  // overlaps both: needs a new lane
	}

	lanes := assignLanes(segments)

	if lanes[0] != lanes[1] {
		t.Fatalf("expected adjacent non-overlapping segments to share a lane, got %v", lanes)
	}
	if lanes[2] == lanes[0] {
		t.Fatalf("expected the overlapping segment to open a new lane, got %v", lanes)
	}
}

func TestAssignLanesWithinTolerance(t *testing.T) {
	segments := []preparedSegment{
		segAt(0, 100),
		segAt(100-laneTolerance/2, 150), // within tolerance: reuses lane 0
	}

	lanes := assignLanes(segments)
	if lanes[0] != lanes[1] {
		t.Fatalf("expected segment within laneTolerance to reuse lane 0, got %v", lanes)
	}
}

func TestPrepareSegmentsCoalescesIdenticalBars(t *testing.T) {
	ctx := Context{}
	bars := []model.RebarDetail{
		{Diameter: "3/8", StartM: 0, EndM: 2, LengthM: 2, Quantity: 2},
		{Diameter: "3/8", StartM: 0, EndM: 2, LengthM: 2, Quantity: 3},
		{Diameter: "1/2", StartM: 0, EndM: 2, LengthM: 2, Quantity: 1},
	}

	segments := RebarDrawer{}.prepareSegments(bars, ctx)

	if len(segments) != 2 {
		t.Fatalf("expected 2 coalesced segments, got %d: %+v", len(segments), segments)
	}
	var total int
	for _, s := range segments {
		total += s.quantity
	}
	if total != 6 {
		t.Fatalf("expected quantities to sum to 6, got %d", total)
	}
}
