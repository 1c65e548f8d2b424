package stirrups

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func TestEffectiveDepthSubtractsCoverAndInnerClearance(t *testing.T) {
	d := EffectiveDepth(50, 5)
	want := (50 - 5 - 2.0) / 100.0
	if d != want {
		t.Fatalf("EffectiveDepth(50,5) = %f, want %f", d, want)
	}
}

func TestEffectiveDepthClampsAtZero(t *testing.T) {
	if d := EffectiveDepth(5, 10); d != 0 {
		t.Fatalf("expected EffectiveDepth to clamp at 0 for cover exceeding height, got %f", d)
	}
}

func TestSpacingForZoneConfinedIsQuarterDepth(t *testing.T) {
	s := SpacingForZone(0.40, model.ZoneConfined)
	if s != 0.10 {
		t.Fatalf("SpacingForZone(confined) = %f, want 0.10", s)
	}
}

func TestSpacingForZoneUnconfinedIsHalfDepth(t *testing.T) {
	s := SpacingForZone(0.40, model.ZoneUnconfined)
	if s != 0.20 {
		t.Fatalf("SpacingForZone(unconfined) = %f, want 0.20", s)
	}
}

func TestDeriveConfinedSegmentsMergesOverlappingIntervals(t *testing.T) {
	zones := []model.ForbiddenZone{
		{StartM: 0.5, EndM: 1.5, Kind: model.ZoneBeforeFace},
	}
	laps := []model.Interval{{StartM: 1.0, EndM: 2.0}}

	segments := DeriveConfinedSegments(zones, laps)
	if len(segments) != 1 {
		t.Fatalf("expected overlapping zone+lap to merge into 1 segment, got %d: %+v", len(segments), segments)
	}
	if segments[0].StartM != 0.5 || segments[0].EndM != 2.0 {
		t.Fatalf("expected merged segment [0.5,2.0], got %+v", segments[0])
	}
}
