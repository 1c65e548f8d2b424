package barlayout

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func sampleConfig() Config {
	return Config{
		Geometry: model.Geometry{
			TotalLengthM: 9.0,
			Spans: []model.SpanInterval{
				{Interval: model.Interval{StartM: 0.4, EndM: 5.0}, Index: 0},
				{Interval: model.Interval{StartM: 5.4, EndM: 9.0}, Index: 1},
			},
		},
		MaxBarLengthM: 12.0,
		HookType:      model.Hook135,
	}
}

// TestSupportAnchoredAndMidSpanUsesTotalCountAcrossContinuousBars covers the
// qty=6/continuous=2/remaining=4 case: the 1/3-into-support minimum is
// computed against the total (continuous + remaining) count, not remaining
// alone, so an already-satisfied minimum sends every remaining bar mid-span.
func TestSupportAnchoredAndMidSpanUsesTotalCountAcrossContinuousBars(t *testing.T) {
	bars := SupportAnchoredAndMidSpan(sampleConfig(), "#8", 4, 2)

	if len(bars) != 4 {
		t.Fatalf("expected 4 bars placed, got %d", len(bars))
	}
	for _, b := range bars {
		if b.Type != model.BarSpan {
			t.Fatalf("expected all remaining bars to be mid-span (BarSpan) when the continuous bars already satisfy the 1/3 minimum, got %v", b.Type)
		}
	}
}

// TestSupportAnchoredAndMidSpanAnchorsShortfallWhenContinuousBarsAreFew
// covers the opposite case: with no continuous bars, the support minimum
// must be met entirely out of the remaining (non-continuous) count.
func TestSupportAnchoredAndMidSpanAnchorsShortfallWhenContinuousBarsAreFew(t *testing.T) {
	bars := SupportAnchoredAndMidSpan(sampleConfig(), "#8", 4, 0)

	var anchored, span int
	for _, b := range bars {
		switch b.Type {
		case model.BarSupportAnchored:
			anchored++
		case model.BarSpan:
			span++
		}
	}
	if anchored != 2 {
		t.Fatalf("expected ceil(4/3)=2 anchored bars when none are continuous, got %d", anchored)
	}
	if span != 2 {
		t.Fatalf("expected the other 2 bars mid-span, got %d", span)
	}
}

func TestSupportAnchoredAndMidSpanReturnsNilForNonPositiveCount(t *testing.T) {
	if bars := SupportAnchoredAndMidSpan(sampleConfig(), "#8", 0, 2); bars != nil {
		t.Fatalf("expected nil for zero remaining count, got %v", bars)
	}
}
