package barlayout

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/despacho/internal/model"
)

func markDigits(mark string) string {
	if len(mark) > 0 && mark[0] == '#' {
		return mark[1:]
	}
	return mark
}

func averageSpanLength(geo model.Geometry) float64 {
	if len(geo.Spans) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range geo.Spans {
		sum += s.Len()
	}
	return sum / float64(len(geo.Spans))
}

func longestSpan(geo model.Geometry) model.SpanInterval {
	best := model.SpanInterval{}
	for i, s := range geo.Spans {
		if i == 0 || s.Len() > best.Len() {
			best = s
		}
	}
	return best
}

// SupportBars places the remaining (non-continuous) top bars of mark as
// support bars alternating left/right anchoring by parity (spec §4.F.2).
func SupportBars(cfg Config, mark string, count int, developmentLengthM float64) []model.RebarDetail {
	if count <= 0 {
		return nil
	}
	avgSpan := averageSpanLength(cfg.Geometry)
	length := avgSpan*0.25 + developmentLengthM
	total := cfg.Geometry.TotalLengthM

	bars := make([]model.RebarDetail, 0, count)
	for i := 0; i < count; i++ {
		var startM, endM float64
		if i%2 == 0 {
			startM, endM = 0, length
		} else {
			endM, startM = total, total-length
		}
		bars = append(bars, model.RebarDetail{
			ID:       fmt.Sprintf("T%s-S%02d", markDigits(mark), i+1),
			Diameter: mark,
			Position: model.PositionTop,
			Type:     model.BarSupport,
			StartM:   startM,
			EndM:     endM,
			LengthM:  length,
			Quantity: 1,
		})
	}
	return bars
}

// SupportAnchoredAndMidSpan places the remaining (non-continuous) bottom
// bars of mark: enough anchored into the first support's span end-to-end to
// satisfy NSR-10's "at least 1/3 of the positive reinforcement must enter
// the support" rule across continuous + non-continuous bars together, the
// rest centered as mid-span bars in the longest span (spec §4.F.2, grounded
// on _detail_bottom_bars's min_into_support/support_count computation).
func SupportAnchoredAndMidSpan(cfg Config, mark string, remainingCount, continuousCount int) []model.RebarDetail {
	if remainingCount <= 0 {
		return nil
	}
	totalCount := remainingCount + continuousCount
	minIntoSupport := int(math.Ceil(float64(totalCount) / 3.0))
	if minIntoSupport < 1 {
		minIntoSupport = 1
	}
	anchoredCount := minIntoSupport - continuousCount
	if anchoredCount < 0 {
		anchoredCount = 0
	}

	bars := make([]model.RebarDetail, 0, remainingCount)
	span0 := 0.0
	if len(cfg.Geometry.Spans) > 0 {
		span0 = cfg.Geometry.Spans[0].Len()
	}
	anchoredLength := span0 * 0.8
	for i := 0; i < anchoredCount; i++ {
		bars = append(bars, model.RebarDetail{
			ID:       fmt.Sprintf("B%s-SA%02d", markDigits(mark), i+1),
			Diameter: mark,
			Position: model.PositionBottom,
			Type:     model.BarSupportAnchored,
			StartM:   0,
			EndM:     anchoredLength,
			LengthM:  anchoredLength,
			Quantity: 1,
		})
	}

	remaining := remainingCount - anchoredCount
	if remaining <= 0 {
		return bars
	}

	longest := longestSpan(cfg.Geometry)
	length := longest.Len() * 0.6
	center := (longest.StartM + longest.EndM) / 2
	startM := center - length/2
	endM := center + length/2
	for i := 0; i < remaining; i++ {
		bars = append(bars, model.RebarDetail{
			ID:       fmt.Sprintf("B%s-M%02d", markDigits(mark), i+1),
			Diameter: mark,
			Position: model.PositionBottom,
			Type:     model.BarSpan,
			StartM:   startM,
			EndM:     endM,
			LengthM:  length,
			Quantity: 1,
		})
	}
	return bars
}

// SegmentBars places segment-specific reinforcement centered in the
// indicated span, with hook_type forced to 135 (spec §4.F.2).
func SegmentBars(cfg Config, mark string, position model.Position, spanIndexes []int, quantity int) []model.RebarDetail {
	var bars []model.RebarDetail
	for _, spanIdx := range spanIndexes {
		if spanIdx < 0 || spanIdx >= len(cfg.Geometry.Spans) {
			continue
		}
		span := cfg.Geometry.Spans[spanIdx]
		length := span.Len() * 0.9
		startM := span.StartM + span.Len()*0.05
		endM := startM + length
		for i := 0; i < quantity; i++ {
			bars = append(bars, model.RebarDetail{
				ID:       fmt.Sprintf("%s%s-SEG%d-%02d", positionPrefix(position), markDigits(mark), spanIdx+1, i+1),
				Diameter: mark,
				Position: position,
				Type:     model.BarSegment,
				StartM:   startM,
				EndM:     endM,
				LengthM:  length,
				Quantity: 1,
				HookType: model.Hook135,
				Notes:    []string{fmt.Sprintf("Refuerzo segmento %d", spanIdx+1)},
			})
		}
	}
	return bars
}

func positionPrefix(p model.Position) string {
	if p == model.PositionBottom {
		return "B"
	}
	return "T"
}
