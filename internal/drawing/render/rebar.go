package render

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
	"github.com/alexiusacademia/despacho/internal/model"
)

const laneTolerance = 1e-3

// RebarDrawer lane-packs each face's bars so none overlap horizontally on
// the same lane, after coalescing geometrically identical bars into one
// labeled segment (spec §4.L.3, grounded on rebar_drawer.py).
type RebarDrawer struct {
	TopLineOffsetMM    float64
	BottomLineOffsetMM float64
	LapSeparationMM    float64
}

func NewRebarDrawer() RebarDrawer {
	return RebarDrawer{TopLineOffsetMM: 300.0, BottomLineOffsetMM: 300.0, LapSeparationMM: 90.0}
}

type preparedSegment struct {
	diameter string
	length   float64
	hook     model.HookType
	startX   float64
	endX     float64
	quantity int
}

func (r RebarDrawer) Draw(doc *domain.Document, ctx Context) {
	result := ctx.Payload.DetailingResult
	if len(result.TopBars) == 0 && len(result.BottomBars) == 0 {
		return
	}

	layer := ctx.Layer("rebar_main")
	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("labels", "")
	laneSpacing := r.laneSpacing(ctx)

	topSegments := r.prepareSegments(result.TopBars, ctx)
	bottomSegments := r.prepareSegments(result.BottomBars, ctx)

	r.drawGroup(doc, topSegments, r.baseLineY(ctx, true), -1.0, laneSpacing, layer, textLayer, textStyle.Name, ctx.TextHeightMM, 12.0*ctx.VerticalScale)
	r.drawGroup(doc, bottomSegments, r.baseLineY(ctx, false), 1.0, laneSpacing, layer, textLayer, textStyle.Name, ctx.TextHeightMM, -18.0*ctx.VerticalScale)
}

func (r RebarDrawer) prepareSegments(bars []model.RebarDetail, ctx Context) []preparedSegment {
	if len(bars) == 0 {
		return nil
	}
	type key struct {
		diameter string
		startM   float64
		endM     float64
		lengthM  float64
		hook     model.HookType
	}
	grouped := map[key]*preparedSegment{}
	order := []key{}

	for _, bar := range bars {
		startX := ctx.Origin.X + ctx.ToMM(bar.StartM)
		endX := ctx.Origin.X + ctx.ToMM(bar.EndM)
		if endX < startX {
			startX, endX = endX, startX
		}
		quantity := bar.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		k := key{
			diameter: bar.Diameter,
			startM:   roundTo4(bar.StartM),
			endM:     roundTo4(bar.EndM),
			lengthM:  roundTo4(bar.LengthM),
			hook:     bar.HookType,
		}
		if existing, ok := grouped[k]; ok {
			existing.quantity += quantity
			continue
		}
		grouped[k] = &preparedSegment{diameter: bar.Diameter, length: bar.LengthM, hook: bar.HookType, startX: startX, endX: endX, quantity: quantity}
		order = append(order, k)
	}

	segments := make([]preparedSegment, 0, len(order))
	for _, k := range order {
		segments = append(segments, *grouped[k])
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].startX != segments[j].startX {
			return segments[i].startX < segments[j].startX
		}
		return segments[i].endX < segments[j].endX
	})
	return segments
}

func roundTo4(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}

func (r RebarDrawer) drawGroup(doc *domain.Document, segments []preparedSegment, baseY, direction, laneSpacing float64, layer, textLayer, styleName string, textHeightMM, textOffset float64) {
	if len(segments) == 0 {
		return
	}
	lanes := assignLanes(segments)
	for i, segment := range segments {
		y := baseY + direction*laneSpacing*float64(lanes[i])
		doc.Add(domain.NewLine(layer, domain.Point2D{X: segment.startX, Y: y}, domain.Point2D{X: segment.endX, Y: y}, 0))
		label := fmt.Sprintf("%dΦ%s L=%.2fm", segment.quantity, segment.diameter, segment.length)
		doc.Add(domain.NewText(textLayer, label, domain.Point2D{X: segment.startX, Y: y + textOffset}, textHeightMM, styleName))
	}
}

// assignLanes implements the lane-packing algorithm of spec §4.L.3: the
// smallest-index lane whose end lies at or before the segment's start
// (within laneTolerance) is reused; otherwise a new lane opens.
func assignLanes(segments []preparedSegment) []int {
	lanes := make([]int, len(segments))
	laneEnds := []float64{}
	for i, seg := range segments {
		assigned := -1
		for idx, end := range laneEnds {
			if seg.startX >= end-laneTolerance {
				assigned = idx
				laneEnds[idx] = seg.endX
				break
			}
		}
		if assigned == -1 {
			laneEnds = append(laneEnds, seg.endX)
			assigned = len(laneEnds) - 1
		}
		lanes[i] = assigned
	}
	return lanes
}

func (r RebarDrawer) laneSpacing(ctx Context) float64 {
	spacing := r.LapSeparationMM * maxF(ctx.VerticalScale, 1.0)
	return maxF(spacing, 1.0)
}

func (r RebarDrawer) baseLineY(ctx Context, top bool) float64 {
	offsetMM := r.BottomLineOffsetMM
	if top {
		offsetMM = r.TopLineOffsetMM
	}
	offsetMM *= maxF(ctx.VerticalScale, 1.0)
	if top {
		return ctx.Origin.Y + ctx.BeamHeightMM - offsetMM
	}
	return ctx.Origin.Y + offsetMM
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
