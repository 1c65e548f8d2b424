// Package stirrups classifies every sub-interval of the beam as confined or
// unconfined, picks spacing d/4 or d/2 per zone, and counts stirrups per
// segment (spec §4.I, Stirrup Planner).
package stirrups

import (
	"sort"

	"github.com/alexiusacademia/despacho/internal/model"
)

// DefaultDiameter is the stirrup bar mark used when the caller does not
// override it (original service's DEFAULT_STIRRUP_DIAMETER).
const DefaultDiameter = "#3"

// innerClearanceCM is the constant inner clearance subtracted from the
// section height beyond cover (original service's _INNER_CLEARANCE_CM).
const innerClearanceCM = 2.0

// EffectiveDepth returns d (m) = (height - cover - 2cm)/100, clamped at 0.
// This is a distinct quantity from the preprocessing effective depth used
// by the Forbidden Zone Calculator (spec §9 Design Notes).
func EffectiveDepth(heightCM, coverCM float64) float64 {
	h := max2(heightCM, 0)
	c := max2(coverCM, 0)
	d := max2(h-c-innerClearanceCM, 0)
	return d / 100.0
}

// SpacingForZone returns d/4 for confined zones, d/2 for unconfined.
func SpacingForZone(effectiveDepthM float64, zoneType model.StirrupZoneKind) float64 {
	factor := 0.5
	if zoneType == model.ZoneConfined {
		factor = 0.25
	}
	return max2(0, effectiveDepthM*factor)
}

func mergeSegments(segments []model.Interval) []model.Interval {
	sanitized := make([]model.Interval, 0, len(segments))
	for _, s := range segments {
		if s.EndM > s.StartM {
			sanitized = append(sanitized, s)
		}
	}
	if len(sanitized) == 0 {
		return nil
	}
	sort.Slice(sanitized, func(i, j int) bool { return sanitized[i].StartM < sanitized[j].StartM })

	var merged []model.Interval
	current := sanitized[0]
	for _, s := range sanitized[1:] {
		if s.StartM <= current.EndM {
			if s.EndM > current.EndM {
				current.EndM = s.EndM
			}
			continue
		}
		merged = append(merged, current)
		current = s
	}
	merged = append(merged, current)
	return merged
}

// DeriveConfinedSegments merges every non-inside-support forbidden zone with
// every lap-splice interval into disjoint maximal intervals.
func DeriveConfinedSegments(forbiddenZones []model.ForbiddenZone, lapSplices []model.Interval) []model.Interval {
	var segments []model.Interval
	for _, z := range forbiddenZones {
		if z.Kind == model.ZoneInsideSupport {
			continue
		}
		segments = append(segments, z.Interval())
	}
	segments = append(segments, lapSplices...)
	return mergeSegments(segments)
}

// DeriveUnconfinedSegments returns the complement of confinedSegments
// within [0, totalLengthM].
func DeriveUnconfinedSegments(totalLengthM float64, confinedSegments []model.Interval) []model.Interval {
	if totalLengthM <= 0 {
		return nil
	}
	merged := mergeSegments(confinedSegments)
	var segments []model.Interval
	cursor := 0.0
	for _, s := range merged {
		if s.StartM > cursor {
			segments = append(segments, model.Interval{StartM: cursor, EndM: s.StartM})
		}
		if s.EndM > cursor {
			cursor = s.EndM
		}
	}
	if cursor < totalLengthM {
		segments = append(segments, model.Interval{StartM: cursor, EndM: totalLengthM})
	}
	return segments
}

// ExtractSpliceSegments collects every splice interval from a bar list,
// merging overlaps.
func ExtractSpliceSegments(bars []model.RebarDetail) []model.Interval {
	var segments []model.Interval
	for _, bar := range bars {
		for _, s := range bar.Splices {
			if s.EndM > s.StartM {
				segments = append(segments, model.Interval{StartM: s.StartM, EndM: s.EndM})
			}
		}
	}
	return mergeSegments(segments)
}

// BuildSummary assigns confined/unconfined segments to spans and produces
// the full stirrup design summary, following
// detailing_service.py:_assign_segments_to_spans/_build_stirrups_summary.
func BuildSummary(geo model.Geometry, forbiddenZones []model.ForbiddenZone, topBars, bottomBars []model.RebarDetail, coverCM float64, additionalBranchesTotal int) model.StirrupDesignSummary {
	lapSplices := append(ExtractSpliceSegments(topBars), ExtractSpliceSegments(bottomBars)...)
	confined := DeriveConfinedSegments(forbiddenZones, mergeSegments(lapSplices))
	unconfined := DeriveUnconfinedSegments(geo.TotalLengthM, confined)

	spanSpecs := make([]model.StirrupSpanSpec, 0, len(geo.Spans))
	for _, span := range geo.Spans {
		d := EffectiveDepth(span.HeightCM, coverCM)
		spanSpecs = append(spanSpecs, model.StirrupSpanSpec{
			SpanIndex:          span.Index,
			BaseCM:             span.BaseCM,
			HeightCM:           span.HeightCM,
			CoverCM:            coverCM,
			StirrupDiameter:    DefaultDiameter,
			EffectiveDepthM:    d,
			SpacingConfinedM:   SpacingForZone(d, model.ZoneConfined),
			SpacingUnconfinedM: SpacingForZone(d, model.ZoneUnconfined),
		})
	}

	var segments []model.StirrupSegment
	segments = append(segments, assignToSpans(confined, model.ZoneConfined, geo.Spans, spanSpecs)...)
	segments = append(segments, assignToSpans(unconfined, model.ZoneUnconfined, geo.Spans, spanSpecs)...)
	sort.Slice(segments, func(i, j int) bool { return segments[i].StartM < segments[j].StartM })

	return model.StirrupDesignSummary{
		SpanSpecs:               spanSpecs,
		Segments:                segments,
		AdditionalBranchesTotal: additionalBranchesTotal,
	}
}

func assignToSpans(intervals []model.Interval, zoneType model.StirrupZoneKind, spans []model.SpanInterval, specs []model.StirrupSpanSpec) []model.StirrupSegment {
	specByIndex := make(map[int]model.StirrupSpanSpec, len(specs))
	for _, spec := range specs {
		specByIndex[spec.SpanIndex] = spec
	}

	var out []model.StirrupSegment
	for _, interval := range intervals {
		for _, span := range spans {
			overlapStart := maxF(interval.StartM, span.StartM)
			overlapEnd := minF(interval.EndM, span.EndM)
			if overlapEnd-overlapStart <= 0 {
				continue
			}
			spec := specByIndex[span.Index]
			spacing := spec.SpacingUnconfinedM
			if zoneType == model.ZoneConfined {
				spacing = spec.SpacingConfinedM
			}
			count := 1
			if spacing > 0 {
				count = int((overlapEnd-overlapStart)/spacing) + 1
				if count < 1 {
					count = 1
				}
			}
			out = append(out, model.StirrupSegment{
				StartM: overlapStart, EndM: overlapEnd,
				ZoneType: zoneType, SpacingM: spacing, EstimatedCount: count,
			})
		}
	}
	return out
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 { return max2(a, b) }
func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
