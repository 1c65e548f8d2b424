// Package zones computes ordered, labeled forbidden-splice intervals:
// inside supports, and max(2·d, w/2) before/after each internal face
// (spec §4.C, Forbidden Zone Calculator).
package zones

import (
	"sort"

	"github.com/alexiusacademia/despacho/internal/model"
)

// EffectiveDepthPreprocessing computes the preprocessing-stage effective
// depth d = max(0.30, (avg_height_cm - 6)/100) used by the zone calculator.
// This is intentionally a different quantity from the Stirrup Planner's
// per-span effective depth (§9 Design Notes): the two are kept separate.
func EffectiveDepthPreprocessing(spans []model.SpanInterval) float64 {
	if len(spans) == 0 {
		return 0.30
	}
	sum := 0.0
	for _, s := range spans {
		sum += s.HeightCM
	}
	avg := sum / float64(len(spans))
	d := (avg - 6) / 100
	if d < 0.30 {
		return 0.30
	}
	return d
}

// Calculate produces the ordered forbidden-zone list for geo.
func Calculate(geo model.Geometry) []model.ForbiddenZone {
	d := EffectiveDepthPreprocessing(geo.Spans)
	totalSupports := len(geo.Faces)

	var zones []model.ForbiddenZone

	for _, face := range geo.Faces {
		supportStart := face.XM
		supportEnd := supportStart + face.WidthM
		halfWidth := face.WidthM / 2
		prohibitedDistance := max2(2*d, halfWidth)
		isFirst := face.SupportIndex == 0
		isLast := face.SupportIndex == totalSupports-1

		if supportEnd-supportStart > 0 {
			zones = append(zones, model.ForbiddenZone{
				StartM: supportStart, EndM: supportEnd,
				SupportIndex: face.SupportIndex, Kind: model.ZoneInsideSupport,
			})
		}

		if !isLast {
			rightLimit := geo.TotalLengthM
			for _, span := range geo.Spans {
				if absF(span.StartM-supportEnd) < 0.01 {
					candidate := span.StartM + span.Len()/2
					if candidate < rightLimit {
						rightLimit = candidate
					}
					break
				}
			}
			zoneStart := supportEnd
			zoneEnd := min2(supportEnd+prohibitedDistance, rightLimit)
			if zoneEnd > zoneStart {
				zones = append(zones, model.ForbiddenZone{
					StartM: zoneStart, EndM: zoneEnd,
					SupportIndex: face.SupportIndex, Kind: model.ZoneAfterFace,
				})
			}
		}

		if !isFirst {
			leftLimit := 0.0
			for _, span := range geo.Spans {
				if absF(span.EndM-supportStart) < 0.01 {
					candidate := span.EndM - span.Len()/2
					if candidate > leftLimit {
						leftLimit = candidate
					}
					break
				}
			}
			zoneStart := max2(supportStart-prohibitedDistance, leftLimit)
			zoneEnd := supportStart
			if zoneStart < zoneEnd {
				zones = append(zones, model.ForbiddenZone{
					StartM: zoneStart, EndM: zoneEnd,
					SupportIndex: face.SupportIndex, Kind: model.ZoneBeforeFace,
				})
			}
		}
	}

	sort.Slice(zones, func(i, j int) bool { return zones[i].StartM < zones[j].StartM })
	return zones
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absF(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

// Overlaps reports whether iv overlaps any zone in zones, within tolerance
// eps; it returns the first overlapping zone if any.
func Overlaps(iv model.Interval, zs []model.ForbiddenZone, eps float64) (model.ForbiddenZone, bool) {
	for _, z := range zs {
		if iv.Overlaps(z.Interval(), eps) {
			return z, true
		}
	}
	return model.ForbiddenZone{}, false
}
