// Package barlayout emits bars per face (top/bottom) and diameter:
// continuous bars with a splice plan, and non-continuous bars placed as
// support bars, support-anchored bars, mid-span bars, or segment-specific
// bars (spec §4.F, Bar Layout Planner).
package barlayout

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/alexiusacademia/despacho/internal/zones"
)

// Epsilon is the shared floating-point tolerance (meters) used for interval
// containment and endpoint equality checks (spec §9).
const Epsilon = 1e-3

// maxZoneRetries bounds the zone-avoidance retry loop per splice (spec §9:
// "≤ 20 for adjustments").
const maxZoneRetries = 20

// Config bundles the shared inputs every bar-placement routine needs.
type Config struct {
	Geometry model.Geometry
	Zones    []model.ForbiddenZone
	MaxBarLengthM float64
	HookType model.HookType
}

func splicesNeeded(totalLengthM, maxBarLengthM float64) int {
	if maxBarLengthM <= 0 {
		return 0
	}
	n := int(math.Ceil(totalLengthM / maxBarLengthM))
	if n < 1 {
		n = 1
	}
	return n - 1
}

// ContinuousTop builds one continuous top bar instance, splitting its lap
// splices evenly and retracting any splice window that overlaps a forbidden
// zone (spec §4.F.1, "Top side").
func ContinuousTop(cfg Config, mark string, instanceIndex int, spliceLengthM float64) model.RebarDetail {
	total := cfg.Geometry.TotalLengthM
	needed := splicesNeeded(total, cfg.MaxBarLengthM)

	var centers []float64
	if needed > 0 {
		n := needed + 1
		for k := 1; k <= needed; k++ {
			center := float64(k) * total / float64(n)
			center = retractFromZones(center, spliceLengthM, cfg.Zones, 0, total)
			centers = append(centers, center)
		}
	}

	return buildContinuousBar(mark, instanceIndex, model.PositionTop, total, spliceLengthM, centers)
}

// ContinuousBottom builds one continuous bottom bar instance using the
// positional splice-ratio plan, rotating by instance index, with a fallback
// to the offset method when more than two splices are required (spec
// §4.F.1, "Bottom side").
func ContinuousBottom(cfg Config, mark string, instanceIndex int, spliceLengthM float64) model.RebarDetail {
	total := cfg.Geometry.TotalLengthM
	needed := splicesNeeded(total, cfg.MaxBarLengthM)

	var centers []float64
	switch {
	case needed <= 0:
		// no splice required
	case needed <= 2:
		ratios := bottomSplicePlanRatios(instanceIndex)
		for i := 0; i < needed; i++ {
			center := ratios[i] * total
			center = retractFromZones(center, spliceLengthM, cfg.Zones, 0, total)
			centers = append(centers, center)
		}
		sort.Float64s(centers)
	default:
		offset := 0.08 + 0.04*float64(instanceIndex%3)
		n := needed + 1
		for k := 1; k <= needed; k++ {
			center := (float64(k)/float64(n) + offset*float64(k)/float64(n)) * total
			if center > total {
				center = total
			}
			center = retractFromZones(center, spliceLengthM, cfg.Zones, 0, total)
			centers = append(centers, center)
		}
		sort.Float64s(centers)
	}

	return buildContinuousBar(mark, instanceIndex, model.PositionBottom, total, spliceLengthM, centers)
}

// bottomSplicePlanRatios returns the two candidate splice-center ratios for
// a given continuous-bar instance, rotating by instance%3 (spec §4.F.1).
func bottomSplicePlanRatios(instanceIndex int) []float64 {
	switch instanceIndex % 3 {
	case 0:
		return []float64{0.33, 0.67}
	case 1:
		return []float64{0.40, 0.60}
	default:
		return []float64{0.25, 0.50}
	}
}

// retractFromZones nudges center so that its splice window
// [center-length/2, center+length/2] avoids every forbidden zone, retracting
// before the earliest overlapping zone first and falling back to just after
// it, bounded to maxZoneRetries attempts.
func retractFromZones(center, length float64, zs []model.ForbiddenZone, lo, hi float64) float64 {
	half := length / 2
	for attempt := 0; attempt < maxZoneRetries; attempt++ {
		window := model.Interval{StartM: center - half, EndM: center + half}
		z, overlaps := zones.Overlaps(window, zs, Epsilon)
		if !overlaps {
			break
		}
		before := z.StartM - half - Epsilon
		after := z.EndM + half + Epsilon
		switch {
		case before >= lo+half:
			center = before
		case after <= hi-half:
			center = after
		default:
			// No room on either side within bounds; keep best-effort value
			// and stop retrying (spec §7 InfeasibleSpliceLocation).
			return center
		}
	}
	if center < lo+half {
		center = lo + half
	}
	if center > hi-half {
		center = hi - half
	}
	return center
}

func buildContinuousBar(mark string, instanceIndex int, position model.Position, total, spliceLengthM float64, centers []float64) model.RebarDetail {
	prefix := "T"
	if position == model.PositionBottom {
		prefix = "B"
	}
	markDigits := mark
	if len(mark) > 0 && mark[0] == '#' {
		markDigits = mark[1:]
	}

	var splices []model.Splice
	for _, c := range centers {
		splices = append(splices, model.Splice{
			StartM:  c - spliceLengthM/2,
			EndM:    c + spliceLengthM/2,
			LengthM: spliceLengthM,
			Type:    "lap",
		})
	}

	return model.RebarDetail{
		ID:       fmt.Sprintf("%s%s-C%02d", prefix, markDigits, instanceIndex+1),
		Diameter: mark,
		Position: position,
		Type:     model.BarContinuous,
		StartM:   0,
		EndM:     total,
		LengthM:  total,
		Quantity: 1,
		Splices:  splices,
	}
}
