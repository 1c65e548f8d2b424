// Package splicecoord globally shifts bottom-face splices so no bottom
// splice center falls within a minimum-distance window of any top splice
// center (spec §4.G, Splice Coordinator).
package splicecoord

import (
	"math"

	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/alexiusacademia/despacho/internal/zones"
)

// Epsilon mirrors the shared tolerance used across the detailing engine.
const Epsilon = 1e-3

const maxAdjustAttempts = 20

var offsetSteps = []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}

type placed struct {
	center float64
	length float64
}

// Coordinate adjusts the bottom bars' splices in place, referencing the top
// bars' splices and the forbidden zones, and returns the (possibly
// unchanged) top and bottom slices.
func Coordinate(topBars, bottomBars []model.RebarDetail, forbiddenZones []model.ForbiddenZone, totalLengthM float64) ([]model.RebarDetail, []model.RebarDetail) {
	var existing []placed
	for _, bar := range topBars {
		for _, s := range bar.Splices {
			existing = append(existing, placed{center: s.Center(), length: s.LengthM})
		}
	}

	for bi := range bottomBars {
		bar := &bottomBars[bi]
		adjustedAny := false
		for si := range bar.Splices {
			s := &bar.Splices[si]
			minDistance := 1.5 * math.Max(s.LengthM, maxLen(existing))
			conflict := false
			for _, e := range existing {
				if math.Abs(s.Center()-e.center) < minDistance {
					conflict = true
					break
				}
			}
			if !conflict {
				existing = append(existing, placed{center: s.Center(), length: s.LengthM})
				continue
			}

			originalCenter := s.Center()
			relocated := false
			for attempt := 1; attempt <= maxAdjustAttempts && !relocated; attempt++ {
				step := offsetSteps[(attempt-1)%len(offsetSteps)] * float64((attempt-1)/len(offsetSteps)+1)
				for _, sign := range []float64{1, -1} {
					candidate := originalCenter + sign*step
					half := s.LengthM / 2
					if candidate-half < half || candidate+half > totalLengthM-half {
						continue
					}
					window := model.Interval{StartM: candidate - half, EndM: candidate + half}
					if _, overlaps := zones.Overlaps(window, forbiddenZones, Epsilon); overlaps {
						continue
					}
					ok := true
					for _, e := range existing {
						spacing := 1.2 * math.Max(s.LengthM, e.length)
						if math.Abs(candidate-e.center) < spacing {
							ok = false
							break
						}
					}
					if !ok {
						continue
					}
					s.StartM = candidate - half
					s.EndM = candidate + half
					s.Adjusted = true
					s.OriginalCenterM = originalCenter
					existing = append(existing, placed{center: candidate, length: s.LengthM})
					relocated = true
					adjustedAny = true
					break
				}
			}
			if !relocated {
				// Best-effort: keep the original placement and mark it
				// adjusted, recording its original center; spec §4.G
				// documents this as the exception case.
				s.Adjusted = true
				s.OriginalCenterM = originalCenter
				existing = append(existing, placed{center: originalCenter, length: s.LengthM})
			}
		}
		if adjustedAny {
			bar.Notes = append(bar.Notes, "Empalmes coordinados")
		}
	}

	return topBars, bottomBars
}

func maxLen(existing []placed) float64 {
	m := 0.0
	for _, e := range existing {
		if e.length > m {
			m = e.length
		}
	}
	return m
}
