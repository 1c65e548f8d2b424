// Package finishing clamps bar endpoints to edge cover, adds hook
// allowances where an endpoint touches the beam edge, and shrinks straight
// length if the hooked total exceeds commercial stock (spec §4.H, Cover &
// Hook Finisher).
package finishing

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/codetable"
	"github.com/alexiusacademia/despacho/internal/model"
)

const tolerance = 1e-3

// Apply adjusts bars in place for the given beam total length, cover, and
// commercial max bar length, returning any InfeasibleSegmentation warnings
// it had to raise.
func Apply(bars []model.RebarDetail, totalLengthM, coverCM, maxBarLengthM float64, hookType model.HookType) []string {
	if len(bars) == 0 {
		return nil
	}
	cover := max2(codetable.MinEdgeCoverM, coverCM/100.0)
	maxEnd := max2(totalLengthM-cover, cover)
	maxLength := max2(maxBarLengthM, 0)

	var warnings []string
	for i := range bars {
		bar := &bars[i]
		originalStart := bar.StartM
		originalEnd := bar.EndM

		start := max2(cover, min2(originalStart, maxEnd))
		end := max2(cover, min2(originalEnd, maxEnd))
		if end < start {
			start, end = end, start
		}

		effectiveHook := bar.HookType
		if effectiveHook == "" {
			effectiveHook = hookType
		}

		startHook := 0.0
		if originalStart <= cover+tolerance {
			if h, ok := codetable.Hook(bar.Diameter, effectiveHook); ok {
				startHook = h
			}
		}
		endHook := 0.0
		if originalEnd >= totalLengthM-cover-tolerance {
			if h, ok := codetable.Hook(bar.Diameter, effectiveHook); ok {
				endHook = h
			}
		}

		straight := end - start
		total := straight + startHook + endHook
		if total > maxLength && maxLength > 0 {
			allowedStraight := maxLength - (startHook + endHook)
			if allowedStraight > 0 {
				end = start + allowedStraight
				straight = allowedStraight
				total = straight + startHook + endHook
			}
			if total > maxLength {
				total = maxLength
				warnings = append(warnings, fmt.Sprintf(
					"%s: longitud con ganchos (%.2f m) supera la barra comercial (%.2f m); se limita a %.2f m",
					bar.ID, straight+startHook+endHook, maxLength, maxLength))
			}
		}

		bar.StartM = start
		bar.EndM = end
		bar.LengthM = total
	}
	return warnings
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
