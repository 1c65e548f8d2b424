// Package validate emits ordered, human-readable warnings for NSR-10 Title C
// violations and computes the optimization score (spec §4.K, Validator).
package validate

import (
	"fmt"

	"github.com/alexiusacademia/despacho/internal/continuity"
	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/alexiusacademia/despacho/internal/zones"
)

const eps = 1e-3

// Result bundles the validator's output.
type Result struct {
	Warnings          []string
	ValidationPassed  bool
	OptimizationScore int
}

// Run evaluates every validation rule against the detailing outputs so far.
func Run(
	topBars, bottomBars []model.RebarDetail,
	topContinuous, bottomContinuous continuity.Selection,
	forbiddenZones []model.ForbiddenZone,
	material []model.MaterialItem,
	energyClass model.EnergyClass,
) Result {
	var warnings []string

	topContinuousCount := countContinuous(topBars)
	bottomContinuousCount := countContinuous(bottomBars)
	if topContinuousCount < 2 {
		warnings = append(warnings, fmt.Sprintf("Menos de 2 barras continuas superiores (hay %d)", topContinuousCount))
	}
	if bottomContinuousCount < 2 {
		warnings = append(warnings, fmt.Sprintf("Menos de 2 barras continuas inferiores (hay %d)", bottomContinuousCount))
	}

	allBars := append(append([]model.RebarDetail{}, topBars...), bottomBars...)
	for _, bar := range allBars {
		for _, s := range bar.Splices {
			if z, overlaps := zones.Overlaps(model.Interval{StartM: s.StartM, EndM: s.EndM}, forbiddenZones, eps); overlaps {
				warnings = append(warnings, fmt.Sprintf(
					"Empalme de %s (%s) se superpone con zona prohibida %s [%.2f, %.2f]",
					bar.ID, bar.Diameter, z.Kind, z.StartM, z.EndM))
				break
			}
		}
		if bar.DevelopmentLengthM > 0 && bar.LengthM < bar.DevelopmentLengthM {
			warnings = append(warnings, fmt.Sprintf(
				"%s: longitud %.2f m es menor a la longitud de desarrollo %.2f m",
				bar.ID, bar.LengthM, bar.DevelopmentLengthM))
		}
		if energyClass == model.EnergyDES && bar.Type == model.BarContinuous {
			if bar.HookType != model.Hook135 && bar.HookType != model.Hook180 {
				warnings = append(warnings, fmt.Sprintf(
					"%s: clase DES exige gancho 135°/180° en barras continuas (tiene %s)", bar.ID, bar.HookType))
			}
		}
	}

	if len(topBars) == 0 {
		warnings = append(warnings, "No se generaron barras superiores")
	}
	if len(bottomBars) == 0 {
		warnings = append(warnings, "No se generaron barras inferiores")
	}

	avgWaste := averageWaste(material)
	score := 100
	score -= 5 * len(warnings)
	switch {
	case avgWaste > 15:
		score -= 20
	case avgWaste > 10:
		score -= 10
	case avgWaste > 5:
		score -= 5
	}
	if topContinuousCount >= 2 && bottomContinuousCount >= 2 {
		score += 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Warnings:          warnings,
		ValidationPassed:  len(warnings) == 0,
		OptimizationScore: score,
	}
}

func countContinuous(bars []model.RebarDetail) int {
	count := 0
	for _, b := range bars {
		if b.Type == model.BarContinuous {
			count++
		}
	}
	return count
}

func averageWaste(items []model.MaterialItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range items {
		sum += it.WastePct
	}
	return sum / float64(len(items))
}
