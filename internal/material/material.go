// Package material groups pieces by diameter and greedily packs them into
// commercial stock lengths (first-fit-decreasing), reporting total length,
// pieces, weight, and waste (spec §4.J, Material List + Cutting Stock).
package material

import (
	"sort"

	"github.com/alexiusacademia/despacho/internal/codetable"
	"github.com/alexiusacademia/despacho/internal/model"
)

// Generate builds the material list from the top and bottom bar lists.
func Generate(topBars, bottomBars []model.RebarDetail, maxBarLengthM float64) []model.MaterialItem {
	piecesByDiameter := map[string][]float64{}
	var order []string

	collect := func(bars []model.RebarDetail) {
		for _, bar := range bars {
			qty := bar.Quantity
			if qty <= 0 {
				qty = 1
			}
			if _, seen := piecesByDiameter[bar.Diameter]; !seen {
				order = append(order, bar.Diameter)
			}
			for i := 0; i < qty; i++ {
				piecesByDiameter[bar.Diameter] = append(piecesByDiameter[bar.Diameter], bar.LengthM)
			}
		}
	}
	collect(topBars)
	collect(bottomBars)

	items := make([]model.MaterialItem, 0, len(order))
	for _, diameter := range order {
		items = append(items, buildItem(diameter, piecesByDiameter[diameter], maxBarLengthM))
	}
	return items
}

func buildItem(diameter string, pieces []float64, maxBarLengthM float64) model.MaterialItem {
	sorted := append([]float64(nil), pieces...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var plans []model.CutPlan
	remaining := sorted
	for len(remaining) > 0 {
		if remaining[0] > maxBarLengthM {
			// Starvation fallback: a single-piece stock sized to the
			// longest piece avoids dropping material (spec §4.J).
			capacity := remaining[0]
			if maxBarLengthM > capacity {
				capacity = maxBarLengthM
			}
			plans = append(plans, model.CutPlan{
				CommercialLengthM: capacity,
				CutLengthsM:       []float64{remaining[0]},
				NumBars:           1,
				WasteM:            capacity - remaining[0],
				EfficiencyPct:     100.0 * remaining[0] / capacity,
			})
			remaining = remaining[1:]
			continue
		}

		capacity := maxBarLengthM
		used := 0.0
		var cuts []float64
		fitted := make([]bool, len(remaining))
		for i, p := range remaining {
			if used+p <= capacity+1e-9 {
				cuts = append(cuts, p)
				used += p
				fitted[i] = true
			}
		}
		var left []float64
		for i, p := range remaining {
			if !fitted[i] {
				left = append(left, p)
			}
		}
		waste := capacity - used
		efficiency := 100.0
		if capacity > 0 {
			efficiency = 100.0 * used / capacity
		}
		plans = append(plans, model.CutPlan{
			CommercialLengthM: capacity,
			CutLengthsM:       cuts,
			NumBars:           1,
			WasteM:            waste,
			EfficiencyPct:     efficiency,
		})
		remaining = left
	}

	totalLength := 0.0
	for _, p := range pieces {
		totalLength += p
	}

	return model.MaterialItem{
		Diameter:          diameter,
		TotalLengthM:      totalLength,
		Pieces:            len(pieces),
		WeightKG:          totalLength * codetable.UnitWeight(diameter),
		CommercialLengths: plans,
		WastePct:          wastePct(plans, totalLength),
	}
}

func wastePct(plans []model.CutPlan, totalLength float64) float64 {
	sum := 0.0
	for _, p := range plans {
		sum += p.CommercialLengthM
	}
	if sum == 0 {
		return 0
	}
	return (sum - totalLength) / sum * 100.0
}
