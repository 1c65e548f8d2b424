// Package continuity chooses which (up to 2) diameters of top/bottom bars
// must be continuous (spec §4.D, Continuous-Bar Selector).
package continuity

import (
	"sort"

	"github.com/alexiusacademia/despacho/internal/codetable"
	"github.com/alexiusacademia/despacho/internal/model"
)

// Selection is one side's (top or bottom) continuous-bar outcome.
type Selection struct {
	// Diameters is the chosen (≤2) continuous marks, largest first.
	Diameters []string
	// ContinuousCount maps mark -> continuous instance count (1 or 2).
	ContinuousCount map[string]int
	// CountByDiameter maps every mark present -> its total quantity,
	// selected or not.
	CountByDiameter map[string]int
}

func markRank(mark string) int {
	for i, m := range codetable.MarksByDiameterDesc {
		if m == mark {
			return i
		}
	}
	return len(codetable.MarksByDiameterDesc)
}

// Select forms a multiset of bar marks from groups and chooses the
// continuous set.
func Select(groups []model.BarGroup) Selection {
	countByDiameter := map[string]int{}
	for _, g := range groups {
		if g.Quantity > 0 {
			countByDiameter[g.Diameter] += g.Quantity
		}
	}

	distinct := make([]string, 0, len(countByDiameter))
	for mark := range countByDiameter {
		distinct = append(distinct, mark)
	}
	sort.Slice(distinct, func(i, j int) bool { return markRank(distinct[i]) < markRank(distinct[j]) })

	if len(distinct) > 2 {
		distinct = distinct[:2]
	}

	continuousCount := map[string]int{}
	for _, mark := range distinct {
		available := countByDiameter[mark]
		if available >= 2 {
			continuousCount[mark] = 2
		} else if available >= 1 {
			continuousCount[mark] = 1
		}
	}

	return Selection{
		Diameters:       distinct,
		ContinuousCount: continuousCount,
		CountByDiameter: countByDiameter,
	}
}
