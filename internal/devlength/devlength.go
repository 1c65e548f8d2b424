// Package devlength computes per-diameter development length and
// lap-splice length, honoring f'c/fy/energy factors and the commercial lap
// table (spec §4.E, Development/Splice Length Resolver).
package devlength

import (
	"github.com/alexiusacademia/despacho/internal/codetable"
	"github.com/alexiusacademia/despacho/internal/model"
)

// Lengths is one bar mark's resolved development/splice lengths in meters.
type Lengths struct {
	DevelopmentM float64
	SpliceM      float64
}

// Resolve computes Lengths for every known bar mark given the beam's
// material parameters and an optional commercial lap-splice override table.
func Resolve(material model.MaterialParams, lap codetable.LapSpliceLookup) map[string]Lengths {
	fcFactor := codetable.FcFactor(material.ConcreteStrength)
	fyFactor := codetable.FyFactor(material.SteelGrade)
	energyFactor := codetable.EnergyFactor(material.EnergyClass)
	fcColumn, hasColumn := codetable.FcColumn(material.ConcreteStrength)

	out := make(map[string]Lengths, len(codetable.MarksByDiameterDesc))
	for _, mark := range codetable.MarksByDiameterDesc {
		base := codetable.BaseDevelopmentLength(mark)
		if base == 0 {
			continue
		}
		ld := base * fcFactor * fyFactor
		splice := ld * energyFactor
		if hasColumn {
			if override, ok := lap.Lookup(mark, fcColumn); ok && override > 0 {
				splice = override
			}
		}
		if material.LapSpliceLengthMinM > 0 && splice < material.LapSpliceLengthMinM {
			splice = material.LapSpliceLengthMinM
		}
		out[mark] = Lengths{DevelopmentM: ld, SpliceM: splice}
	}
	return out
}
