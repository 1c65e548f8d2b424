// Package codetable holds the static NSR-10 Title C lookups used throughout
// the detailing engine: hook allowances, unit weights, base development
// lengths, and the f'c/fy/energy adjustment factors.
package codetable

import "github.com/alexiusacademia/despacho/internal/model"

// MarksByDiameterDesc lists every bar mark this engine knows, ordered from
// the largest numeric diameter to the smallest. The Continuous-Bar Selector
// uses this ordering directly.
var MarksByDiameterDesc = []string{
	"#18", "#14", "#11", "#10", "#9", "#8", "#7", "#6", "#5", "#4", "#3", "#2",
}

// hookLengths maps bar mark -> hook angle -> developed hook length in
// meters. Marks #9 and larger have no 135° entry (no stirrup-style 135°
// hook).
var hookLengths = map[string]map[model.HookType]float64{
	"#2":  {model.Hook90: 0.10, model.Hook180: 0.080, model.Hook135: 0.075},
	"#3":  {model.Hook90: 0.15, model.Hook180: 0.130, model.Hook135: 0.095},
	"#4":  {model.Hook90: 0.20, model.Hook180: 0.150, model.Hook135: 0.127},
	"#5":  {model.Hook90: 0.25, model.Hook180: 0.180, model.Hook135: 0.159},
	"#6":  {model.Hook90: 0.30, model.Hook180: 0.210, model.Hook135: 0.191},
	"#7":  {model.Hook90: 0.36, model.Hook180: 0.250, model.Hook135: 0.222},
	"#8":  {model.Hook90: 0.41, model.Hook180: 0.300, model.Hook135: 0.254},
	"#9":  {model.Hook90: 0.49, model.Hook180: 0.340},
	"#10": {model.Hook90: 0.54, model.Hook180: 0.400},
	"#11": {model.Hook90: 0.59, model.Hook180: 0.430},
	"#14": {model.Hook90: 0.80, model.Hook180: 0.445},
	"#18": {model.Hook90: 1.03, model.Hook180: 0.572},
}

// unitWeights is kg/m per bar mark, NSR-10 Annex C.
var unitWeights = map[string]float64{
	"#3": 0.56, "#4": 1.00, "#5": 1.55, "#6": 2.26,
	"#7": 3.04, "#8": 3.97, "#9": 5.06, "#10": 6.40,
	"#11": 7.91, "#14": 14.60, "#18": 23.70,
}

// baseDevelopmentLengths (m) are reference values at fy=420 MPa, f'c=21 MPa.
var baseDevelopmentLengths = map[string]float64{
	"#3": 0.30, "#4": 0.40, "#5": 0.50, "#6": 0.60,
	"#7": 0.70, "#8": 0.80, "#9": 0.90, "#10": 1.00,
	"#11": 1.10, "#14": 1.40, "#18": 1.80,
}

// fcFactors adjusts Ld0 for the concrete class.
var fcFactors = map[string]float64{
	"21 MPa (3000 psi)": 1.0,
	"24 MPa (3500 psi)": 0.92,
	"28 MPa (4000 psi)": 0.85,
	"32 MPa (4600 psi)": 0.80,
}

// fcColumnMap maps a concrete class to the strongest tabulated commercial
// lap-splice column; 32 MPa reuses the 28 MPa column, matching the
// original service (no separate 32 MPa lap column is tabulated).
var fcColumnMap = map[string]string{
	"21 MPa (3000 psi)": "fc_21_mpa_m",
	"24 MPa (3500 psi)": "fc_24_mpa_m",
	"28 MPa (4000 psi)": "fc_28_mpa_m",
	"32 MPa (4600 psi)": "fc_28_mpa_m",
}

// fyFactors adjusts Ld0 for the steel grade.
var fyFactors = map[string]float64{
	"420 MPa (Grado 60)": 1.0,
	"520 MPa (Grado 75)": 1.25,
}

// energyFactors multiplies development length into lap-splice length.
var energyFactors = map[model.EnergyClass]float64{
	model.EnergyDES: 1.3,
	model.EnergyDMO: 1.0,
	model.EnergyDMI: 1.0,
}

// MinEdgeCoverM is the absolute minimum edge cover the finisher enforces
// regardless of input cover.
const MinEdgeCoverM = 0.05

// Hook returns H(mark, angle); ok is false for undefined cells (e.g. #9
// at 135°) or unknown marks.
func Hook(mark string, angle model.HookType) (float64, bool) {
	lengths, found := hookLengths[mark]
	if !found {
		return 0, false
	}
	v, ok := lengths[angle]
	return v, ok
}

// UnitWeight returns W(mark) in kg/m, 0 if unknown.
func UnitWeight(mark string) float64 {
	return unitWeights[mark]
}

// BaseDevelopmentLength returns Ld0(mark) in meters, 0 if unknown.
func BaseDevelopmentLength(mark string) float64 {
	return baseDevelopmentLengths[mark]
}

// FcFactor returns f_fc(concreteClass), defaulting to 1.0 for unknown classes.
func FcFactor(concreteClass string) float64 {
	if f, ok := fcFactors[concreteClass]; ok {
		return f
	}
	return 1.0
}

// FyFactor returns f_fy(steelGrade), defaulting to 1.0 for unknown grades.
func FyFactor(steelGrade string) float64 {
	if f, ok := fyFactors[steelGrade]; ok {
		return f
	}
	return 1.0
}

// EnergyFactor returns f_E(class), defaulting to 1.0.
func EnergyFactor(class model.EnergyClass) float64 {
	if f, ok := energyFactors[class]; ok {
		return f
	}
	return 1.0
}

// FcColumn maps concreteClass to its commercial lap-splice table column
// key; ok is false when the class has no tabulated column.
func FcColumn(concreteClass string) (string, bool) {
	col, ok := fcColumnMap[concreteClass]
	return col, ok
}

// LapSpliceLookup is an optional commercial lap-splice override table:
// mark -> fc column key -> length in meters. A nil/empty table means no
// overrides are configured and every lap length is computed from Ld·f_E.
type LapSpliceLookup map[string]map[string]float64

// Lookup returns the override length for (mark, fcColumn), if present.
func (l LapSpliceLookup) Lookup(mark, fcColumn string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	byColumn, ok := l[mark]
	if !ok {
		return 0, false
	}
	v, ok := byColumn[fcColumn]
	return v, ok
}

// KnownMark reports whether mark is a bar mark this code table recognizes.
func KnownMark(mark string) bool {
	_, ok := unitWeights[mark]
	return ok
}
