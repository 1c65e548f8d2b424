// Package geometry holds the coordinate-space/unit conversion helpers
// shared by every renderer (spec §4.L, grounded on the original service's
// drawing/geometry.py).
package geometry

import (
	"math"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// DefaultToleranceM mirrors the engine-wide tolerance used for drawing-space
// containment checks.
const DefaultToleranceM = 1e-3

// DefaultBarStackGapMM is the default vertical gap between stacked lanes
// when no template override applies.
const DefaultBarStackGapMM = 12.0

// ToDrawingUnits converts a meter value into the document's scaled and
// rounded drawing units.
func ToDrawingUnits(valueM float64, units domain.Units) float64 {
	scaled := valueM * units.ScaleFactor
	return roundTo(scaled, units.Precision)
}

// CmToDrawingUnits converts a centimeter value into drawing units.
func CmToDrawingUnits(valueCM float64, units domain.Units) float64 {
	return ToDrawingUnits(valueCM/100.0, units)
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Offset translates p by (dx, dy).
func Offset(p domain.Point2D, dx, dy float64) domain.Point2D {
	return domain.Point2D{X: p.X + dx, Y: p.Y + dy}
}

// Rectangle returns a closed 5-point loop (last point repeats the first)
// with origin at its lower-left corner.
func Rectangle(origin domain.Point2D, width, height float64) []domain.Point2D {
	return []domain.Point2D{
		origin,
		{X: origin.X + width, Y: origin.Y},
		{X: origin.X + width, Y: origin.Y + height},
		{X: origin.X, Y: origin.Y + height},
		origin,
	}
}

// ChainPoints concatenates point slices into a single polyline vertex chain.
func ChainPoints(chains ...[]domain.Point2D) []domain.Point2D {
	var out []domain.Point2D
	for _, c := range chains {
		out = append(out, c...)
	}
	return out
}

// Midpoint returns the midpoint between a and b.
func Midpoint(a, b domain.Point2D) domain.Point2D {
	return domain.Point2D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// CoordinateSpace converts meter-space values into the document's drawing
// units and supports translation by an origin offset.
type CoordinateSpace struct {
	Units  domain.Units
	Origin domain.Point2D
}

// ToM converts a drawing-unit value back to meters.
func (c CoordinateSpace) ToM(valueUnits float64) float64 {
	if c.Units.ScaleFactor == 0 {
		return 0
	}
	return valueUnits / c.Units.ScaleFactor
}

// FromM converts a meter value into drawing units.
func (c CoordinateSpace) FromM(valueM float64) float64 {
	return ToDrawingUnits(valueM, c.Units)
}

// FromCM converts a centimeter value into drawing units.
func (c CoordinateSpace) FromCM(valueCM float64) float64 {
	return CmToDrawingUnits(valueCM, c.Units)
}

// PointFromM converts a meter-space (x, y) pair into an origin-translated
// drawing-unit point.
func (c CoordinateSpace) PointFromM(xM, yM float64) domain.Point2D {
	return domain.Point2D{
		X: c.Origin.X + c.FromM(xM),
		Y: c.Origin.Y + c.FromM(yM),
	}
}

// Translate returns a copy of c with the origin shifted by (dx, dy) drawing
// units.
func (c CoordinateSpace) Translate(dx, dy float64) CoordinateSpace {
	c.Origin = domain.Point2D{X: c.Origin.X + dx, Y: c.Origin.Y + dy}
	return c
}
