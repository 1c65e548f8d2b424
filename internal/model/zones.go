package model

// ZoneKind classifies a forbidden-splice zone.
type ZoneKind string

const (
	ZoneInsideSupport ZoneKind = "inside_support"
	ZoneBeforeFace    ZoneKind = "before_face"
	ZoneAfterFace     ZoneKind = "after_face"
)

// ForbiddenZone is an axial interval where a splice may not be placed.
type ForbiddenZone struct {
	StartM       float64
	EndM         float64
	SupportIndex int
	Kind         ZoneKind
}

// Interval converts the zone into a plain Interval for overlap checks.
func (z ForbiddenZone) Interval() Interval {
	return Interval{StartM: z.StartM, EndM: z.EndM}
}
