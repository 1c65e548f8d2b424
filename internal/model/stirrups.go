package model

// StirrupZoneKind classifies a stirrup-spacing sub-interval.
type StirrupZoneKind string

const (
	ZoneConfined   StirrupZoneKind = "confined"
	ZoneUnconfined StirrupZoneKind = "unconfined"
)

// StirrupSpanSpec carries the per-span stirrup design quantities (§3).
type StirrupSpanSpec struct {
	SpanIndex          int
	BaseCM             float64
	HeightCM           float64
	CoverCM            float64
	StirrupDiameter    string
	EffectiveDepthM    float64
	SpacingConfinedM   float64
	SpacingUnconfinedM float64
}

// StirrupSegment is one sub-interval of the beam's stirrup partition.
type StirrupSegment struct {
	StartM        float64
	EndM          float64
	ZoneType      StirrupZoneKind
	SpacingM      float64
	EstimatedCount int
}

// StirrupDesignSummary is the Stirrup Planner's full output.
type StirrupDesignSummary struct {
	SpanSpecs []StirrupSpanSpec
	Segments  []StirrupSegment
	// AdditionalBranchesTotal supplements the distilled spec: the sum of
	// user-declared extra stirrup branches beyond the base 2-leg stirrup
	// (original service's stirrups_config[].additional_branches).
	AdditionalBranchesTotal int
}
