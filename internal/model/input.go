// Package model holds the shared value types passed between the detailing
// and drawing packages: beam input, geometry, zones, rebar details, material
// items, and the detailing result.
package model

// SpanGeometry describes one clear span between two supports.
type SpanGeometry struct {
	Label      string  `yaml:"label"`
	ClearSpanM float64 `yaml:"clear_span_m"`
	BaseCM     float64 `yaml:"base_cm"`
	HeightCM   float64 `yaml:"height_cm"`
}

// Support describes one axis support; the beam interleaves support, span,
// support, span, ... starting and ending with a support.
type Support struct {
	Label   string  `yaml:"label"`
	WidthCM float64 `yaml:"width_cm"`
}

// BarGroup is one diameter/quantity entry in a top or bottom configuration.
type BarGroup struct {
	Diameter string `yaml:"diameter"`
	Quantity int    `yaml:"quantity"`
}

// SegmentReinforcement is additional reinforcement limited to specific spans.
type SegmentReinforcement struct {
	SpanIndexes []int     `yaml:"span_indexes"`
	Top         *BarGroup `yaml:"top,omitempty"`
	Bottom      *BarGroup `yaml:"bottom,omitempty"`
}

// EnergyClass is the seismic energy-dissipation class.
type EnergyClass string

const (
	EnergyDES EnergyClass = "DES"
	EnergyDMO EnergyClass = "DMO"
	EnergyDMI EnergyClass = "DMI"
)

// HookType is the permitted stirrup/bar hook bend angle.
type HookType string

const (
	Hook90  HookType = "90"
	Hook135 HookType = "135"
	Hook180 HookType = "180"
)

// MaterialParams carries the material and code-class inputs shared across
// the whole detailing run.
type MaterialParams struct {
	ConcreteStrength string      `yaml:"concrete_strength"`
	SteelGrade       string      `yaml:"steel_grade"`
	EnergyClass      EnergyClass `yaml:"energy_class"`
	CoverCM          float64     `yaml:"cover_cm"`
	HookType         HookType    `yaml:"hook_type"`
	MaxBarLengthM    float64     `yaml:"max_bar_length_m"`
	// LapSpliceLengthMinM floors any computed lap length; supplements the
	// distilled spec with a field present in the original service
	// (lap_splice_length_min_m). Zero means "no floor".
	LapSpliceLengthMinM float64 `yaml:"lap_splice_length_min_m"`
}

// BeamInput is the full input record for ComputeDetailing.
type BeamInput struct {
	Spans                 []SpanGeometry         `yaml:"spans"`
	Supports              []Support              `yaml:"supports"`
	TopBars               []BarGroup             `yaml:"top_bars"`
	BottomBars            []BarGroup             `yaml:"bottom_bars"`
	SegmentReinforcements []SegmentReinforcement `yaml:"segment_reinforcements"`
	Material              MaterialParams         `yaml:"material"`
	AxisLabels            string                 `yaml:"axis_labels"` // raw string split on `[-,\s]+`, else "EJE i"

	// HasInitialCantilever / HasFinalCantilever are carried from the
	// original service's request schema; the distilled spec does not name
	// them, but nothing in its Non-goals excludes them. They are parsed from
	// the input only: no stage, the Validator included, reads them.
	HasInitialCantilever bool `yaml:"has_initial_cantilever"`
	HasFinalCantilever   bool `yaml:"has_final_cantilever"`

	// StirrupsConfig optionally declares extra stirrup branches per span;
	// ComputeDetailing only sums them into
	// StirrupDesignSummary.AdditionalBranchesTotal. Supplements the
	// distilled spec from the original service's
	// stirrups_config[].additional_branches.
	StirrupsConfig []StirrupConfig `yaml:"stirrups_config"`
}

// StirrupConfig is one span's stirrup configuration override.
type StirrupConfig struct {
	SpanIndex          int `yaml:"span_index"`
	AdditionalBranches int `yaml:"additional_branches"`
}
