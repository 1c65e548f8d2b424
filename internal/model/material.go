package model

// CutPlan is one commercial stock's cutting plan within a material item.
type CutPlan struct {
	CommercialLengthM float64
	CutLengthsM       []float64
	NumBars           int
	WasteM            float64
	EfficiencyPct     float64
}

// MaterialItem groups one bar diameter's pieces into commercial stocks.
type MaterialItem struct {
	Diameter          string
	TotalLengthM      float64
	Pieces            int
	WeightKG          float64
	CommercialLengths []CutPlan
	WastePct          float64
}

// ContinuousBarsInfo records the continuous-bar selection per side,
// including the per-diameter count map the original service carries
// alongside the chosen diameters (supplemented in SPEC_FULL).
type ContinuousBarsInfo struct {
	Top    []string
	Bottom []string
	// CountsByDiameterTop/Bottom map bar mark -> total quantity available,
	// regardless of whether that mark was selected continuous.
	CountsByDiameterTop    map[string]int
	CountsByDiameterBottom map[string]int
}

// DetailingResult is the full output of ComputeDetailing (§6.1).
type DetailingResult struct {
	TopBars           []RebarDetail
	BottomBars        []RebarDetail
	ProhibitedZones   []ForbiddenZone
	MaterialList      []MaterialItem
	ContinuousBars    ContinuousBarsInfo
	Warnings          []string
	ValidationPassed  bool
	TotalWeightKG     float64
	TotalBarsCount    int
	StirrupsSummary   StirrupDesignSummary
	OptimizationScore int
}
