// Package detailing is the façade that orchestrates the Geometry Builder
// through the Validator (A→K) into a single ComputeDetailing call (spec §2).
package detailing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexiusacademia/despacho/internal/barlayout"
	"github.com/alexiusacademia/despacho/internal/codetable"
	"github.com/alexiusacademia/despacho/internal/continuity"
	"github.com/alexiusacademia/despacho/internal/devlength"
	"github.com/alexiusacademia/despacho/internal/finishing"
	"github.com/alexiusacademia/despacho/internal/geomlayout"
	"github.com/alexiusacademia/despacho/internal/material"
	"github.com/alexiusacademia/despacho/internal/model"
	"github.com/alexiusacademia/despacho/internal/splicecoord"
	"github.com/alexiusacademia/despacho/internal/stirrups"
	"github.com/alexiusacademia/despacho/internal/validate"
	"github.com/alexiusacademia/despacho/internal/zones"
)

// ErrNoReinforcement is returned when both top and bottom bar groups are
// empty (spec §7, NoReinforcement).
var ErrNoReinforcement = errors.New("despacho: no top or bottom reinforcement supplied")

// Trace receives one step-numbered progress message per computation stage;
// the CLI's verbose mode wires this to internal/logging. A nil Trace is a
// silent no-op, matching compute_detailing's pure-function contract (§5).
type Trace func(step int, message string)

// Options configures a single ComputeDetailing call.
type Options struct {
	Trace Trace
	// LapSpliceLookup is an optional commercial lap-splice override table.
	LapSpliceLookup codetable.LapSpliceLookup
}

// ComputeDetailing runs the full A→K pipeline and produces the normalized
// detailing result. It is a pure function of its inputs (spec §5).
func ComputeDetailing(input model.BeamInput, opts Options) (model.DetailingResult, error) {
	step := 0
	trace := func(msg string) {
		step++
		if opts.Trace != nil {
			opts.Trace(step, msg)
		}
	}

	if len(input.TopBars) == 0 && len(input.BottomBars) == 0 {
		return model.DetailingResult{}, ErrNoReinforcement
	}

	geo, err := geomlayout.Build(input)
	if err != nil {
		return model.DetailingResult{}, fmt.Errorf("despacho: %w", err)
	}
	trace(fmt.Sprintf("geometría calculada: longitud total %.2f m", geo.TotalLengthM))

	forbiddenZones := zones.Calculate(geo)
	trace(fmt.Sprintf("zonas prohibidas calculadas: %d", len(forbiddenZones)))

	topContinuous := continuity.Select(input.TopBars)
	bottomContinuous := continuity.Select(input.BottomBars)
	trace("barras continuas seleccionadas")

	lengths := devlength.Resolve(input.Material, opts.LapSpliceLookup)
	trace("longitudes de desarrollo evaluadas")

	cfg := barlayout.Config{
		Geometry:      geo,
		Zones:         forbiddenZones,
		MaxBarLengthM: input.Material.MaxBarLengthM,
		HookType:      input.Material.HookType,
	}

	topBars := buildFaceBars(cfg, topContinuous, lengths, model.PositionTop, input.Material.HookType)
	trace(fmt.Sprintf("detalle de barras superiores: %d", len(topBars)))

	bottomBars := buildFaceBars(cfg, bottomContinuous, lengths, model.PositionBottom, input.Material.HookType)
	trace(fmt.Sprintf("detalle de barras inferiores: %d", len(bottomBars)))

	topBars, bottomBars = splicecoord.Coordinate(topBars, bottomBars, forbiddenZones, geo.TotalLengthM)
	trace("empalmes coordinados")

	additionalBranches := 0
	for _, sc := range input.StirrupsConfig {
		additionalBranches += sc.AdditionalBranches
	}

	for _, seg := range input.SegmentReinforcements {
		if seg.Top != nil {
			topBars = append(topBars, barlayout.SegmentBars(cfg, seg.Top.Diameter, model.PositionTop, seg.SpanIndexes, seg.Top.Quantity)...)
		}
		if seg.Bottom != nil {
			bottomBars = append(bottomBars, barlayout.SegmentBars(cfg, seg.Bottom.Diameter, model.PositionBottom, seg.SpanIndexes, seg.Bottom.Quantity)...)
		}
	}
	if len(input.SegmentReinforcements) > 0 {
		trace(fmt.Sprintf("refuerzo de segmentos aplicado: %d", len(input.SegmentReinforcements)))
	}

	for i := range topBars {
		if l, ok := lengths[topBars[i].Diameter]; ok {
			topBars[i].DevelopmentLengthM = l.DevelopmentM
		}
	}
	for i := range bottomBars {
		if l, ok := lengths[bottomBars[i].Diameter]; ok {
			bottomBars[i].DevelopmentLengthM = l.DevelopmentM
		}
	}

	var finishingWarnings []string
	finishingWarnings = append(finishingWarnings, finishing.Apply(topBars, geo.TotalLengthM, input.Material.CoverCM, input.Material.MaxBarLengthM, input.Material.HookType)...)
	finishingWarnings = append(finishingWarnings, finishing.Apply(bottomBars, geo.TotalLengthM, input.Material.CoverCM, input.Material.MaxBarLengthM, input.Material.HookType)...)
	trace("ajustes de recubrimiento y ganchos aplicados")

	summary := stirrups.BuildSummary(geo, forbiddenZones, topBars, bottomBars, input.Material.CoverCM, additionalBranches)
	trace(fmt.Sprintf("resumen de estribos construido: %d segmentos", len(summary.Segments)))

	materialList := material.Generate(topBars, bottomBars, input.Material.MaxBarLengthM)
	trace(fmt.Sprintf("lista de materiales generada: %d diámetros", len(materialList)))

	validation := validate.Run(topBars, bottomBars, topContinuous, bottomContinuous, forbiddenZones, materialList, input.Material.EnergyClass)
	warnings := append(append([]string{}, finishingWarnings...), validation.Warnings...)
	trace(fmt.Sprintf("validación completada: %d advertencias", len(warnings)))

	totalWeight := 0.0
	totalBars := 0
	for _, item := range materialList {
		totalWeight += item.WeightKG
	}
	for _, b := range topBars {
		totalBars += b.Quantity
	}
	for _, b := range bottomBars {
		totalBars += b.Quantity
	}

	return model.DetailingResult{
		TopBars:         topBars,
		BottomBars:      bottomBars,
		ProhibitedZones: forbiddenZones,
		MaterialList:    materialList,
		ContinuousBars: model.ContinuousBarsInfo{
			Top:                    topContinuous.Diameters,
			Bottom:                 bottomContinuous.Diameters,
			CountsByDiameterTop:    topContinuous.CountByDiameter,
			CountsByDiameterBottom: bottomContinuous.CountByDiameter,
		},
		Warnings:          warnings,
		ValidationPassed:  len(warnings) == 0,
		TotalWeightKG:     totalWeight,
		TotalBarsCount:    totalBars,
		StirrupsSummary:   summary,
		OptimizationScore: validation.OptimizationScore,
	}, nil
}

// buildFaceBars builds both the continuous and non-continuous bars for one
// face (top or bottom), following the continuous selection's counts.
func buildFaceBars(cfg barlayout.Config, selection continuity.Selection, lengths map[string]devlength.Lengths, position model.Position, hookType model.HookType) []model.RebarDetail {
	var bars []model.RebarDetail
	instanceCounter := 0
	for _, mark := range selection.Diameters {
		count := selection.ContinuousCount[mark]
		spliceLengthM := lengths[mark].SpliceM
		for i := 0; i < count; i++ {
			var bar model.RebarDetail
			if position == model.PositionTop {
				bar = barlayout.ContinuousTop(cfg, mark, instanceCounter, spliceLengthM)
			} else {
				bar = barlayout.ContinuousBottom(cfg, mark, instanceCounter, spliceLengthM)
			}
			bar.HookType = hookType
			bars = append(bars, bar)
			instanceCounter++
		}
	}

	remainingByMark := map[string]int{}
	for mark, total := range selection.CountByDiameter {
		remainingByMark[mark] = total - selection.ContinuousCount[mark]
	}

	marks := make([]string, 0, len(remainingByMark))
	for mark := range remainingByMark {
		marks = append(marks, mark)
	}
	sort.Strings(marks)

	for _, mark := range marks {
		remaining := remainingByMark[mark]
		if remaining <= 0 {
			continue
		}
		developmentLengthM := lengths[mark].DevelopmentM
		var placed []model.RebarDetail
		if position == model.PositionTop {
			placed = barlayout.SupportBars(cfg, mark, remaining, developmentLengthM)
		} else {
			placed = barlayout.SupportAnchoredAndMidSpan(cfg, mark, remaining, selection.ContinuousCount[mark])
		}
		for i := range placed {
			placed[i].HookType = hookType
		}
		bars = append(bars, placed...)
	}

	return bars
}
