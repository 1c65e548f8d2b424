// Package geomlayout lays the beam out on a 1-D axis: support intervals,
// span intervals, face coordinates, span centers, axis markers, and total
// length (spec §4.B, Geometry Builder).
package geomlayout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexiusacademia/despacho/internal/model"
)

// InvalidGeometryError is returned when the support/span cardinality does
// not match the required support, span, support, ... interleaving.
type InvalidGeometryError struct {
	Msg string
}

func (e *InvalidGeometryError) Error() string { return e.Msg }

var axisLabelSplit = regexp.MustCompile(`[-,\s]+`)

// Build walks the interleaved (support, span) sequence from x=0 and
// produces the Geometry Builder's output.
func Build(input model.BeamInput) (model.Geometry, error) {
	supports := input.Supports
	spans := input.Spans

	if len(supports) != len(spans)+1 {
		return model.Geometry{}, &InvalidGeometryError{
			Msg: fmt.Sprintf("support/span cardinality mismatch: %d supports, %d spans (need supports = spans+1)",
				len(supports), len(spans)),
		}
	}

	var axisLabels []string
	if strings.TrimSpace(input.AxisLabels) != "" {
		for _, l := range axisLabelSplit.Split(strings.TrimSpace(input.AxisLabels), -1) {
			if l != "" {
				axisLabels = append(axisLabels, l)
			}
		}
	}

	geo := model.Geometry{}
	currentX := 0.0

	for i, support := range supports {
		widthM := support.WidthCM / 100.0
		if widthM < 0 {
			return model.Geometry{}, &InvalidGeometryError{Msg: fmt.Sprintf("support %d has negative width", i)}
		}

		label := support.Label
		if label == "" {
			label = fmt.Sprintf("EJE %d", i+1)
		}
		geo.Faces = append(geo.Faces, model.Face{
			XM: currentX, SupportIndex: i, WidthM: widthM, Label: label,
		})

		if widthM > 0 {
			geo.Supports = append(geo.Supports, model.SupportInterval{
				Interval: model.Interval{StartM: currentX, EndM: currentX + widthM},
				Index:    i,
				Label:    label,
			})
		}

		markerLabel := label
		if i < len(axisLabels) {
			markerLabel = axisLabels[i]
		}
		geo.AxisMarkers = append(geo.AxisMarkers, model.AxisMarker{
			Index:     i,
			Label:     markerLabel,
			PositionM: currentX + widthM/2,
		})

		currentX += widthM

		if i < len(spans) {
			span := spans[i]
			if span.ClearSpanM < 0 {
				return model.Geometry{}, &InvalidGeometryError{Msg: fmt.Sprintf("span %d has negative length", i)}
			}
			geo.Centers = append(geo.Centers, currentX+span.ClearSpanM/2)
			geo.Spans = append(geo.Spans, model.SpanInterval{
				Interval: model.Interval{StartM: currentX, EndM: currentX + span.ClearSpanM},
				Index:    i,
				HeightCM: span.HeightCM,
				BaseCM:   span.BaseCM,
			})
			currentX += span.ClearSpanM
		}
	}

	geo.TotalLengthM = currentX
	return geo, nil
}
