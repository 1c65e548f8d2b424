package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// roundedRectPoints traces a closed rounded-corner rectangle as a vertex
// chain sampled at 4 segments per corner arc (grounded on
// title_block.py's rounded_rect_points).
func roundedRectPoints(xMin, yMin, width, height, radius float64) []domain.Point2D {
	if width <= 0 || height <= 0 {
		return nil
	}
	radius = math.Max(0, math.Min(radius, math.Min(width/2, height/2)))
	xMax, yMax := xMin+width, yMin+height
	if radius == 0 {
		return []domain.Point2D{{X: xMin, Y: yMin}, {X: xMax, Y: yMin}, {X: xMax, Y: yMax}, {X: xMin, Y: yMax}}
	}

	arc := func(cx, cy, startDeg, endDeg float64) []domain.Point2D {
		const segments = 4
		step := (endDeg - startDeg) / segments
		pts := make([]domain.Point2D, 0, segments+1)
		for i := 0; i <= segments; i++ {
			deg := startDeg + step*float64(i)
			rad := deg * math.Pi / 180.0
			pts = append(pts, domain.Point2D{X: cx + radius*math.Cos(rad), Y: cy + radius*math.Sin(rad)})
		}
		return pts
	}

	points := []domain.Point2D{{X: xMin + radius, Y: yMin}, {X: xMax - radius, Y: yMin}}
	points = append(points, arc(xMax-radius, yMin+radius, 270, 360)[1:]...)
	points = append(points, domain.Point2D{X: xMax, Y: yMax - radius})
	points = append(points, arc(xMax-radius, yMax-radius, 0, 90)[1:]...)
	points = append(points, domain.Point2D{X: xMin + radius, Y: yMax})
	points = append(points, arc(xMin+radius, yMax-radius, 90, 180)[1:]...)
	points = append(points, domain.Point2D{X: xMin, Y: yMin + radius})
	points = append(points, arc(xMin+radius, yMin+radius, 180, 270)[1:]...)
	return points
}

// TitleBlockRenderer draws a rounded-corner box hugging the beam's left
// end, with an inner outline and the beam/level/section/quantity labels
// (spec §4.L.4, grounded on title_block.py's TitleBlockRenderer).
type TitleBlockRenderer struct {
	WidthMM       float64
	FallbackHeightMM float64
	InnerOffsetMM float64
	CornerRadiusMM float64
}

func NewTitleBlockRenderer() TitleBlockRenderer {
	return TitleBlockRenderer{WidthMM: 2400.0, FallbackHeightMM: 90.0, InnerOffsetMM: 70.0, CornerRadiusMM: 150.0}
}

func (r TitleBlockRenderer) Draw(doc *domain.Document, ctx Context) {
	layer := ctx.Layer("title_block")
	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("title", "")

	height := ctx.BeamHeightMM
	if height <= 0 {
		height = r.FallbackHeightMM
	}
	rightX := ctx.Origin.X
	originX := rightX - r.WidthMM
	topY := ctx.Origin.Y + height
	originY := topY - height

	block := roundedRectPoints(originX, originY, r.WidthMM, height, r.CornerRadiusMM)
	doc.Add(domain.NewPolyline(layer, block, true, colorOf(ctx, "title_block")))

	r.drawInnerOutline(doc, layer, ctx, originX, originY, r.WidthMM, height, r.CornerRadiusMM)

	meta := ctx.Payload.Metadata
	spans := ctx.Payload.Geometry.Spans
	sectionText := "Sección: N/D"
	if len(spans) > 0 {
		sectionText = fmt.Sprintf("b=%.2f h=%.2f", spans[0].BaseCM/100.0, spans[0].HeightCM/100.0)
	}
	level := meta.ElementLevel
	if level == "" {
		level = "N/A"
	}
	lines := []string{
		meta.BeamLabel,
		fmt.Sprintf("Nivel: %s", level),
		sectionText,
		fmt.Sprintf("Cantidad: %d", meta.ElementQuantity),
	}

	paddingY := 220.0
	lineSpacing := 400.0
	cursorY := topY - paddingY
	positions := []struct {
		text string
		y    float64
	}{
		{lines[0], cursorY - 0*lineSpacing - 100.0},
		{lines[1], cursorY - 1*lineSpacing - 100.0},
	}
	quantityY := originY + 250.0
	sectionY := quantityY + 250.0
	positions = append(positions, struct {
		text string
		y    float64
	}{lines[2], sectionY})
	positions = append(positions, struct {
		text string
		y    float64
	}{lines[3], quantityY})

	for _, p := range positions {
		insert := domain.Point2D{X: originX + r.WidthMM/2.0, Y: p.y}
		entity := domain.NewText(textLayer, p.text, insert, ctx.TextHeightMM, textStyle.Name)
		entity.HAlign = "center"
		doc.Add(entity)
	}
}

func (r TitleBlockRenderer) drawInnerOutline(doc *domain.Document, layer string, ctx Context, originX, bottom, width, height, outerRadius float64) {
	offset := r.InnerOffsetMM
	if width <= 2*offset || height <= 2*offset {
		return
	}
	innerLeft := originX + offset
	innerBottom := bottom + offset
	innerWidth := width - 2*offset
	innerHeight := height - 2*offset
	innerRadius := math.Max(outerRadius-offset, 0)
	if innerRadius == 0 {
		innerRadius = math.Min(innerWidth, innerHeight) * 0.1
	}
	points := roundedRectPoints(innerLeft, innerBottom, innerWidth, innerHeight, innerRadius)
	if points == nil {
		return
	}
	doc.Add(domain.NewPolyline(layer, points, true, colorOf(ctx, "title_block")))
}

// RightInfoBoxRenderer mirrors the title block on the right end with the
// stirrup summary, concrete class, and steel grade (spec §4.L.5, grounded
// on title_block.py's RightInfoBoxRenderer).
type RightInfoBoxRenderer struct {
	WidthMM         float64
	CornerRadiusMM  float64
	BottomPaddingMM float64
	LineSpacingMM   float64
	InnerOffsetMM   float64
}

func NewRightInfoBoxRenderer() RightInfoBoxRenderer {
	return RightInfoBoxRenderer{WidthMM: 2600.0, CornerRadiusMM: 150.0, BottomPaddingMM: 170.0, LineSpacingMM: 170.0, InnerOffsetMM: 70.0}
}

func (r RightInfoBoxRenderer) Draw(doc *domain.Document, ctx Context) {
	height := ctx.BeamHeightMM
	if height <= 0 {
		return
	}
	layer := ctx.Layer("title_block")
	textLayer := ctx.Layer("text")
	textStyle := ctx.Template.TextStyleOrFallback("title", "")

	beamLengthMM := ctx.ToMM(ctx.Payload.Geometry.TotalLengthM)
	originX := ctx.Origin.X + beamLengthMM
	bottom := ctx.Origin.Y
	top := bottom + height
	right := originX + r.WidthMM
	radius := r.CornerRadiusMM

	block := []domain.Point2D{{X: originX, Y: bottom}, {X: right - radius, Y: bottom}}
	block = append(block, arcPointsAt(right-radius, bottom+radius, radius, 270, 360)[1:]...)
	block = append(block, domain.Point2D{X: right, Y: top - radius})
	block = append(block, arcPointsAt(right-radius, top-radius, radius, 0, 90)[1:]...)
	block = append(block, domain.Point2D{X: right - radius, Y: top})
	block = append(block, domain.Point2D{X: originX, Y: top})
	doc.Add(domain.NewPolyline(layer, block, true, colorOf(ctx, "title_block")))

	r.drawInnerOutline(doc, layer, ctx, originX, bottom, r.WidthMM, height, radius)

	steelInsert := domain.Point2D{X: originX + r.WidthMM/2.0, Y: bottom + r.BottomPaddingMM}
	steelEntity := domain.NewText(textLayer, r.steelText(ctx), steelInsert, ctx.TextHeightMM*0.85, textStyle.Name)
	steelEntity.HAlign = "center"
	doc.Add(steelEntity)

	concreteInsert := domain.Point2D{X: steelInsert.X, Y: steelInsert.Y + r.LineSpacingMM}
	concreteEntity := domain.NewText(textLayer, r.concreteText(ctx), concreteInsert, ctx.TextHeightMM*0.85, textStyle.Name)
	concreteEntity.HAlign = "center"
	doc.Add(concreteEntity)

	labelInsert := domain.Point2D{X: concreteInsert.X, Y: concreteInsert.Y + r.LineSpacingMM}
	labelEntity := domain.NewText(textLayer, r.stirrupSummaryText(ctx), labelInsert, ctx.TextHeightMM, textStyle.Name)
	labelEntity.HAlign = "center"
	doc.Add(labelEntity)
}

func (r RightInfoBoxRenderer) drawInnerOutline(doc *domain.Document, layer string, ctx Context, originX, bottom, width, height, outerRadius float64) {
	offset := r.InnerOffsetMM
	if width <= 2*offset || height <= 2*offset {
		return
	}
	innerLeft := originX + offset
	innerBottom := bottom + offset
	innerWidth := width - 2*offset
	innerHeight := height - 2*offset
	innerRadius := math.Max(outerRadius-offset, 0)
	if innerRadius == 0 {
		innerRadius = math.Min(innerWidth, innerHeight) * 0.1
	}
	points := roundedRectPoints(innerLeft, innerBottom, innerWidth, innerHeight, innerRadius)
	if points == nil {
		return
	}
	doc.Add(domain.NewPolyline(layer, points, true, colorOf(ctx, "title_block")))
}

func (r RightInfoBoxRenderer) stirrupSummaryText(ctx Context) string {
	summary := ctx.Payload.DetailingResult.StirrupsSummary
	diameter := "#3"
	if len(summary.SpanSpecs) > 0 {
		diameter = summary.SpanSpecs[0].StirrupDiameter
	}
	gaugeText := diameter
	if strings.HasPrefix(diameter, "#") {
		if gauge, err := strconv.ParseFloat(strings.TrimPrefix(diameter, "#"), 64); err == nil {
			switch gauge {
			case 3:
				gaugeText = "Ø3/8\""
			case 4:
				gaugeText = "Ø1/2\""
			}
		}
	}
	totalCount := 0
	for _, seg := range summary.Segments {
		totalCount += seg.EstimatedCount
	}
	spacingM := 0.0
	if spans := ctx.Payload.Geometry.Spans; len(spans) > 0 && spans[0].HeightCM > 0 {
		spacingM = spans[0].HeightCM / 100.0
	}
	stirrupLengthM := math.Max(spacingM*3.0, 1.0)
	return fmt.Sprintf("%d Flejes %s L=%.2fm", totalCount, gaugeText, stirrupLengthM)
}

func (r RightInfoBoxRenderer) concreteText(ctx Context) string {
	fc := ctx.Payload.Metadata.ConcreteStrength
	if fc == "" {
		fc = "N/D"
	}
	return fmt.Sprintf("f'c=%s", fc)
}

func (r RightInfoBoxRenderer) steelText(ctx Context) string {
	fy := ctx.Payload.Metadata.ReinforcementGrade
	if fy == "" {
		fy = "N/D"
	}
	return fmt.Sprintf("f'y=%s", fy)
}

func arcPointsAt(cx, cy, radius, startDeg, endDeg float64) []domain.Point2D {
	const segments = 4
	step := (endDeg - startDeg) / segments
	pts := make([]domain.Point2D, 0, segments+1)
	for i := 0; i <= segments; i++ {
		deg := startDeg + step*float64(i)
		rad := deg * math.Pi / 180.0
		pts = append(pts, domain.Point2D{X: cx + radius*math.Cos(rad), Y: cy + radius*math.Sin(rad)})
	}
	return pts
}
