package section

import (
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

// fitFraction is how much of the target box the instantiated schematic
// occupies; the remaining margin keeps the section clear of the
// dimension lines and title block that surround it (spec §4.M).
const fitFraction = 0.70

// Load reads and parses a PTL template file from disk.
func Load(path string) (Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return Template{}, fmt.Errorf("section: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Instance is a template placed and scaled into drawing space, ready to
// append to a DrawingDocument.
type Instance struct {
	Entities          []domain.Entity
	ResolvedTexts     map[string]string
	UnresolvedPlaceholders []string
}

// Instantiate scales tmpl to occupy fitFraction of (targetWidth,
// targetHeight) drawing units, centers it at anchor, substitutes each
// `{{PLACEHOLDER}}` text with placeholders[key] (or leaves the literal
// placeholder marker if the key is absent, spec §7 MissingPlaceholder),
// and returns entities on shapeLayer/textLayer.
func Instantiate(
	tmpl Template,
	anchor domain.Point2D,
	targetWidth, targetHeight float64,
	shapeLayer, textLayer, textStyle string,
	placeholders map[string]string,
) Instance {
	inst := Instance{ResolvedTexts: map[string]string{}}

	w, h := tmpl.Width(), tmpl.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	scaleX := (targetWidth * fitFraction) / w
	scaleY := (targetHeight * fitFraction) / h
	scale := math.Min(scaleX, scaleY)

	cx := tmpl.MinX + w/2
	cy := tmpl.MinY + h/2

	project := func(x, y float64) domain.Point2D {
		return domain.Point2D{
			X: anchor.X + (x-cx)*scale,
			Y: anchor.Y + (y-cy)*scale,
		}
	}

	for _, pl := range tmpl.Polylines {
		points := make([]domain.Point2D, len(pl.Points))
		for i, p := range pl.Points {
			points[i] = project(p[0], p[1])
		}
		layer := shapeLayer
		if shapeLayer == "" {
			layer = pl.Layer
		}
		inst.Entities = append(inst.Entities, domain.NewPolyline(layer, points, pl.Closed, 7))
	}

	for _, t := range tmpl.Texts {
		content := t.Content
		if t.Placeholder != "" {
			if value, ok := placeholders[t.Placeholder]; ok {
				content = value
				inst.ResolvedTexts[t.Placeholder] = value
			} else {
				inst.UnresolvedPlaceholders = append(inst.UnresolvedPlaceholders, t.Placeholder)
			}
		}
		layer := textLayer
		if textLayer == "" {
			layer = t.Layer
		}
		entity := domain.NewText(layer, content, project(t.InsertX, t.InsertY), t.Height*scale, textStyle)
		entity.Rotation = t.Rotation
		entity.HAlign = orFallbackAlign(t.AttachmentHAlign, "center")
		entity.VAlign = orFallbackAlign(t.AttachmentVAlign, "middle")
		inst.Entities = append(inst.Entities, entity)
	}

	return inst
}

func orFallbackAlign(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
