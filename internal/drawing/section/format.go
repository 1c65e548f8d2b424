// Package section loads and instantiates an externally authored section
// schematic: a small vector template carrying polylines, lines, circles,
// and placeholder-bearing texts (spec §4.M, Section-Template Loader).
//
// The original service reads this template from a DXF file via Python's
// ezdxf. No library in the retrieval pack reads DXF, so this package
// defines its own minimal textual grammar ("PTL", plain template
// language) covering the same four entity kinds, documented in
// DESIGN.md.
package section

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TemplatePolyline is a closed or open vertex chain on a named layer.
type TemplatePolyline struct {
	Layer  string
	Points [][2]float64
	Closed bool
}

// attachment mirrors the DXF MTEXT attachment-point int -> halign/valign
// mapping the original service reconstructs from the CAD standard.
type attachment struct {
	HAlign string
	VAlign string
}

var attachmentTable = map[int]attachment{
	1: {"left", "top"}, 2: {"center", "top"}, 3: {"right", "top"},
	4: {"left", "middle"}, 5: {"center", "middle"}, 6: {"right", "middle"},
	7: {"left", "bottom"}, 8: {"center", "bottom"}, 9: {"right", "bottom"},
}

// TemplateText is a (possibly multi-line) text entity, optionally carrying
// a `{{PLACEHOLDER}}` key extracted from its content.
type TemplateText struct {
	Layer          string
	Content        string
	Placeholder    string
	InsertX        float64
	InsertY        float64
	Height         float64
	Rotation       float64
	AttachmentHAlign string
	AttachmentVAlign string
}

var placeholderPattern = regexp.MustCompile(`^\{\{([A-Za-z0-9_]+)\}\}$`)

func extractPlaceholder(content string) string {
	m := placeholderPattern.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return ""
	}
	return m[1]
}

// Template is the parsed section schematic plus its bounding box.
type Template struct {
	MinX, MinY, MaxX, MaxY float64
	Polylines              []TemplatePolyline
	Texts                  []TemplateText
}

// Width and Height are the bounding box's extents.
func (t Template) Width() float64  { return t.MaxX - t.MinX }
func (t Template) Height() float64 { return t.MaxY - t.MinY }

// ErrNoEntities is returned by Parse when the template contains no
// recognizable entities (spec §7, SectionTemplateUnavailable).
var ErrNoEntities = fmt.Errorf("section: template has no entities")

const circleSegments = 48

// Parse reads a PTL document and returns the assembled Template.
func Parse(r io.Reader) (Template, error) {
	tmpl := Template{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	scanner := bufio.NewScanner(r)

	extend := func(x, y float64) {
		tmpl.MinX = math.Min(tmpl.MinX, x)
		tmpl.MinY = math.Min(tmpl.MinY, y)
		tmpl.MaxX = math.Max(tmpl.MaxX, x)
		tmpl.MaxY = math.Max(tmpl.MaxY, y)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToUpper(fields[0]) {
		case "POLYLINE", "LINE":
			pl, err := parsePolylineDirective(line, fields)
			if err != nil {
				return Template{}, err
			}
			tmpl.Polylines = append(tmpl.Polylines, pl)
			for _, p := range pl.Points {
				extend(p[0], p[1])
			}
		case "CIRCLE":
			pl, err := parseCircleDirective(fields)
			if err != nil {
				return Template{}, err
			}
			tmpl.Polylines = append(tmpl.Polylines, pl)
			for _, p := range pl.Points {
				extend(p[0], p[1])
			}
		case "TEXT":
			t, err := parseTextDirective(line, fields)
			if err != nil {
				return Template{}, err
			}
			tmpl.Texts = append(tmpl.Texts, t)
			extend(t.InsertX, t.InsertY)
		case "BOUNDS":
			// explicit bounds are ignored; the bbox is always
			// computed from the parsed entities.
			continue
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return Template{}, err
	}
	if len(tmpl.Polylines) == 0 && len(tmpl.Texts) == 0 {
		return Template{}, ErrNoEntities
	}
	return tmpl, nil
}

// parsePolylineDirective parses:
//   POLYLINE <layer> x0 y0 -> x1 y1 -> ... [CLOSED]
//   LINE <layer> x0 y0 -> x1 y1
func parsePolylineDirective(line string, fields []string) (TemplatePolyline, error) {
	if len(fields) < 2 {
		return TemplatePolyline{}, fmt.Errorf("section: malformed directive %q", line)
	}
	layer := fields[1]
	closed := strings.Contains(strings.ToUpper(line), "CLOSED")
	coordPart := strings.TrimSuffix(strings.TrimSpace(strings.SplitN(line, layer, 2)[1]), "CLOSED")
	chunks := strings.Split(coordPart, "->")
	points := make([][2]float64, 0, len(chunks))
	for _, chunk := range chunks {
		nums := strings.Fields(chunk)
		if len(nums) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(nums[0], 64)
		if err != nil {
			return TemplatePolyline{}, fmt.Errorf("section: bad coordinate in %q: %w", line, err)
		}
		y, err := strconv.ParseFloat(nums[1], 64)
		if err != nil {
			return TemplatePolyline{}, fmt.Errorf("section: bad coordinate in %q: %w", line, err)
		}
		points = append(points, [2]float64{x, y})
	}
	if len(points) < 2 {
		return TemplatePolyline{}, fmt.Errorf("section: directive %q needs at least 2 points", line)
	}
	return TemplatePolyline{Layer: layer, Points: points, Closed: closed}, nil
}

// parseCircleDirective parses: CIRCLE <layer> cx cy radius [SEGMENTS n]
func parseCircleDirective(fields []string) (TemplatePolyline, error) {
	if len(fields) < 5 {
		return TemplatePolyline{}, fmt.Errorf("section: malformed CIRCLE directive")
	}
	layer := fields[1]
	cx, err1 := strconv.ParseFloat(fields[2], 64)
	cy, err2 := strconv.ParseFloat(fields[3], 64)
	radius, err3 := strconv.ParseFloat(fields[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return TemplatePolyline{}, fmt.Errorf("section: bad CIRCLE coordinates")
	}
	segments := circleSegments
	for i := 5; i < len(fields)-1; i++ {
		if strings.ToUpper(fields[i]) == "SEGMENTS" {
			if n, err := strconv.Atoi(fields[i+1]); err == nil && n > 2 {
				segments = n
			}
		}
	}
	points := make([][2]float64, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		points = append(points, [2]float64{cx + radius*math.Cos(theta), cy + radius*math.Sin(theta)})
	}
	return TemplatePolyline{Layer: layer, Points: points, Closed: true}, nil
}

// parseTextDirective parses:
//   TEXT <layer> x y HEIGHT h [ROTATION r] [HALIGN a] [VALIGN a] "content"
func parseTextDirective(line string, fields []string) (TemplateText, error) {
	if len(fields) < 5 {
		return TemplateText{}, fmt.Errorf("section: malformed TEXT directive %q", line)
	}
	layer := fields[1]
	x, err1 := strconv.ParseFloat(fields[2], 64)
	y, err2 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil {
		return TemplateText{}, fmt.Errorf("section: bad TEXT coordinates in %q", line)
	}

	firstQuote := strings.Index(line, `"`)
	lastQuote := strings.LastIndex(line, `"`)
	if firstQuote < 0 || lastQuote <= firstQuote {
		return TemplateText{}, fmt.Errorf("section: TEXT directive missing quoted content: %q", line)
	}
	content := line[firstQuote+1 : lastQuote]
	optionFields := strings.Fields(line[:firstQuote])

	t := TemplateText{Layer: layer, Content: content, InsertX: x, InsertY: y, Height: 2.5}
	for i := 0; i < len(optionFields)-1; i++ {
		switch strings.ToUpper(optionFields[i]) {
		case "HEIGHT":
			if h, err := strconv.ParseFloat(optionFields[i+1], 64); err == nil {
				t.Height = h
			}
		case "ROTATION":
			if rot, err := strconv.ParseFloat(optionFields[i+1], 64); err == nil {
				t.Rotation = rot
			}
		case "HALIGN":
			t.AttachmentHAlign = optionFields[i+1]
		case "VALIGN":
			t.AttachmentVAlign = optionFields[i+1]
		case "ATTACH":
			if n, err := strconv.Atoi(optionFields[i+1]); err == nil {
				if a, ok := attachmentTable[n]; ok {
					t.AttachmentHAlign, t.AttachmentVAlign = a.HAlign, a.VAlign
				}
			}
		}
	}
	t.Placeholder = extractPlaceholder(content)
	return t, nil
}
