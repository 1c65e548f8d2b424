// Package domain defines the drawing primitives and the ordered
// DrawingDocument they accumulate into (spec §3 Drawing Document).
package domain

// Point2D is a 2-D point in the document's coordinate space (mm, once
// scaled).
type Point2D struct {
	X float64
	Y float64
}

// Entity is any primitive a renderer appends to a DrawingDocument.
type Entity interface {
	Kind() string
	Layer() string
}

type base struct {
	LayerName string
	Metadata  map[string]any
}

func (b base) Layer() string { return b.LayerName }

// Line is a single straight segment.
type Line struct {
	base
	Start, End Point2D
	Color      int
}

func (Line) Kind() string { return "Line" }

// Polyline is an ordered vertex chain, optionally closed.
type Polyline struct {
	base
	Points []Point2D
	Closed bool
	Color  int
}

func (Polyline) Kind() string { return "Polyline" }

// Text is a single or multi-line label.
type Text struct {
	base
	Content   string
	Insert    Point2D
	Height    float64
	Rotation  float64
	Style     string
	HAlign    string
	VAlign    string
}

func (Text) Kind() string { return "Text" }

// Dimension is a linear dimension annotation between two points.
type Dimension struct {
	base
	Start, End   Point2D
	Offset       float64
	TextOverride string
}

func (Dimension) Kind() string { return "Dimension" }

// Hatch is a filled region bounded by a closed polyline.
type Hatch struct {
	base
	Boundary []Point2D
	Pattern  string
	Scale    float64
	Rotation float64
}

func (Hatch) Kind() string { return "Hatch" }

// NewLine, NewPolyline, ... construct entities with the given layer.

func NewLine(layer string, start, end Point2D, color int) Line {
	return Line{base: base{LayerName: layer}, Start: start, End: end, Color: color}
}

func NewPolyline(layer string, points []Point2D, closed bool, color int) Polyline {
	return Polyline{base: base{LayerName: layer}, Points: points, Closed: closed, Color: color}
}

func NewText(layer, content string, insert Point2D, height float64, style string) Text {
	return Text{base: base{LayerName: layer}, Content: content, Insert: insert, Height: height, Style: style}
}

func NewDimension(layer string, start, end Point2D, offset float64, textOverride string) Dimension {
	return Dimension{base: base{LayerName: layer}, Start: start, End: end, Offset: offset, TextOverride: textOverride}
}

func NewHatch(layer string, boundary []Point2D, pattern string, scale float64) Hatch {
	return Hatch{base: base{LayerName: layer}, Boundary: boundary, Pattern: pattern, Scale: scale}
}

// Units carries the scale/precision profile used to convert meters to
// drawing units (spec §6.4).
type Units struct {
	SourceUnit  string
	TargetUnit  string
	ScaleFactor float64
	Precision   int
}

// DefaultUnits is the default m -> mm profile (spec §6.4).
var DefaultUnits = Units{SourceUnit: "m", TargetUnit: "mm", ScaleFactor: 1000.0, Precision: 2}

// Document is the mutable ordered list of primitives plus top-level
// metadata (spec §3 Drawing Document).
type Document struct {
	Units    Units
	Scale    float64
	Metadata map[string]any
	Entities []Entity
}

// NewDocument creates an empty document.
func NewDocument(units Units, scale float64) *Document {
	return &Document{Units: units, Scale: scale, Metadata: map[string]any{}}
}

// Add appends one entity, preserving draw order.
func (d *Document) Add(e Entity) {
	d.Entities = append(d.Entities, e)
}

// Extend appends every entity in es.
func (d *Document) Extend(es []Entity) {
	d.Entities = append(d.Entities, es...)
}
