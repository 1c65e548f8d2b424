package section

import (
	"strings"
	"testing"
)

func TestParseReadsPolylineLineCircleAndText(t *testing.T) {
	doc := strings.Join([]string{
		"# a comment",
		"POLYLINE outline 0 0 -> 10 0 -> 10 5 -> 0 5 CLOSED",
		"LINE outline 0 0 -> 10 5",
		`TEXT labels 5 2.5 HEIGHT 1.5 ATTACH 5 "{{REBAR_SUMMARY}}"`,
		"CIRCLE bars 5 2.5 0.8",
	}, "\n")

	tmpl, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(tmpl.Polylines) != 3 {
		t.Fatalf("expected 3 polylines (outline + line + circle), got %d", len(tmpl.Polylines))
	}
	if !tmpl.Polylines[0].Closed {
		t.Fatal("expected the explicit CLOSED polyline to be marked closed")
	}
	if len(tmpl.Texts) != 1 {
		t.Fatalf("expected 1 text entity, got %d", len(tmpl.Texts))
	}
	text := tmpl.Texts[0]
	if text.Placeholder != "REBAR_SUMMARY" {
		t.Fatalf("expected placeholder %q, got %q", "REBAR_SUMMARY", text.Placeholder)
	}
	if text.AttachmentHAlign != "center" || text.AttachmentVAlign != "middle" {
		t.Fatalf("expected ATTACH 5 to resolve to center/middle, got %s/%s", text.AttachmentHAlign, text.AttachmentVAlign)
	}

	if tmpl.Width() <= 0 || tmpl.Height() <= 0 {
		t.Fatalf("expected a positive bounding box, got %fx%f", tmpl.Width(), tmpl.Height())
	}
}

func TestParseReturnsErrNoEntitiesForBlankTemplate(t *testing.T) {
	_, err := Parse(strings.NewReader("# just a comment\nBOUNDS 0 0 10 10\n"))
	if err != ErrNoEntities {
		t.Fatalf("expected ErrNoEntities, got %v", err)
	}
}

func TestParseRejectsMalformedCoordinates(t *testing.T) {
	_, err := Parse(strings.NewReader("LINE outline x y\n"))
	if err == nil {
		t.Fatal("expected an error for non-numeric coordinates")
	}
}
