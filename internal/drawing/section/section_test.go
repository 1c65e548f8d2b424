package section

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/despacho/internal/drawing/domain"
)

func mustParse(t *testing.T, doc string) Template {
	t.Helper()
	tmpl, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return tmpl
}

func TestInstantiateCentersAndScalesToFitFraction(t *testing.T) {
	tmpl := mustParse(t, strings.Join([]string{
		"POLYLINE outline 0 0 -> 10 0 -> 10 10 -> 0 10 CLOSED",
		`TEXT labels 5 5 HEIGHT 1 "{{REBAR_SUMMARY}}"`,
	}, "\n"))

	anchor := domain.Point2D{X: 100, Y: 200}
	inst := Instantiate(tmpl, anchor, 40, 40, "shape", "text", "labels", map[string]string{
		"REBAR_SUMMARY": "4Ø3/8\"",
	})

	if len(inst.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(inst.Entities))
	}
	if inst.ResolvedTexts["REBAR_SUMMARY"] != "4Ø3/8\"" {
		t.Fatalf("expected placeholder to resolve, got %v", inst.ResolvedTexts)
	}
	if len(inst.UnresolvedPlaceholders) != 0 {
		t.Fatalf("expected no unresolved placeholders, got %v", inst.UnresolvedPlaceholders)
	}

	text, ok := inst.Entities[1].(domain.Text)
	if !ok {
		t.Fatalf("expected second entity to be domain.Text, got %T", inst.Entities[1])
	}
	// the template's center (5,5) must project exactly onto the anchor.
	if text.Insert.X != anchor.X || text.Insert.Y != anchor.Y {
		t.Fatalf("expected centered text at %v, got %v", anchor, text.Insert)
	}
}

func TestInstantiateLeavesUnresolvedPlaceholderMarked(t *testing.T) {
	tmpl := mustParse(t, `TEXT labels 0 0 HEIGHT 1 "{{MISSING_KEY}}"`)

	inst := Instantiate(tmpl, domain.Point2D{}, 10, 10, "shape", "text", "labels", nil)

	if len(inst.UnresolvedPlaceholders) != 1 || inst.UnresolvedPlaceholders[0] != "MISSING_KEY" {
		t.Fatalf("expected MISSING_KEY to be reported unresolved, got %v", inst.UnresolvedPlaceholders)
	}
}
