package domain

import "testing"

func TestDocumentAddAndExtendPreserveOrder(t *testing.T) {
	doc := NewDocument(DefaultUnits, 50)

	doc.Add(NewLine("outline", Point2D{}, Point2D{X: 1}, 7))
	doc.Extend([]Entity{
		NewText("text", "a", Point2D{}, 2.5, "labels"),
		NewText("text", "b", Point2D{}, 2.5, "labels"),
	})

	if len(doc.Entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(doc.Entities))
	}
	if doc.Entities[0].Kind() != "Line" {
		t.Fatalf("expected the first entity to stay a Line, got %s", doc.Entities[0].Kind())
	}
	second, ok := doc.Entities[1].(Text)
	if !ok || second.Content != "a" {
		t.Fatalf("expected entity order to be preserved after Extend, got %+v", doc.Entities[1])
	}
}

func TestDefaultUnitsConvertsMetersToMillimeters(t *testing.T) {
	if DefaultUnits.ScaleFactor != 1000.0 {
		t.Fatalf("expected a 1000x scale factor for m->mm, got %f", DefaultUnits.ScaleFactor)
	}
}
