package codetable

import (
	"testing"

	"github.com/alexiusacademia/despacho/internal/model"
)

func TestHookReturnsFalseForUndefinedCell(t *testing.T) {
	if _, ok := Hook("#9", model.Hook135); ok {
		t.Fatal("expected #9 at 135° to be undefined")
	}
}

func TestHookReturnsFalseForUnknownMark(t *testing.T) {
	if _, ok := Hook("#99", model.Hook90); ok {
		t.Fatal("expected an unknown mark to report not-ok")
	}
}

func TestHookReturnsDefinedValue(t *testing.T) {
	v, ok := Hook("#5", model.Hook90)
	if !ok || v != 0.25 {
		t.Fatalf("Hook(#5, 90) = (%f, %v), want (0.25, true)", v, ok)
	}
}

func TestUnitWeightUnknownMarkIsZero(t *testing.T) {
	if w := UnitWeight("#99"); w != 0 {
		t.Fatalf("expected 0 for an unknown mark, got %f", w)
	}
}

func TestFcColumnMapsEquivalentClassesToSameColumn(t *testing.T) {
	a, okA := FcColumn("28 MPa (4000 psi)")
	b, okB := FcColumn("32 MPa (4600 psi)")
	if !okA || !okB || a != b {
		t.Fatalf("expected 32 MPa to reuse the 28 MPa lap column, got (%s,%v) vs (%s,%v)", a, okA, b, okB)
	}
}

func TestKnownMarkRecognizesTabulatedMarks(t *testing.T) {
	if !KnownMark("#8") {
		t.Fatal("expected #8 to be a known mark")
	}
	if KnownMark("#99") {
		t.Fatal("expected #99 to be unknown")
	}
}
