package render

import (
	"strings"
	"testing"
)

func TestFormatMetersUsesCommaDecimalForSpanishLocale(t *testing.T) {
	got := formatMeters("es-CO", 3.5)
	if !strings.Contains(got, "3,50") {
		t.Fatalf("expected a comma decimal separator for es-CO, got %q", got)
	}
}

func TestFormatMetersUsesDotDecimalForEnglishLocale(t *testing.T) {
	got := formatMeters("en-US", 3.5)
	if !strings.Contains(got, "3.50") {
		t.Fatalf("expected a dot decimal separator for en-US, got %q", got)
	}
}

func TestFormatMetersFallsBackToSpanishForInvalidLocale(t *testing.T) {
	got := formatMeters("not-a-locale!!", 2.0)
	if !strings.Contains(got, "2,00") {
		t.Fatalf("expected the Spanish fallback for an invalid locale, got %q", got)
	}
}
