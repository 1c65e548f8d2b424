package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatMeters renders a meter value with locale-aware decimal formatting
// (spec.md's dimension texts are always "%.2f m"; the locale only affects
// the decimal separator per the beam's configured locale, e.g. "es-CO").
func formatMeters(locale string, valueM float64) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%.2f m", valueM)
}
