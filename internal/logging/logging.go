// Package logging wraps pterm to print step-numbered detailing traces,
// mirroring the original service's DetailingDebugger step tracer in the
// teacher's CLI idiom.
package logging

import (
	"fmt"

	"github.com/pterm/pterm"
)

// StepTracer prints one step per call when verbose is true, silent
// otherwise. It satisfies detailing.Trace's func(step int, message string)
// signature.
type StepTracer struct {
	Verbose bool
}

// Trace implements the detailing.Trace function type.
func (t StepTracer) Trace(step int, message string) {
	if !t.Verbose {
		return
	}
	pterm.Info.Printfln("[%02d] %s", step, message)
}

// Section prints a boxed section header, used by cmd/detail_design.go between
// major output blocks.
func Section(title string) {
	pterm.DefaultSection.Println(title)
}

// Warn prints one warning line with pterm's warning styling.
func Warn(message string) {
	pterm.Warning.Println(message)
}

// Warnings prints every warning, numbered.
func Warnings(warnings []string) {
	if len(warnings) == 0 {
		pterm.Success.Println("Sin advertencias de validación.")
		return
	}
	for i, w := range warnings {
		pterm.Warning.Println(fmt.Sprintf("%d. %s", i+1, w))
	}
}
